package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/application/movimentacao"
	"github.com/praticaeng/obraflow-api/internal/application/relatorio"
	"github.com/praticaeng/obraflow-api/internal/application/usecase"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
	"github.com/praticaeng/obraflow-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	SessionStore   *auth.SessionStore
	AuthUC         *auth.AuthUseCase
	Resolver       *authz.Resolver
	ObraUC         *usecase.ObraUseCase
	AssistenciaUC  *usecase.AssistenciaUseCase
	FerramentaUC   *usecase.FerramentaUseCase
	MovimentacaoUC *movimentacao.UseCase
	RelatorioUC    *relatorio.UseCase
	Permissions    repository.PermissionRepository
	Users          repository.UserRepository
	Historico      repository.HistoricoRepository
	CookieName     string
	ExpiraDias     int
	Log            *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; logout e me exigem sessão
	authHandler := NewAuthHandler(deps.SessionStore, deps.CookieName, deps.ExpiraDias)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	sessao := SessionMiddleware(deps.SessionStore, deps.CookieName)
	authGroup.Post("/logout", sessao, authHandler.Logout)
	authGroup.Get("/me", sessao, authHandler.Me)

	// Rotas protegidas (cookie de sessão)
	protected := api.Group("/", sessao)
	host := RequireHost()

	// Obras: leitura filtrada para qualquer autenticado, mutação só host
	obras := protected.Group("/obras")
	obraHandler := NewObraHandler(deps.ObraUC, deps.AuthUC, deps.Resolver, deps.Log)
	obras.Get("/", obraHandler.List)
	obras.Get("/:id", obraHandler.GetByID)
	obras.Post("/", host, obraHandler.Create)
	obras.Put("/:id", host, obraHandler.Update)
	obras.Post("/:id/finalizar", host, obraHandler.Finalizar)
	obras.Post("/:id/reativar", host, obraHandler.Reativar)

	// Assistências técnicas
	assistencias := protected.Group("/assistencias")
	assistenciaHandler := NewAssistenciaHandler(deps.AssistenciaUC, deps.AuthUC)
	assistencias.Get("/", assistenciaHandler.List)
	assistencias.Post("/", host, assistenciaHandler.Create)
	assistencias.Delete("/:id", host, assistenciaHandler.Delete)

	// Ferramentas: leitura filtrada; criação/remoção só host; transferência
	// e status para qualquer autenticado com visibilidade
	ferramentas := protected.Group("/ferramentas")
	ferramentaHandler := NewFerramentaHandler(deps.FerramentaUC, deps.MovimentacaoUC, deps.AuthUC, deps.Resolver, deps.Log)
	ferramentas.Get("/", ferramentaHandler.List)
	ferramentas.Get("/desaparecidas", ferramentaHandler.ListDesaparecidas)
	ferramentas.Get("/:id", ferramentaHandler.GetByID)
	ferramentas.Post("/", host, ferramentaHandler.Create)
	ferramentas.Put("/:id", host, ferramentaHandler.Update)
	ferramentas.Delete("/:id", host, ferramentaHandler.Delete)
	ferramentas.Post("/:id/transferir", ferramentaHandler.Transferir)
	ferramentas.Post("/:id/desaparecida", ferramentaHandler.Desaparecida)
	ferramentas.Post("/:id/encontrada", ferramentaHandler.Encontrada)
	ferramentas.Get("/:id/movimentacoes", ferramentaHandler.Movimentacoes)

	// Funcionários (só host)
	funcionarios := protected.Group("/funcionarios", host)
	funcionarioHandler := NewFuncionarioHandler(deps.AuthUC)
	funcionarios.Get("/", funcionarioHandler.List)
	funcionarios.Post("/", funcionarioHandler.Create)
	funcionarios.Delete("/:id", funcionarioHandler.Delete)

	// Permissões de visibilidade (só host)
	permissoes := protected.Group("/permissoes", host)
	permissionHandler := NewPermissionHandler(deps.Permissions, deps.Users)
	permissoes.Post("/obras", permissionHandler.GrantObra)
	permissoes.Delete("/obras", permissionHandler.RevokeObra)
	permissoes.Post("/ferramentas", permissionHandler.GrantFerramenta)
	permissoes.Delete("/ferramentas", permissionHandler.RevokeFerramenta)

	// Relatórios (só host)
	relatorios := protected.Group("/relatorios", host)
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC, deps.AuthUC)
	relatorios.Get("/movimentacoes", relatorioHandler.Movimentacoes)
	relatorios.Get("/movimentacoes/pdf", relatorioHandler.MovimentacoesPDF)

	// Histórico de auditoria (só host)
	historicoHandler := NewHistoricoHandler(deps.Historico, deps.AuthUC)
	protected.Get("/historico", host, historicoHandler.List)
}
