package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/application/movimentacao"
	"github.com/praticaeng/obraflow-api/internal/application/relatorio"
	"github.com/praticaeng/obraflow-api/internal/application/usecase"
	infrapdf "github.com/praticaeng/obraflow-api/internal/infrastructure/pdf"
	"github.com/praticaeng/obraflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/praticaeng/obraflow-api/internal/interfaces/http"
	"github.com/praticaeng/obraflow-api/pkg/config"
	"github.com/praticaeng/obraflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicação")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	credRepo := postgres.NewCredencialRepository(pool)
	obraRepo := postgres.NewObraRepository(pool)
	assistenciaRepo := postgres.NewAssistenciaRepository(pool)
	ferramentaRepo := postgres.NewFerramentaRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	histRepo := postgres.NewHistoricoRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, credRepo)
	resolver := authz.NewResolver(permRepo)
	obraUC := usecase.NewObraUseCase(obraRepo, histRepo)
	assistenciaUC := usecase.NewAssistenciaUseCase(assistenciaRepo)
	ferramentaUC := usecase.NewFerramentaUseCase(ferramentaRepo, obraRepo)
	movimentacaoUC := movimentacao.NewUseCase(txRunner, ferramentaRepo, obraRepo, assistenciaRepo, movRepo)

	pdfGenerator := infrapdf.NewMarotoRelatorioGenerator()
	relatorioUC := relatorio.NewUseCase(relatorioRepo, obraRepo, pdfGenerator)

	sessionStore := auth.NewSessionStore(userRepo, authUC, auth.SessionConfig{
		Secret:     cfg.Sessao.Secret,
		Issuer:     cfg.Sessao.Issuer,
		ExpiraDias: cfg.Sessao.ExpiraDias,
	}, log)

	// Feed de mudanças de usuários (LISTEN/NOTIFY) alimentando o store
	userFeed := postgres.NewUserFeed(pool, log)
	go userFeed.Run(ctx)
	go sessionStore.Run(ctx, userFeed.Subscribe(ctx))

	// Resync periódico das sessões ativas
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(fmt.Sprintf("@every %dm", cfg.Sessao.ResyncMins), func() {
		sessionStore.Resync(ctx)
	}); err != nil {
		log.Fatal().Err(err).Msg("agendar resync de sessões")
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ObraFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionStore:   sessionStore,
		AuthUC:         authUC,
		Resolver:       resolver,
		ObraUC:         obraUC,
		AssistenciaUC:  assistenciaUC,
		FerramentaUC:   ferramentaUC,
		MovimentacaoUC: movimentacaoUC,
		RelatorioUC:    relatorioUC,
		Permissions:    permRepo,
		Users:          userRepo,
		Historico:      histRepo,
		CookieName:     cfg.Sessao.CookieName,
		ExpiraDias:     cfg.Sessao.ExpiraDias,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
