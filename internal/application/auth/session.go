package auth

import (
	"context"
	"sync"

	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
	"github.com/praticaeng/obraflow-api/pkg/logger"
	"github.com/praticaeng/obraflow-api/pkg/sessiontoken"
)

// UserEventOp operação de um evento do feed de usuários.
type UserEventOp string

// Operações do feed de mudanças da tabela de usuários.
const (
	UserUpdated UserEventOp = "UPDATE"
	UserDeleted UserEventOp = "DELETE"
)

// UserEvent evento de mudança em uma linha de usuário. Para DELETE apenas
// UserID é preenchido.
type UserEvent struct {
	Op     UserEventOp
	UserID string
	User   *entity.User
}

// SessionConfig parâmetros do token de sessão.
type SessionConfig struct {
	Secret     string
	Issuer     string
	ExpiraDias int
}

// SessionStore dono explícito do estado de sessão: registra os usuários
// logados, emite e resolve o valor do cookie e mantém o registro
// sincronizado com a DB via resync periódico e feed de mudanças.
// Mutação de estado só acontece nas goroutines do próprio store ou sob o
// mutex; o feed é consumido por Run, nunca por callback.
type SessionStore struct {
	users repository.UserRepository
	auth  *AuthUseCase
	cfg   SessionConfig
	log   *logger.Logger

	mu     sync.RWMutex
	ativos map[string]*entity.User
}

// NewSessionStore constrói o store de sessões.
func NewSessionStore(users repository.UserRepository, auth *AuthUseCase, cfg SessionConfig, log *logger.Logger) *SessionStore {
	return &SessionStore{
		users:  users,
		auth:   auth,
		cfg:    cfg,
		log:    log,
		ativos: make(map[string]*entity.User),
	}
}

// Entrar verifica as credenciais e estabelece a sessão: qualquer estado
// anterior do usuário é descartado antes (equivalente à limpeza de storage
// do cliente original), o registro é atualizado e o cache de hosts da
// empresa é pré-aquecido para hosts. Devolve o usuário e o valor assinado
// do cookie.
func (s *SessionStore) Entrar(cnpj, username, password string) (*entity.User, string, error) {
	user, err := s.auth.VerificarCredenciais(cnpj, username, password)
	if err != nil {
		return nil, "", err
	}

	// Limpar estado antigo antes de estabelecer a nova sessão
	s.mu.Lock()
	delete(s.ativos, user.ID)
	s.ativos[user.ID] = user
	s.mu.Unlock()
	s.auth.invalidarCacheHosts(user.CNPJ)

	if user.Role.IsHost() {
		s.auth.CompanyHostIDs(user) // pré-carrega o cache
	}

	token, err := sessiontoken.Generate(s.cfg.Secret, user.ID, user.CNPJ, string(user.Role), s.cfg.Issuer, s.cfg.ExpiraDias)
	if err != nil {
		s.mu.Lock()
		delete(s.ativos, user.ID)
		s.mu.Unlock()
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("sessão estabelecida")
	return user, token, nil
}

// CarregarUsuario resolve o valor do cookie para o usuário da sessão.
// Usa o registro em memória quando disponível; caso contrário recarrega da
// DB (sessão retomada após reinício). Em não-encontrado ou erro de
// consulta a sessão é descartada.
func (s *SessionStore) CarregarUsuario(cookieValue string) (*entity.User, error) {
	userID, _, _, err := sessiontoken.Parse(s.cfg.Secret, cookieValue)
	if err != nil {
		return nil, domain.ErrNaoAutorizado
	}

	s.mu.RLock()
	cached, ok := s.ativos[userID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	user, err := s.users.GetByID(userID)
	if err != nil || user == nil {
		s.Sair(userID)
		return nil, domain.ErrUsuarioNaoEncontrado
	}

	s.mu.Lock()
	s.ativos[userID] = user
	s.mu.Unlock()
	return user, nil
}

// Sair descarta a sessão do usuário. O handler expira o cookie.
func (s *SessionStore) Sair(userID string) {
	s.mu.Lock()
	delete(s.ativos, userID)
	s.mu.Unlock()
}

// Ativo devolve o usuário registrado, se houver sessão.
func (s *SessionStore) Ativo(userID string) (*entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.ativos[userID]
	return u, ok
}

// Resync recarrega da DB todos os usuários com sessão ativa. Usuários que
// desapareceram são deslogados. Agendado a cada 5 minutos pelo cmd/api.
func (s *SessionStore) Resync(ctx context.Context) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.ativos))
	for id := range s.ativos {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		user, err := s.users.GetByID(id)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("resync de sessão falhou, mantendo estado atual")
			continue
		}
		if user == nil {
			s.log.Info().Str("user_id", id).Msg("usuário removido, encerrando sessão")
			s.Sair(id)
			continue
		}
		s.mu.Lock()
		s.ativos[id] = user
		s.mu.Unlock()
	}
}

// Run drena o feed de mudanças de usuários até o contexto encerrar.
// UPDATE substitui o usuário em memória; DELETE desloga.
func (s *SessionStore) Run(ctx context.Context, feed <-chan UserEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-feed:
			if !ok {
				return
			}
			s.aplicar(ev)
		}
	}
}

func (s *SessionStore) aplicar(ev UserEvent) {
	switch ev.Op {
	case UserUpdated:
		if ev.User == nil {
			return
		}
		s.mu.Lock()
		if _, ok := s.ativos[ev.User.ID]; ok {
			s.ativos[ev.User.ID] = ev.User
		}
		s.mu.Unlock()
	case UserDeleted:
		s.log.Info().Str("user_id", ev.UserID).Msg("usuário deletado, encerrando sessão")
		s.Sair(ev.UserID)
	}
}
