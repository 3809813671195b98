package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Host principal protegido: nunca pode ser removido do sistema.
const (
	ProtectedHostID   = "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	ProtectedHostName = "Fernando Antunes"
)

// AuthUseCase casos de uso de autenticação e gestão de funcionários.
// Mantém o cache de host IDs vinculados por CNPJ (hosts do mesmo CNPJ são
// uma única empresa lógica).
type AuthUseCase struct {
	users repository.UserRepository
	creds repository.CredencialRepository

	mu            sync.RWMutex
	hostIDsPorCNPJ map[string][]string
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, creds repository.CredencialRepository) *AuthUseCase {
	return &AuthUseCase{
		users:          users,
		creds:          creds,
		hostIDsPorCNPJ: make(map[string][]string),
	}
}

// VerificarCredenciais valida CNPJ + nome (case-insensitive) + senha.
// Falha fechada, na mesma ordem da verificação original: usuário, depois
// credencial, depois senha. Nenhum efeito colateral em caso de falha.
func (uc *AuthUseCase) VerificarCredenciais(cnpj, username, password string) (*entity.User, error) {
	user, err := uc.users.GetByCNPJAndName(strings.TrimSpace(cnpj), strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	cred, err := uc.creds.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrCredenciaisNaoEncontradas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrSenhaIncorreta
	}
	return user, nil
}

// CadastrarFuncionario cria um funcionário (ou outro host) da empresa do
// ator, com credencial bcrypt. Somente hosts. Se a credencial falhar, a
// criação do usuário é revertida.
func (uc *AuthUseCase) CadastrarFuncionario(actor *entity.User, in dto.CreateFuncionarioRequest) (*dto.UserResponse, error) {
	if actor == nil || !actor.Role.IsHost() {
		return nil, domain.ErrAcessoNegado
	}
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrEntradaInvalida
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		CNPJ:      actor.CNPJ,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// host não tem host_id; funcionário pertence ao host que o cadastrou
	if role == entity.RoleFuncionario {
		hostID := actor.ID
		user.HostID = &hostID
	}

	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	cred := &entity.Credencial{
		UserID:       user.ID,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.creds.Create(cred); err != nil {
		_ = uc.users.Delete(user.ID)
		return nil, err
	}

	if role == entity.RoleHost {
		uc.invalidarCacheHosts(actor.CNPJ)
	}
	return ToUserResponse(user), nil
}

// RemoverFuncionario remove um usuário da empresa. O host principal
// protegido é rejeitado. Credenciais caem em cascade na aplicação.
func (uc *AuthUseCase) RemoverFuncionario(actor *entity.User, employeeID string) error {
	if actor == nil || !actor.Role.IsHost() {
		return domain.ErrAcessoNegado
	}
	if employeeID == ProtectedHostID {
		return domain.ErrUsuarioProtegido
	}
	if err := uc.creds.DeleteByUserID(employeeID); err != nil {
		return err
	}
	if err := uc.users.Delete(employeeID); err != nil {
		return err
	}
	uc.invalidarCacheHosts(actor.CNPJ)
	return nil
}

// ListarFuncionarios funcionários cadastrados por qualquer host vinculado
// mais os demais hosts do mesmo CNPJ, ordenados por nome.
func (uc *AuthUseCase) ListarFuncionarios(actor *entity.User) ([]dto.UserResponse, error) {
	if actor == nil || !actor.Role.IsHost() {
		return []dto.UserResponse{}, nil
	}
	hostIDs := uc.CompanyHostIDs(actor)

	funcionarios, err := uc.users.ListFuncionariosByHosts(hostIDs)
	if err != nil {
		return nil, err
	}
	hosts, err := uc.users.ListHostsByCNPJ(actor.CNPJ, actor.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, 0, len(funcionarios)+len(hosts))
	for _, u := range funcionarios {
		out = append(out, *ToUserResponse(u))
	}
	for _, u := range hosts {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// CompanyHostIDs ids de todos os hosts que compartilham o CNPJ do usuário,
// com cache. Em caso de erro de consulta devolve apenas o próprio id
// (falha fechada, nunca amplia o escopo).
func (uc *AuthUseCase) CompanyHostIDs(user *entity.User) []string {
	if user == nil || !user.Role.IsHost() {
		return []string{}
	}

	uc.mu.RLock()
	cached, ok := uc.hostIDsPorCNPJ[user.CNPJ]
	uc.mu.RUnlock()
	if ok && len(cached) > 0 {
		return cached
	}

	ids, err := uc.users.HostIDsByCNPJ(user.CNPJ)
	if err != nil || len(ids) == 0 {
		return []string{user.ID}
	}

	uc.mu.Lock()
	uc.hostIDsPorCNPJ[user.CNPJ] = ids
	uc.mu.Unlock()
	return ids
}

// EscopoDeDonos ids de donos cujos dados o usuário enxerga: todos os hosts
// da empresa para um host; o host do funcionário (e vinculados) para um
// funcionário.
func (uc *AuthUseCase) EscopoDeDonos(user *entity.User) []string {
	if user == nil {
		return []string{}
	}
	if user.Role.IsHost() {
		return uc.CompanyHostIDs(user)
	}
	ids, err := uc.users.HostIDsByCNPJ(user.CNPJ)
	if err != nil || len(ids) == 0 {
		if user.HostID != nil {
			return []string{*user.HostID}
		}
		return []string{}
	}
	return ids
}

// invalidarCacheHosts descarta o cache de hosts vinculados da empresa.
func (uc *AuthUseCase) invalidarCacheHosts(cnpj string) {
	uc.mu.Lock()
	delete(uc.hostIDsPorCNPJ, cnpj)
	uc.mu.Unlock()
}

// ToUserResponse converte a entidade em DTO de saída (sem credenciais).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CNPJ:      u.CNPJ,
		Role:      string(u.Role),
		HostID:    u.HostID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
