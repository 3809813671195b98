package http

import (
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/pkg/logger"
	"github.com/praticaeng/obraflow-api/pkg/sessiontoken"
)

const (
	testCookieName = "obrasflow_auth"
	testSecret     = "segredo-de-teste"
	testIssuer     = "obraflow-api"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository — só o que o SessionStore consulta
// ──────────────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(*entity.User) error { return nil }
func (r *stubUserRepo) Update(*entity.User) error { return nil }
func (r *stubUserRepo) Delete(string) error       { return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *stubUserRepo) GetByCNPJAndName(string, string) (*entity.User, error) { return nil, nil }
func (r *stubUserRepo) ListFuncionariosByHosts([]string) ([]*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) ListHostsByCNPJ(string, string) ([]*entity.User, error) { return nil, nil }
func (r *stubUserRepo) HostIDsByCNPJ(string) ([]string, error)                 { return nil, nil }

type stubCredRepo struct{}

func (stubCredRepo) Create(*entity.Credencial) error { return nil }
func (stubCredRepo) GetByUserID(string) (*entity.Credencial, error) {
	return nil, nil
}
func (stubCredRepo) Replace(*entity.Credencial) error { return nil }
func (stubCredRepo) DeleteByUserID(string) error      { return nil }

func appComSessao(t *testing.T, users ...*entity.User) (*fiber.App, *auth.SessionStore) {
	t.Helper()
	repo := &stubUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	uc := auth.NewAuthUseCase(repo, stubCredRepo{})
	store := auth.NewSessionStore(repo, uc, auth.SessionConfig{
		Secret:     testSecret,
		Issuer:     testIssuer,
		ExpiraDias: 30,
	}, logger.New(logger.Config{Env: "production", Level: "error"}))

	app := fiber.New()
	sessao := SessionMiddleware(store, testCookieName)
	app.Get("/protegida", sessao, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": CurrentUser(c).ID})
	})
	app.Get("/somente-host", sessao, RequireHost(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, store
}

func requisicaoComCookie(t *testing.T, alvo, token string) *stdhttp.Request {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodGet, alvo, nil)
	if token != "" {
		req.AddCookie(&stdhttp.Cookie{Name: testCookieName, Value: token})
	}
	return req
}

func tokenPara(t *testing.T, u *entity.User) string {
	t.Helper()
	token, err := sessiontoken.Generate(testSecret, u.ID, u.CNPJ, string(u.Role), testIssuer, 30)
	require.NoError(t, err)
	return token
}

func lerErro(t *testing.T, resp *stdhttp.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionMiddleware_CookieValido(t *testing.T) {
	host := &entity.User{ID: "host-1", Name: "Fernando", CNPJ: "04.205.151/0001-37", Role: entity.RoleHost}
	app, _ := appComSessao(t, host)

	resp, err := app.Test(requisicaoComCookie(t, "/protegida", tokenPara(t, host)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "host-1")
}

func TestSessionMiddleware_SemCookie(t *testing.T) {
	app, _ := appComSessao(t)

	resp, err := app.Test(requisicaoComCookie(t, "/protegida", ""))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "NAO_AUTENTICADO", lerErro(t, resp).Code)
}

func TestSessionMiddleware_TokenInvalidoExpiraCookie(t *testing.T) {
	app, _ := appComSessao(t)

	resp, err := app.Test(requisicaoComCookie(t, "/protegida", "token-adulterado"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSAO_INVALIDA", lerErro(t, resp).Code)

	// O cookie inválido é expirado na resposta.
	setCookie := resp.Header.Get("Set-Cookie")
	require.NotEmpty(t, setCookie)
	assert.True(t, strings.HasPrefix(setCookie, testCookieName+"="))
	assert.Contains(t, setCookie, "HttpOnly")
}

// Cookie assinado com outro segredo não passa, mesmo bem formado.
func TestSessionMiddleware_SegredoErrado(t *testing.T) {
	host := &entity.User{ID: "host-1", Role: entity.RoleHost}
	app, _ := appComSessao(t, host)

	forjado, err := sessiontoken.Generate("outro-segredo", host.ID, "", string(host.Role), testIssuer, 30)
	require.NoError(t, err)

	resp, err := app.Test(requisicaoComCookie(t, "/protegida", forjado))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
}

// Usuário removido da DB entre requisições: o cookie continua assinado,
// mas a sessão não se sustenta.
func TestSessionMiddleware_UsuarioInexistente(t *testing.T) {
	fantasma := &entity.User{ID: "fantasma", Role: entity.RoleHost}
	app, _ := appComSessao(t) // repo vazio

	resp, err := app.Test(requisicaoComCookie(t, "/protegida", tokenPara(t, fantasma)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSAO_INVALIDA", lerErro(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireHost
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireHost_FuncionarioBloqueado(t *testing.T) {
	hostID := "host-1"
	funcionario := &entity.User{ID: "func-1", Role: entity.RoleFuncionario, HostID: &hostID}
	app, _ := appComSessao(t, funcionario)

	resp, err := app.Test(requisicaoComCookie(t, "/somente-host", tokenPara(t, funcionario)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ACESSO_NEGADO", lerErro(t, resp).Code)
}

func TestRequireHost_HostPassa(t *testing.T) {
	host := &entity.User{ID: "host-1", Role: entity.RoleHost}
	app, _ := appComSessao(t, host)

	resp, err := app.Test(requisicaoComCookie(t, "/somente-host", tokenPara(t, host)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
}
