package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/application/usecase"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type stubObraRepo struct {
	itens map[string]*entity.Obra
}

func newStubObraRepo(obras ...*entity.Obra) *stubObraRepo {
	r := &stubObraRepo{itens: make(map[string]*entity.Obra)}
	for _, o := range obras {
		r.itens[o.ID] = o
	}
	return r
}

func (r *stubObraRepo) Create(o *entity.Obra) error { r.itens[o.ID] = o; return nil }
func (r *stubObraRepo) Update(o *entity.Obra) error { r.itens[o.ID] = o; return nil }
func (r *stubObraRepo) Delete(id string) error      { delete(r.itens, id); return nil }
func (r *stubObraRepo) GetByID(id string) (*entity.Obra, error) {
	o, ok := r.itens[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}
func (r *stubObraRepo) ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.Obra, error) {
	var out []*entity.Obra
	for _, o := range r.itens {
		for _, owner := range ownerIDs {
			if o.OwnerID == owner {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

type stubHistRepo struct{}

func (stubHistRepo) Create(*entity.Historico) error { return nil }
func (stubHistRepo) ListByOwners([]string, int, int) ([]*entity.Historico, error) {
	return nil, nil
}

// stubPermRepo com erro opcional em todas as consultas.
type stubPermRepo struct {
	err error
}

func (r *stubPermRepo) ObraIDsByUser(string) ([]string, error)       { return nil, r.err }
func (r *stubPermRepo) FerramentaIDsByUser(string) ([]string, error) { return nil, r.err }
func (r *stubPermRepo) HasObra(string, string) (bool, error)         { return false, r.err }
func (r *stubPermRepo) HasFerramenta(string, string) (bool, error)   { return false, r.err }
func (r *stubPermRepo) GrantObra(*entity.ObraPermission) error       { return nil }
func (r *stubPermRepo) RevokeObra(string, string) error              { return nil }
func (r *stubPermRepo) GrantFerramenta(*entity.FerramentaPermission) error {
	return nil
}
func (r *stubPermRepo) RevokeFerramenta(string, string) error { return nil }

// comUsuario injeta o usuário da sessão, no lugar do middleware de cookie.
func comUsuario(u *entity.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalUser, u)
		return c.Next()
	}
}

func appObras(obras *stubObraRepo, perms *stubPermRepo, u *entity.User) *fiber.App {
	authUC := auth.NewAuthUseCase(&stubUserRepo{users: map[string]*entity.User{u.ID: u}}, stubCredRepo{})
	h := NewObraHandler(
		usecase.NewObraUseCase(obras, stubHistRepo{}),
		authUC,
		authz.NewResolver(perms),
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
	app := fiber.New()
	app.Use(comUsuario(u))
	app.Get("/api/obras", h.List)
	app.Get("/api/obras/:id", h.GetByID)
	app.Put("/api/obras/:id", h.Update)
	app.Post("/api/obras/:id/finalizar", h.Finalizar)
	app.Post("/api/obras/:id/reativar", h.Reativar)
	return app
}

func hostDeTeste() *entity.User {
	return &entity.User{ID: "host-1", Name: "Fernando", Role: entity.RoleHost}
}

// ──────────────────────────────────────────────────────────────────────────────
// Obra inexistente devolve 404, nunca 200 com corpo nulo
// ──────────────────────────────────────────────────────────────────────────────

func TestObraGetByID_Inexistente404(t *testing.T) {
	app := appObras(newStubObraRepo(), &stubPermRepo{}, hostDeTeste())

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/api/obras/nao-existe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", lerErro(t, resp).Code)
}

func TestObraUpdate_Inexistente404(t *testing.T) {
	app := appObras(newStubObraRepo(), &stubPermRepo{}, hostDeTeste())

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/obras/nao-existe", jsonBody(t, dto.UpdateObraRequest{}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
}

func TestObraFinalizarEReativar_Inexistente404(t *testing.T) {
	app := appObras(newStubObraRepo(), &stubPermRepo{}, hostDeTeste())

	for _, alvo := range []string{"/api/obras/nao-existe/finalizar", "/api/obras/nao-existe/reativar"} {
		resp, err := app.Test(httptest.NewRequest(stdhttp.MethodPost, alvo, nil))
		require.NoError(t, err)
		assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode, alvo)
		resp.Body.Close()
	}
}

func TestObraGetByID_Existente200(t *testing.T) {
	obra := &entity.Obra{ID: "obra-1", Title: "Residencial Aurora", Status: entity.ObraAtiva, OwnerID: "host-1"}
	app := appObras(newStubObraRepo(obra), &stubPermRepo{}, hostDeTeste())

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/api/obras/obra-1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Residencial Aurora")
}

// ──────────────────────────────────────────────────────────────────────────────
// Falha do resolver fecha a lista sem vazar erro para o cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestObraList_FalhaDePermissaoFechaLista(t *testing.T) {
	obra := &entity.Obra{ID: "obra-1", Title: "Residencial Aurora", Status: entity.ObraAtiva, OwnerID: "host-1"}
	hostID := "host-1"
	funcionario := &entity.User{ID: "func-1", Role: entity.RoleFuncionario, HostID: &hostID}
	perms := &stubPermRepo{err: errors.New("db fora do ar")}
	app := appObras(newStubObraRepo(obra), perms, funcionario)

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/api/obras", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ObraListResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Empty(t, out.Items)
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}
