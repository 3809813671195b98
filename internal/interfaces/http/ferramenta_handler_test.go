package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/application/usecase"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/pkg/logger"
)

type stubFerramentaRepo struct {
	itens map[string]*entity.Ferramenta
}

func newStubFerramentaRepo(itens ...*entity.Ferramenta) *stubFerramentaRepo {
	r := &stubFerramentaRepo{itens: make(map[string]*entity.Ferramenta)}
	for _, f := range itens {
		r.itens[f.ID] = f
	}
	return r
}

func (r *stubFerramentaRepo) Create(f *entity.Ferramenta) error { r.itens[f.ID] = f; return nil }
func (r *stubFerramentaRepo) Update(f *entity.Ferramenta) error { r.itens[f.ID] = f; return nil }
func (r *stubFerramentaRepo) Delete(id string) error            { delete(r.itens, id); return nil }
func (r *stubFerramentaRepo) GetByID(id string) (*entity.Ferramenta, error) {
	f, ok := r.itens[id]
	if !ok {
		return nil, nil
	}
	return f, nil
}
func (r *stubFerramentaRepo) ListByOwners([]string, int, int) ([]*entity.Ferramenta, error) {
	return nil, nil
}
func (r *stubFerramentaRepo) ListDesaparecidasByOwners([]string) ([]*entity.Ferramenta, error) {
	return nil, nil
}

func appFerramentas(repo *stubFerramentaRepo, u *entity.User) *fiber.App {
	authUC := auth.NewAuthUseCase(&stubUserRepo{users: map[string]*entity.User{u.ID: u}}, stubCredRepo{})
	h := NewFerramentaHandler(
		usecase.NewFerramentaUseCase(repo, newStubObraRepo()),
		nil, // movimentações não entram nestas rotas
		authUC,
		authz.NewResolver(&stubPermRepo{}),
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
	app := fiber.New()
	app.Use(comUsuario(u))
	app.Get("/api/ferramentas/:id", h.GetByID)
	app.Put("/api/ferramentas/:id", h.Update)
	return app
}

// Ferramenta inexistente devolve 404 mesmo para host, nunca 200 com
// corpo nulo.
func TestFerramentaGetByID_Inexistente404(t *testing.T) {
	app := appFerramentas(newStubFerramentaRepo(), hostDeTeste())

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/api/ferramentas/nao-existe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", lerErro(t, resp).Code)
}

func TestFerramentaUpdate_Inexistente404(t *testing.T) {
	app := appFerramentas(newStubFerramentaRepo(), hostDeTeste())

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/ferramentas/nao-existe", jsonBody(t, map[string]string{}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
}

func TestFerramentaGetByID_Existente200(t *testing.T) {
	f := &entity.Ferramenta{ID: "ferr-1", Name: "Furadeira Bosch", Status: entity.FerramentaDisponivel, OwnerID: "host-1"}
	app := appFerramentas(newStubFerramentaRepo(f), hostDeTeste())

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/api/ferramentas/ferr-1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
}
