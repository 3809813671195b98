package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/application/usecase"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
)

type memFerramentaRepo struct {
	itens map[string]*entity.Ferramenta
}

func newMemFerramentaRepo() *memFerramentaRepo {
	return &memFerramentaRepo{itens: make(map[string]*entity.Ferramenta)}
}

func (r *memFerramentaRepo) Create(f *entity.Ferramenta) error {
	cp := *f
	r.itens[f.ID] = &cp
	return nil
}

func (r *memFerramentaRepo) GetByID(id string) (*entity.Ferramenta, error) {
	f, ok := r.itens[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *memFerramentaRepo) Update(f *entity.Ferramenta) error {
	cp := *f
	r.itens[f.ID] = &cp
	return nil
}

func (r *memFerramentaRepo) Delete(id string) error {
	delete(r.itens, id)
	return nil
}

func (r *memFerramentaRepo) ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.Ferramenta, error) {
	var out []*entity.Ferramenta
	for _, f := range r.itens {
		for _, owner := range ownerIDs {
			if f.OwnerID == owner {
				cp := *f
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (r *memFerramentaRepo) ListDesaparecidasByOwners(ownerIDs []string) ([]*entity.Ferramenta, error) {
	var out []*entity.Ferramenta
	for _, f := range r.itens {
		if f.Status != entity.FerramentaDesaparecida {
			continue
		}
		for _, owner := range ownerIDs {
			if f.OwnerID == owner {
				cp := *f
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

// obrasDeTeste repo de obras com uma ativa e uma finalizada.
func obrasDeTeste() *memObraRepo {
	repo := newMemObraRepo()
	repo.itens["obra-1"] = &entity.Obra{ID: "obra-1", Title: "Residencial Aurora", Status: entity.ObraAtiva, OwnerID: "host-1"}
	repo.itens["obra-2"] = &entity.Obra{ID: "obra-2", Title: "Galpão Industrial", Status: entity.ObraFinalizada, OwnerID: "host-1"}
	return repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — estado inicial depende da obra opcional
// ──────────────────────────────────────────────────────────────────────────────

func TestFerramentaCreate_SemObraNasceDisponivel(t *testing.T) {
	uc := usecase.NewFerramentaUseCase(newMemFerramentaRepo(), obrasDeTeste())

	out, err := uc.Create("host-1", "Fernando Antunes", dto.CreateFerramentaRequest{
		Name:  "Martelete Makita HR2470",
		Marca: "Makita",
		Valor: decimal.NewFromFloat(1289.90),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FerramentaDisponivel, out.Status)
	assert.Nil(t, out.CurrentType)
	assert.Nil(t, out.CurrentID)
	assert.Equal(t, "Fernando Antunes", out.CadastradoPor)
	assert.True(t, out.Valor.Equal(decimal.NewFromFloat(1289.90)))
}

func TestFerramentaCreate_ComObraNasceEmUso(t *testing.T) {
	uc := usecase.NewFerramentaUseCase(newMemFerramentaRepo(), obrasDeTeste())

	out, err := uc.Create("host-1", "Fernando Antunes", dto.CreateFerramentaRequest{
		Name:   "Serra Circular DeWalt",
		ObraID: "obra-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FerramentaEmUso, out.Status)
	require.NotNil(t, out.CurrentType)
	assert.Equal(t, entity.LocalObra, *out.CurrentType)
	assert.Equal(t, "obra-1", *out.CurrentID)
}

// A obra inicial precisa existir: nada é gravado quando não existe.
func TestFerramentaCreate_ObraInexistente(t *testing.T) {
	repo := newMemFerramentaRepo()
	uc := usecase.NewFerramentaUseCase(repo, obrasDeTeste())

	_, err := uc.Create("host-1", "Fernando", dto.CreateFerramentaRequest{
		Name:   "Serra Circular",
		ObraID: "obra-999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.itens)
}

func TestFerramentaCreate_ObraFinalizadaRejeita(t *testing.T) {
	repo := newMemFerramentaRepo()
	uc := usecase.NewFerramentaUseCase(repo, obrasDeTeste())

	_, err := uc.Create("host-1", "Fernando", dto.CreateFerramentaRequest{
		Name:   "Serra Circular",
		ObraID: "obra-2",
	})
	assert.ErrorIs(t, err, domain.ErrObraFinalizada)
	assert.Empty(t, repo.itens)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — parcial, sem tocar localização nem status
// ──────────────────────────────────────────────────────────────────────────────

func TestFerramentaUpdate_NaoTocaLocalizacao(t *testing.T) {
	repo := newMemFerramentaRepo()
	uc := usecase.NewFerramentaUseCase(repo, obrasDeTeste())
	criada, err := uc.Create("host-1", "Fernando", dto.CreateFerramentaRequest{
		Name:   "Serra Circular",
		ObraID: "obra-1",
	})
	require.NoError(t, err)

	novoValor := decimal.NewFromInt(950)
	out, err := uc.Update(criada.ID, dto.UpdateFerramentaRequest{Valor: &novoValor})
	require.NoError(t, err)
	assert.True(t, out.Valor.Equal(novoValor))
	assert.Equal(t, "Serra Circular", out.Name)
	assert.Equal(t, entity.FerramentaEmUso, out.Status)
	require.NotNil(t, out.CurrentID)
	assert.Equal(t, "obra-1", *out.CurrentID)
}

func TestFerramentaUpdate_NaoEncontrada(t *testing.T) {
	uc := usecase.NewFerramentaUseCase(newMemFerramentaRepo(), obrasDeTeste())

	nome := "X"
	out, err := uc.Update("inexistente", dto.UpdateFerramentaRequest{Name: &nome})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListDesaparecidas
// ──────────────────────────────────────────────────────────────────────────────

func TestFerramentaListDesaparecidas(t *testing.T) {
	repo := newMemFerramentaRepo()
	repo.itens["f1"] = &entity.Ferramenta{ID: "f1", OwnerID: "host-1", Status: entity.FerramentaEmUso}
	repo.itens["f2"] = &entity.Ferramenta{ID: "f2", OwnerID: "host-1", Status: entity.FerramentaDesaparecida}
	repo.itens["f3"] = &entity.Ferramenta{ID: "f3", OwnerID: "outro", Status: entity.FerramentaDesaparecida}
	uc := usecase.NewFerramentaUseCase(repo, obrasDeTeste())

	list, err := uc.ListDesaparecidas([]string{"host-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "f2", list[0].ID)
}
