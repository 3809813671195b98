package relatorio_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/application/relatorio"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeRelatorioRepo struct {
	rows   []repository.MovimentacaoRelatorioResult
	resumo []repository.FerramentaStatusResult

	recebidoStart time.Time
	recebidoEnd   time.Time
}

func (r *fakeRelatorioRepo) MovimentacoesPorObra(ctx context.Context, obraID string, startDate, endDate time.Time) ([]repository.MovimentacaoRelatorioResult, error) {
	r.recebidoStart = startDate
	r.recebidoEnd = endDate
	return r.rows, nil
}

func (r *fakeRelatorioRepo) ResumoFerramentas(ctx context.Context, ownerIDs []string) ([]repository.FerramentaStatusResult, error) {
	return r.resumo, nil
}

type fakeObraRepo struct {
	obra *entity.Obra
}

func (r *fakeObraRepo) Create(*entity.Obra) error { return nil }
func (r *fakeObraRepo) Update(*entity.Obra) error { return nil }
func (r *fakeObraRepo) Delete(string) error       { return nil }
func (r *fakeObraRepo) GetByID(id string) (*entity.Obra, error) {
	if r.obra != nil && r.obra.ID == id {
		return r.obra, nil
	}
	return nil, nil
}
func (r *fakeObraRepo) ListByOwners([]string, int, int) ([]*entity.Obra, error) { return nil, nil }

type fakeGenerator struct {
	recebido *dto.RelatorioMovimentacoesResponse
}

func (g *fakeGenerator) GenerateRelatorioPDF(ctx context.Context, rel *dto.RelatorioMovimentacoesResponse) ([]byte, error) {
	g.recebido = rel
	return []byte("%PDF-1.7 fake"), nil
}

func hostAtor() *entity.User {
	return &entity.User{ID: "host-1", Name: "Fernando Antunes", Role: entity.RoleHost}
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimentacoes
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimentacoes_MontaRelatorio(t *testing.T) {
	rel := &fakeRelatorioRepo{
		rows: []repository.MovimentacaoRelatorioResult{{
			Ferramenta:      "Furadeira Bosch",
			Serial:          "SN-001",
			ValorFerramenta: decimal.NewFromInt(450),
			FromNome:        "Residencial Aurora",
			ToNome:          "Makita Autorizada",
			Usuario:         "José da Silva",
			CreatedAt:       time.Date(2026, 8, 10, 14, 0, 0, 0, time.UTC),
		}},
		resumo: []repository.FerramentaStatusResult{
			{Status: "em_uso", Quantidade: 3, ValorTotal: decimal.NewFromInt(2100)},
		},
	}
	obras := &fakeObraRepo{obra: &entity.Obra{ID: "obra-1", Title: "Residencial Aurora"}}
	uc := relatorio.NewUseCase(rel, obras, &fakeGenerator{})

	out, err := uc.Movimentacoes(context.Background(), hostAtor(), []string{"host-1"}, dto.RelatorioMovimentacoesRequest{
		ObraID:    "obra-1",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "Residencial Aurora", out.Obra)
	assert.Equal(t, "01/08/2026 a 31/08/2026", out.Periodo)
	assert.Equal(t, "Fernando Antunes", out.GeradoPor)
	require.Len(t, out.Linhas, 1)
	assert.Equal(t, "Makita Autorizada", out.Linhas[0].Para)
	require.Len(t, out.Resumo, 1)
	assert.Equal(t, 3, out.Resumo[0].Quantidade)

	// O fim do período cobre o dia inteiro.
	assert.Equal(t, "2026-08-01", rel.recebidoStart.Format("2006-01-02"))
	assert.Equal(t, "2026-08-31", rel.recebidoEnd.Format("2006-01-02"))
	assert.Equal(t, 23, rel.recebidoEnd.Hour())
}

// Sem datas o relatório cobre os últimos 30 dias.
func TestMovimentacoes_PeriodoPadrao(t *testing.T) {
	rel := &fakeRelatorioRepo{}
	obras := &fakeObraRepo{obra: &entity.Obra{ID: "obra-1", Title: "Obra"}}
	uc := relatorio.NewUseCase(rel, obras, &fakeGenerator{})

	_, err := uc.Movimentacoes(context.Background(), hostAtor(), []string{"host-1"}, dto.RelatorioMovimentacoesRequest{
		ObraID: "obra-1",
	})
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), rel.recebidoEnd, time.Minute)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), rel.recebidoStart, time.Minute)
}

func TestMovimentacoes_ObraNaoEncontrada(t *testing.T) {
	uc := relatorio.NewUseCase(&fakeRelatorioRepo{}, &fakeObraRepo{}, &fakeGenerator{})

	_, err := uc.Movimentacoes(context.Background(), hostAtor(), []string{"host-1"}, dto.RelatorioMovimentacoesRequest{
		ObraID: "obra-999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// MovimentacoesPDF
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimentacoesPDF_NomeDoArquivo(t *testing.T) {
	gen := &fakeGenerator{}
	obras := &fakeObraRepo{obra: &entity.Obra{ID: "obra-1", Title: "Condomínio São José"}}
	uc := relatorio.NewUseCase(&fakeRelatorioRepo{}, obras, gen)

	pdf, filename, err := uc.MovimentacoesPDF(context.Background(), hostAtor(), []string{"host-1"}, dto.RelatorioMovimentacoesRequest{
		ObraID: "obra-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "relatorio-condominio-sao-jose.pdf", filename)
	require.NotNil(t, gen.recebido)
	assert.Equal(t, "Condomínio São José", gen.recebido.Obra)
}

// ──────────────────────────────────────────────────────────────────────────────
// Slug
// ──────────────────────────────────────────────────────────────────────────────

func TestSlug(t *testing.T) {
	casos := []struct {
		in, out string
	}{
		{"Condomínio São José", "condominio-sao-jose"},
		{"Galpão Industrial 02", "galpao-industrial-02"},
		{"  Obra -- Teste  ", "obra-teste"},
		{"Ação & Reação", "acao-reacao"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.out, relatorio.Slug(c.in), "entrada %q", c.in)
	}
}
