// Package pdf implementa a geração do relatório de movimentações em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Obra + Período  │  Gerado em / por                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Ferramenta | De | Para | Usuário | Valor     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: quantidade e valor total por status                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/praticaeng/obraflow-api/internal/application/dto"
	apprel "github.com/praticaeng/obraflow-api/internal/application/relatorio"
)

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ apprel.PDFGenerator = (*MarotoRelatorioGenerator)(nil)

// MarotoRelatorioGenerator implementa relatorio.PDFGenerator usando Maroto v2.
type MarotoRelatorioGenerator struct{}

// NewMarotoRelatorioGenerator constrói o gerador.
func NewMarotoRelatorioGenerator() *MarotoRelatorioGenerator { return &MarotoRelatorioGenerator{} }

// GenerateRelatorioPDF gera o PDF e devolve seus bytes.
func (g *MarotoRelatorioGenerator) GenerateRelatorioPDF(_ context.Context, rel *dto.RelatorioMovimentacoesResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Movimentações", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLinhaRows(rel.Linhas) {
		m.AddRows(r)
	}
	if len(rel.Linhas) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma movimentação no período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range resumoRows(rel.Resumo) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: obra + período (esq) e dados de geração (dir).
func headerRow(rel *dto.RelatorioMovimentacoesResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(rel.Obra, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+rel.Periodo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO DE MOVIMENTAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em: "+rel.GeradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Por: "+nonEmpty(rel.GeradoPor, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de movimentações.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Ferramenta", 3, align.Left),
		h("De", 2, align.Left),
		h("Para", 2, align.Left),
		h("Usuário", 2, align.Left),
		h("Valor", 1, align.Right),
	)
}

// tableLinhaRows: uma linha por movimentação.
func tableLinhaRows(linhas []dto.LinhaMovimentacaoDTO) []core.Row {
	result := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		nome := l.Ferramenta
		if l.Serial != "" {
			nome += " (" + l.Serial + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Data.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.De, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Para,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Usuario,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				"R$ "+formatMoney(l.Valor.StringFixed(0)),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// resumoRows: bloco de resumo por status do parque de ferramentas.
func resumoRows(resumo []dto.ResumoStatusDTO) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("RESUMO DO PARQUE DE FERRAMENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, r := range resumo {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(statusLabel(r.Status), props.Text{
				Size: 9, Align: align.Left, Top: 1, Left: 2,
			})),
			col.New(4).Add(text.New(fmt.Sprintf("%d ferramenta(s)", r.Quantidade), props.Text{
				Size: 9, Align: align.Left, Top: 1,
			})),
			col.New(4).Add(text.New("R$ "+formatMoney(r.ValorTotal.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 2,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case "disponivel":
		return "Disponível"
	case "em_uso":
		return "Em uso"
	case "desaparecida":
		return "Desaparecida"
	}
	return status
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney insere pontos de milhar em um string numérico sem decimais.
// Ex: "25000" → "25.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
