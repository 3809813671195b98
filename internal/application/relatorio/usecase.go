package relatorio

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UseCase relatórios de movimentações por obra (JSON e PDF).
// Somente hosts chegam aqui (gate no handler).
type UseCase struct {
	relatorios repository.RelatorioRepository
	obras      repository.ObraRepository
	generator  PDFGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(relatorios repository.RelatorioRepository, obras repository.ObraRepository, generator PDFGenerator) *UseCase {
	return &UseCase{relatorios: relatorios, obras: obras, generator: generator}
}

// Movimentacoes monta o relatório de movimentações da obra no período.
// Datas vazias cobrem os últimos 30 dias.
func (uc *UseCase) Movimentacoes(ctx context.Context, actor *entity.User, ownerIDs []string, in dto.RelatorioMovimentacoesRequest) (*dto.RelatorioMovimentacoesResponse, error) {
	obra, err := uc.obras.GetByID(in.ObraID)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, domain.ErrNotFound
	}

	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if in.StartDate != "" {
		if d, err := time.Parse("2006-01-02", in.StartDate); err == nil {
			start = d
		}
	}
	if in.EndDate != "" {
		if d, err := time.Parse("2006-01-02", in.EndDate); err == nil {
			// fim do dia
			end = d.Add(24*time.Hour - time.Nanosecond)
		}
	}

	rows, err := uc.relatorios.MovimentacoesPorObra(ctx, in.ObraID, start, end)
	if err != nil {
		return nil, fmt.Errorf("relatório de movimentações: %w", err)
	}
	resumo, err := uc.relatorios.ResumoFerramentas(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("resumo de ferramentas: %w", err)
	}

	linhas := make([]dto.LinhaMovimentacaoDTO, 0, len(rows))
	for _, r := range rows {
		linhas = append(linhas, dto.LinhaMovimentacaoDTO{
			Ferramenta: r.Ferramenta,
			Serial:     r.Serial,
			Valor:      r.ValorFerramenta,
			De:         r.FromNome,
			Para:       r.ToNome,
			Usuario:    r.Usuario,
			Note:       r.Note,
			Data:       r.CreatedAt,
		})
	}
	resumoDTO := make([]dto.ResumoStatusDTO, 0, len(resumo))
	for _, r := range resumo {
		resumoDTO = append(resumoDTO, dto.ResumoStatusDTO{
			Status:     r.Status,
			Quantidade: r.Quantidade,
			ValorTotal: r.ValorTotal,
		})
	}

	geradoPor := ""
	if actor != nil {
		geradoPor = actor.Name
	}
	return &dto.RelatorioMovimentacoesResponse{
		Obra:      obra.Title,
		Periodo:   start.Format("02/01/2006") + " a " + end.Format("02/01/2006"),
		Linhas:    linhas,
		Resumo:    resumoDTO,
		GeradoEm:  time.Now(),
		GeradoPor: geradoPor,
	}, nil
}

// MovimentacoesPDF monta o relatório e o renderiza em PDF. O nome do
// arquivo deriva do título da obra, sem acentos.
func (uc *UseCase) MovimentacoesPDF(ctx context.Context, actor *entity.User, ownerIDs []string, in dto.RelatorioMovimentacoesRequest) (pdf []byte, filename string, err error) {
	rel, err := uc.Movimentacoes(ctx, actor, ownerIDs, in)
	if err != nil {
		return nil, "", err
	}
	pdf, err = uc.generator.GenerateRelatorioPDF(ctx, rel)
	if err != nil {
		return nil, "", fmt.Errorf("gerar PDF: %w", err)
	}
	return pdf, "relatorio-" + Slug(rel.Obra) + ".pdf", nil
}

// Slug normaliza um título para nome de arquivo: remove acentos (NFD +
// remoção de marcas combinantes), minúsculas e hífens.
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	plain = strings.ToLower(plain)
	var b strings.Builder
	lastHyphen := true
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
