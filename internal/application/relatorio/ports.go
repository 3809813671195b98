package relatorio

import (
	"context"

	"github.com/praticaeng/obraflow-api/internal/application/dto"
)

// PDFGenerator renderiza o relatório de movimentações em PDF.
// Implementado na infraestrutura (Maroto).
type PDFGenerator interface {
	GenerateRelatorioPDF(ctx context.Context, rel *dto.RelatorioMovimentacoesResponse) ([]byte, error)
}
