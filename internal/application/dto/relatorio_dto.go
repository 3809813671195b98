package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RelatorioMovimentacoesRequest parâmetros do relatório de movimentações
// de uma obra. Datas em YYYY-MM-DD.
type RelatorioMovimentacoesRequest struct {
	ObraID    string `query:"obra_id" validate:"required,uuid"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// LinhaMovimentacaoDTO linha do relatório de movimentações.
type LinhaMovimentacaoDTO struct {
	Ferramenta string          `json:"ferramenta"`
	Serial     string          `json:"serial,omitempty"`
	Valor      decimal.Decimal `json:"valor"`
	De         string          `json:"de,omitempty"`
	Para       string          `json:"para"`
	Usuario    string          `json:"usuario"`
	Note       string          `json:"note,omitempty"`
	Data       time.Time       `json:"data"`
}

// ResumoStatusDTO contagem de ferramentas por status.
type ResumoStatusDTO struct {
	Status     string          `json:"status"`
	Quantidade int             `json:"quantidade"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// RelatorioMovimentacoesResponse saída do relatório.
type RelatorioMovimentacoesResponse struct {
	Obra      string                 `json:"obra"`
	Periodo   string                 `json:"periodo"`
	Linhas    []LinhaMovimentacaoDTO `json:"linhas"`
	Resumo    []ResumoStatusDTO      `json:"resumo"`
	GeradoEm  time.Time              `json:"gerado_em"`
	GeradoPor string                 `json:"gerado_por"`
}
