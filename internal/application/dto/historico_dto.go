package dto

import "time"

// HistoricoResponse saída de uma entrada de auditoria.
type HistoricoResponse struct {
	ID             string         `json:"id"`
	TipoEvento     string         `json:"tipo_evento"`
	Descricao      string         `json:"descricao"`
	ObraID         *string        `json:"obra_id,omitempty"`
	MovimentacaoID *string        `json:"movimentacao_id,omitempty"`
	UserID         *string        `json:"user_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
