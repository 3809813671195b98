package entity

import "time"

// Historico entrada de auditoria append-only descrevendo um evento de
// mutação, com metadados livres.
type Historico struct {
	ID             string
	TipoEvento     string
	Descricao      string
	ObraID         *string
	MovimentacaoID *string
	UserID         *string
	OwnerID        *string
	Metadata       map[string]any
	CreatedAt      time.Time
}
