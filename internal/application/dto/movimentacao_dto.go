package dto

import "time"

// TransferirRequest entrada para transferir uma ferramenta de localização.
type TransferirRequest struct {
	ToType string `json:"to_type" validate:"required,oneof=obra assistencia"`
	ToID   string `json:"to_id" validate:"required,uuid"`
	Note   string `json:"note"`
}

// MovimentacaoResponse saída de um registro de movimentação.
type MovimentacaoResponse struct {
	ID           string    `json:"id"`
	FerramentaID string    `json:"ferramenta_id"`
	FromType     *string   `json:"from_type,omitempty"`
	FromID       *string   `json:"from_id,omitempty"`
	ToType       string    `json:"to_type"`
	ToID         string    `json:"to_id"`
	UserID       string    `json:"user_id"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovimentacaoListResponse listagem de movimentações de uma ferramenta.
type MovimentacaoListResponse struct {
	Items []MovimentacaoResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// GrantObraPermissionRequest concessão de visibilidade de obra.
type GrantObraPermissionRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	ObraID string `json:"obra_id" validate:"required,uuid"`
}

// GrantFerramentaPermissionRequest concessão de visibilidade de ferramenta.
type GrantFerramentaPermissionRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	FerramentaID string `json:"ferramenta_id" validate:"required,uuid"`
}
