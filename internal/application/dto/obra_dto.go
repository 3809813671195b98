package dto

import "time"

// CreateObraRequest entrada para criar uma obra.
type CreateObraRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Endereco    string `json:"endereco"`
	Engenheiro  string `json:"engenheiro"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD, hoje se vazio
}

// UpdateObraRequest entrada para atualização parcial de uma obra.
type UpdateObraRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Endereco    *string `json:"endereco"`
	Engenheiro  *string `json:"engenheiro"`
}

// ObraResponse saída de uma obra.
type ObraResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Endereco    string     `json:"endereco"`
	Status      string     `json:"status"`
	OwnerID     string     `json:"owner_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Engenheiro  string     `json:"engenheiro,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ObraListResponse listagem paginada de obras.
type ObraListResponse struct {
	Items []ObraResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// AssistenciaResponse saída de uma assistência técnica.
type AssistenciaResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Endereco  string    `json:"endereco"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAssistenciaRequest entrada para criar uma assistência técnica.
type CreateAssistenciaRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Endereco string `json:"endereco"`
}
