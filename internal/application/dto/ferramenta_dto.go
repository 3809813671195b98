package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFerramentaRequest entrada para cadastrar uma ferramenta.
// ObraID opcional: se presente, a ferramenta nasce em uso nessa obra.
type CreateFerramentaRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Tipo              string          `json:"tipo"`
	Modelo            string          `json:"modelo"`
	Serial            string          `json:"serial"`
	ObraID            string          `json:"obra_id"`
	Descricao         string          `json:"descricao"`
	NF                string          `json:"nf"`
	Marca             string          `json:"marca"`
	Valor             decimal.Decimal `json:"valor"`
	TempoGarantiaDias int             `json:"tempo_garantia_dias"`
	NumeroLacre       string          `json:"numero_lacre"`
	NumeroPlaca       string          `json:"numero_placa"`
}

// UpdateFerramentaRequest atualização parcial de uma ferramenta.
type UpdateFerramentaRequest struct {
	Name              *string          `json:"name"`
	Tipo              *string          `json:"tipo"`
	Modelo            *string          `json:"modelo"`
	Serial            *string          `json:"serial"`
	Descricao         *string          `json:"descricao"`
	NF                *string          `json:"nf"`
	Marca             *string          `json:"marca"`
	Valor             *decimal.Decimal `json:"valor"`
	TempoGarantiaDias *int             `json:"tempo_garantia_dias"`
	NumeroLacre       *string          `json:"numero_lacre"`
	NumeroPlaca       *string          `json:"numero_placa"`
}

// FerramentaResponse saída de uma ferramenta.
type FerramentaResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Tipo              string          `json:"tipo,omitempty"`
	Modelo            string          `json:"modelo,omitempty"`
	Serial            string          `json:"serial,omitempty"`
	Status            string          `json:"status"`
	CurrentType       *string         `json:"current_type,omitempty"`
	CurrentID         *string         `json:"current_id,omitempty"`
	CadastradoPor     string          `json:"cadastrado_por"`
	OwnerID           string          `json:"owner_id"`
	Descricao         string          `json:"descricao,omitempty"`
	NF                string          `json:"nf,omitempty"`
	Marca             string          `json:"marca,omitempty"`
	Valor             decimal.Decimal `json:"valor"`
	TempoGarantiaDias int             `json:"tempo_garantia_dias,omitempty"`
	NumeroLacre       string          `json:"numero_lacre,omitempty"`
	NumeroPlaca       string          `json:"numero_placa,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// FerramentaListResponse listagem paginada de ferramentas.
type FerramentaListResponse struct {
	Items []FerramentaResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
