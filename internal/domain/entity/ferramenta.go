package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma Ferramenta.
const (
	FerramentaDisponivel   = "disponivel"
	FerramentaEmUso        = "em_uso"
	FerramentaDesaparecida = "desaparecida"
)

// Tipos de localização atual de uma ferramenta.
const (
	LocalObra        = "obra"
	LocalAssistencia = "assistencia"
)

// Ferramenta equipamento rastreado por localização e status.
// Invariante: status desaparecida implica CurrentType/CurrentID nulos.
type Ferramenta struct {
	ID                string
	Name              string
	Tipo              string
	Modelo            string
	Serial            string
	Status            string  // disponivel, em_uso, desaparecida
	CurrentType       *string // obra ou assistencia
	CurrentID         *string
	CadastradoPor     string
	OwnerID           string
	Descricao         string
	NF                string
	Marca             string
	Valor             decimal.Decimal // valor de compra
	TempoGarantiaDias int
	NumeroLacre       string
	NumeroPlaca       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EmLocal informa se a ferramenta tem uma localização atual definida.
func (f *Ferramenta) EmLocal() bool {
	return f.CurrentType != nil && f.CurrentID != nil
}
