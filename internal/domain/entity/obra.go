package entity

import "time"

// Status de ciclo de vida de uma Obra.
const (
	ObraAtiva      = "ativa"
	ObraFinalizada = "finalizada"
)

// Obra representa uma obra (canteiro) pertencente a um host.
// Finalizar registra EndDate; a obra pode ser reativada depois.
type Obra struct {
	ID          string
	Title       string
	Description string
	Endereco    string
	Status      string // ativa, finalizada
	OwnerID     string
	StartDate   time.Time
	EndDate     *time.Time
	Engenheiro  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
