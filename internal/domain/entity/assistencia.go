package entity

import "time"

// AssistenciaTecnica fornecedor de assistência técnica para onde uma
// ferramenta pode ser enviada para reparo.
type AssistenciaTecnica struct {
	ID        string
	Name      string
	Endereco  string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
