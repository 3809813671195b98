package entity

import "time"

// Movimentacao registro imutável de uma transição de localização de
// uma ferramenta, sempre associado ao usuário que a executou.
type Movimentacao struct {
	ID           string
	FerramentaID string
	FromType     *string
	FromID       *string
	ToType       string
	ToID         string
	UserID       string
	Note         string
	CreatedAt    time.Time
}
