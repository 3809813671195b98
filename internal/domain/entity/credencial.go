package entity

import "time"

// Credencial senha de um usuário (1:1 com User).
type Credencial struct {
	UserID       string
	PasswordHash string // bcrypt, nunca em claro após persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
