package repository

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// CredencialRepository define o porto de persistência para credenciais.
type CredencialRepository interface {
	Create(cred *entity.Credencial) error
	GetByUserID(userID string) (*entity.Credencial, error)
	// Replace troca o hash de senha do usuário (troca de senha).
	Replace(cred *entity.Credencial) error
	DeleteByUserID(userID string) error
}
