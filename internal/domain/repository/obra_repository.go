package repository

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// ObraRepository define o porto de persistência para obras.
type ObraRepository interface {
	Create(obra *entity.Obra) error
	GetByID(id string) (*entity.Obra, error)
	Update(obra *entity.Obra) error
	Delete(id string) error
	// ListByOwners obras pertencentes a qualquer um dos hosts informados.
	ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.Obra, error)
}
