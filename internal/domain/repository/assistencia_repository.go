package repository

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// AssistenciaRepository define o porto de persistência para assistências técnicas.
type AssistenciaRepository interface {
	Create(a *entity.AssistenciaTecnica) error
	GetByID(id string) (*entity.AssistenciaTecnica, error)
	Update(a *entity.AssistenciaTecnica) error
	Delete(id string) error
	ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.AssistenciaTecnica, error)
}
