package repository

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// FerramentaRepository define o porto de persistência para ferramentas.
type FerramentaRepository interface {
	Create(f *entity.Ferramenta) error
	GetByID(id string) (*entity.Ferramenta, error)
	Update(f *entity.Ferramenta) error
	Delete(id string) error
	ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.Ferramenta, error)
	// ListDesaparecidasByOwners somente ferramentas com status desaparecida.
	ListDesaparecidasByOwners(ownerIDs []string) ([]*entity.Ferramenta, error)
}
