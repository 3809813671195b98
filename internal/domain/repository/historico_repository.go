package repository

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// HistoricoRepository define o porto de persistência para a auditoria.
// Append-only.
type HistoricoRepository interface {
	Create(h *entity.Historico) error
	ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.Historico, error)
}
