package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

var _ repository.HistoricoRepository = (*HistoricoRepo)(nil)

// HistoricoRepo implementação append-only sobre PostgreSQL (usável com
// pool ou tx). Metadata é persistido como jsonb.
type HistoricoRepo struct {
	q Querier
}

// NewHistoricoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewHistoricoRepository(q Querier) *HistoricoRepo {
	return &HistoricoRepo{q: q}
}

// Create persiste uma entrada de auditoria.
func (r *HistoricoRepo) Create(h *entity.Historico) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	var meta []byte
	if h.Metadata != nil {
		b, err := json.Marshal(h.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		meta = b
	}
	query := `
		INSERT INTO historico (id, tipo_evento, descricao, obra_id, movimentacao_id, user_id, owner_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.TipoEvento, h.Descricao, h.ObraID, h.MovimentacaoID, h.UserID, h.OwnerID,
		meta, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert historico: %w", err)
	}
	return nil
}

// ListByOwners entradas no escopo dos hosts, mais recentes primeiro.
func (r *HistoricoRepo) ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.Historico, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, tipo_evento, descricao, obra_id, movimentacao_id, user_id, owner_id, metadata, created_at
		FROM historico WHERE owner_id = ANY($1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list historico: %w", err)
	}
	defer rows.Close()
	var list []*entity.Historico
	for rows.Next() {
		var h entity.Historico
		var meta []byte
		if err := rows.Scan(&h.ID, &h.TipoEvento, &h.Descricao, &h.ObraID, &h.MovimentacaoID,
			&h.UserID, &h.OwnerID, &meta, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan historico: %w", err)
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &h.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
