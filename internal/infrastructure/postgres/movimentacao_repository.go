package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação sobre PostgreSQL (usável com pool ou tx).
// O log é imutável: só há INSERT e SELECT.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

const movimentacaoColumns = `id, ferramenta_id, from_type, from_id, to_type, to_id, user_id, note, created_at`

// Create persiste um registro de movimentação.
func (r *MovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentacoes (id, ferramenta_id, from_type, from_id, to_type, to_id, user_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.FerramentaID, mov.FromType, mov.FromID, mov.ToType, mov.ToID,
		mov.UserID, mov.Note, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// ListByFerramenta movimentações de uma ferramenta, mais recentes primeiro.
func (r *MovimentacaoRepo) ListByFerramenta(ferramentaID string, limit, offset int) ([]*entity.Movimentacao, error) {
	query := `
		SELECT ` + movimentacaoColumns + `
		FROM movimentacoes WHERE ferramenta_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, ferramentaID, limit, offset)
}

// ListByObra movimentações com origem ou destino na obra, no período.
func (r *MovimentacaoRepo) ListByObra(obraID string, from, to *time.Time, limit, offset int) ([]*entity.Movimentacao, error) {
	query := `
		SELECT ` + movimentacaoColumns + `
		FROM movimentacoes
		WHERE ((to_type = 'obra' AND to_id = $1) OR (from_type = 'obra' AND from_id = $1))
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	return r.list(query, obraID, from, to, limit, offset)
}

func (r *MovimentacaoRepo) list(query string, args ...any) ([]*entity.Movimentacao, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		if err := rows.Scan(&m.ID, &m.FerramentaID, &m.FromType, &m.FromID, &m.ToType, &m.ToID,
			&m.UserID, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
