package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

var _ repository.AssistenciaRepository = (*AssistenciaRepo)(nil)

// AssistenciaRepo implementação de AssistenciaRepository sobre PostgreSQL.
type AssistenciaRepo struct {
	pool *pgxpool.Pool
}

// NewAssistenciaRepository constrói o adaptador para assistências técnicas.
func NewAssistenciaRepository(pool *pgxpool.Pool) *AssistenciaRepo {
	return &AssistenciaRepo{pool: pool}
}

// Create persiste uma nova assistência técnica.
func (r *AssistenciaRepo) Create(a *entity.AssistenciaTecnica) error {
	query := `
		INSERT INTO assistencias_tecnicas (id, name, endereco, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Name, a.Endereco, a.OwnerID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assistencia: %w", err)
	}
	return nil
}

// GetByID obtém uma assistência por ID.
func (r *AssistenciaRepo) GetByID(id string) (*entity.AssistenciaTecnica, error) {
	query := `
		SELECT id, name, endereco, owner_id, created_at, updated_at
		FROM assistencias_tecnicas WHERE id = $1`
	var a entity.AssistenciaTecnica
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Endereco, &a.OwnerID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assistencia: %w", err)
	}
	return &a, nil
}

// Update atualiza uma assistência.
func (r *AssistenciaRepo) Update(a *entity.AssistenciaTecnica) error {
	query := `
		UPDATE assistencias_tecnicas SET name = $2, endereco = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, a.ID, a.Name, a.Endereco, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update assistencia: %w", err)
	}
	return nil
}

// Delete remove uma assistência por ID.
func (r *AssistenciaRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM assistencias_tecnicas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assistencia: %w", err)
	}
	return nil
}

// ListByOwners assistências de qualquer um dos hosts, por nome.
func (r *AssistenciaRepo) ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.AssistenciaTecnica, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, endereco, owner_id, created_at, updated_at
		FROM assistencias_tecnicas WHERE owner_id = ANY($1) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, ownerIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assistencias: %w", err)
	}
	defer rows.Close()
	var list []*entity.AssistenciaTecnica
	for rows.Next() {
		var a entity.AssistenciaTecnica
		if err := rows.Scan(&a.ID, &a.Name, &a.Endereco, &a.OwnerID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assistencia: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
