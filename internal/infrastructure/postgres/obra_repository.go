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

var _ repository.ObraRepository = (*ObraRepo)(nil)

// ObraRepo implementação de ObraRepository sobre PostgreSQL.
type ObraRepo struct {
	pool *pgxpool.Pool
}

// NewObraRepository constrói o adaptador de persistência para obras.
func NewObraRepository(pool *pgxpool.Pool) *ObraRepo {
	return &ObraRepo{pool: pool}
}

const obraColumns = `id, title, description, endereco, status, owner_id, start_date, end_date, engenheiro, created_at, updated_at`

// Create persiste uma nova obra.
func (r *ObraRepo) Create(obra *entity.Obra) error {
	query := `
		INSERT INTO obras (id, title, description, endereco, status, owner_id, start_date, end_date, engenheiro, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		obra.ID, obra.Title, obra.Description, obra.Endereco, obra.Status, obra.OwnerID,
		obra.StartDate, obra.EndDate, obra.Engenheiro, obra.CreatedAt, obra.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert obra: %w", err)
	}
	return nil
}

// GetByID obtém uma obra por ID.
func (r *ObraRepo) GetByID(id string) (*entity.Obra, error) {
	query := `SELECT ` + obraColumns + ` FROM obras WHERE id = $1`
	var o entity.Obra
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Title, &o.Description, &o.Endereco, &o.Status, &o.OwnerID,
		&o.StartDate, &o.EndDate, &o.Engenheiro, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obra: %w", err)
	}
	return &o, nil
}

// Update atualiza uma obra.
func (r *ObraRepo) Update(obra *entity.Obra) error {
	query := `
		UPDATE obras SET title = $2, description = $3, endereco = $4, status = $5,
			start_date = $6, end_date = $7, engenheiro = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		obra.ID, obra.Title, obra.Description, obra.Endereco, obra.Status,
		obra.StartDate, obra.EndDate, obra.Engenheiro, obra.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update obra: %w", err)
	}
	return nil
}

// Delete remove uma obra por ID.
func (r *ObraRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM obras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete obra: %w", err)
	}
	return nil
}

// ListByOwners obras pertencentes a qualquer um dos hosts, mais recentes
// primeiro.
func (r *ObraRepo) ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.Obra, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + obraColumns + `
		FROM obras WHERE owner_id = ANY($1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, ownerIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list obras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Obra
	for rows.Next() {
		var o entity.Obra
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.Endereco, &o.Status, &o.OwnerID,
			&o.StartDate, &o.EndDate, &o.Engenheiro, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan obra: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
