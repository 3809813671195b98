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

var _ repository.CredencialRepository = (*CredencialRepo)(nil)

// CredencialRepo implementação de CredencialRepository sobre PostgreSQL.
// A tabela credenciais é 1:1 com users (user_id é PK).
type CredencialRepo struct {
	pool *pgxpool.Pool
}

// NewCredencialRepository constrói o adaptador de credenciais.
func NewCredencialRepository(pool *pgxpool.Pool) *CredencialRepo {
	return &CredencialRepo{pool: pool}
}

// Create persiste a credencial de um usuário.
func (r *CredencialRepo) Create(cred *entity.Credencial) error {
	query := `
		INSERT INTO credenciais (user_id, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		cred.UserID, cred.PasswordHash, cred.CreatedAt, cred.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credencial: %w", err)
	}
	return nil
}

// GetByUserID obtém a credencial do usuário.
func (r *CredencialRepo) GetByUserID(userID string) (*entity.Credencial, error) {
	query := `
		SELECT user_id, password_hash, created_at, updated_at
		FROM credenciais WHERE user_id = $1`
	var c entity.Credencial
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&c.UserID, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credencial: %w", err)
	}
	return &c, nil
}

// Replace troca o hash de senha do usuário.
func (r *CredencialRepo) Replace(cred *entity.Credencial) error {
	query := `
		UPDATE credenciais SET password_hash = $2, updated_at = $3 WHERE user_id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		cred.UserID, cred.PasswordHash, cred.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("replace credencial: %w", err)
	}
	return nil
}

// DeleteByUserID remove a credencial do usuário.
func (r *CredencialRepo) DeleteByUserID(userID string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM credenciais WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete credencial: %w", err)
	}
	return nil
}
