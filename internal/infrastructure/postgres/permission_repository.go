package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementação de PermissionRepository sobre PostgreSQL.
// Conceder duas vezes a mesma permissão é idempotente (ON CONFLICT).
type PermissionRepo struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository constrói o adaptador de permissões.
func NewPermissionRepository(pool *pgxpool.Pool) *PermissionRepo {
	return &PermissionRepo{pool: pool}
}

// ObraIDsByUser ids das obras visíveis ao funcionário.
func (r *PermissionRepo) ObraIDsByUser(userID string) ([]string, error) {
	return r.ids(`SELECT obra_id FROM user_obra_permissions WHERE user_id = $1`, userID)
}

// FerramentaIDsByUser ids das ferramentas visíveis ao funcionário.
func (r *PermissionRepo) FerramentaIDsByUser(userID string) ([]string, error) {
	return r.ids(`SELECT ferramenta_id FROM user_ferramenta_permissions WHERE user_id = $1`, userID)
}

// HasObra informa se o funcionário tem visibilidade sobre a obra.
func (r *PermissionRepo) HasObra(userID, obraID string) (bool, error) {
	return r.exists(`SELECT EXISTS(SELECT 1 FROM user_obra_permissions WHERE user_id = $1 AND obra_id = $2)`, userID, obraID)
}

// HasFerramenta informa se o funcionário tem visibilidade sobre a ferramenta.
func (r *PermissionRepo) HasFerramenta(userID, ferramentaID string) (bool, error) {
	return r.exists(`SELECT EXISTS(SELECT 1 FROM user_ferramenta_permissions WHERE user_id = $1 AND ferramenta_id = $2)`, userID, ferramentaID)
}

// GrantObra concede visibilidade sobre uma obra.
func (r *PermissionRepo) GrantObra(p *entity.ObraPermission) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO user_obra_permissions (id, user_id, obra_id, host_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, obra_id) DO NOTHING`
	_, err := r.pool.Exec(context.Background(), query, p.ID, p.UserID, p.ObraID, p.HostID, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("grant obra permission: %w", err)
	}
	return nil
}

// RevokeObra revoga a visibilidade sobre uma obra.
func (r *PermissionRepo) RevokeObra(userID, obraID string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM user_obra_permissions WHERE user_id = $1 AND obra_id = $2`, userID, obraID)
	if err != nil {
		return fmt.Errorf("revoke obra permission: %w", err)
	}
	return nil
}

// GrantFerramenta concede visibilidade sobre uma ferramenta.
func (r *PermissionRepo) GrantFerramenta(p *entity.FerramentaPermission) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO user_ferramenta_permissions (id, user_id, ferramenta_id, host_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, ferramenta_id) DO NOTHING`
	_, err := r.pool.Exec(context.Background(), query, p.ID, p.UserID, p.FerramentaID, p.HostID, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("grant ferramenta permission: %w", err)
	}
	return nil
}

// RevokeFerramenta revoga a visibilidade sobre uma ferramenta.
func (r *PermissionRepo) RevokeFerramenta(userID, ferramentaID string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM user_ferramenta_permissions WHERE user_id = $1 AND ferramenta_id = $2`, userID, ferramentaID)
	if err != nil {
		return fmt.Errorf("revoke ferramenta permission: %w", err)
	}
	return nil
}

func (r *PermissionRepo) ids(query string, args ...any) ([]string, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list permission ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan permission id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PermissionRepo) exists(query string, args ...any) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(context.Background(), query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("check permission: %w", err)
	}
	return ok, nil
}
