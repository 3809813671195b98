package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, name, email, cnpj, role, host_id, created_at, updated_at`

// Create persiste um novo usuário.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, cnpj, role, host_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.CNPJ, user.Role, user.HostID,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByCNPJAndName obtém um usuário por CNPJ exato e nome case-insensitive.
// É a busca do login.
func (r *UserRepo) GetByCNPJAndName(cnpj, name string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE cnpj = $1 AND name ILIKE $2 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, cnpj, name), "get user by cnpj and name")
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CNPJ, &u.Role, &u.HostID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update atualiza um usuário.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, cnpj = $4, role = $5, host_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.CNPJ, user.Role, user.HostID, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete remove um usuário por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ListFuncionariosByHosts funcionários cadastrados por qualquer um dos
// hosts, ordenados por nome.
func (r *UserRepo) ListFuncionariosByHosts(hostIDs []string) ([]*entity.User, error) {
	if len(hostIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE role = 'funcionario' AND host_id = ANY($1) ORDER BY name`
	return r.list(query, hostIDs)
}

// ListHostsByCNPJ demais hosts da mesma empresa, excluindo excludeID.
func (r *UserRepo) ListHostsByCNPJ(cnpj, excludeID string) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE role = 'host' AND cnpj = $1 AND id <> $2 ORDER BY name`
	return r.list(query, cnpj, excludeID)
}

// HostIDsByCNPJ ids de todos os hosts que compartilham o CNPJ.
func (r *UserRepo) HostIDsByCNPJ(cnpj string) ([]string, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id FROM users WHERE role = 'host' AND cnpj = $1`, cnpj)
	if err != nil {
		return nil, fmt.Errorf("host ids by cnpj: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan host id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *UserRepo) list(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CNPJ, &u.Role, &u.HostID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
