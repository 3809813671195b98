package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

var _ repository.FerramentaRepository = (*FerramentaRepo)(nil)

// FerramentaRepo implementação de FerramentaRepository sobre PostgreSQL
// (usável com pool ou tx).
type FerramentaRepo struct {
	q Querier
}

// NewFerramentaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFerramentaRepository(q Querier) *FerramentaRepo {
	return &FerramentaRepo{q: q}
}

const ferramentaColumns = `id, name, tipo, modelo, serial, status, current_type, current_id,
	cadastrado_por, owner_id, descricao, nf, marca, valor, tempo_garantia_dias,
	numero_lacre, numero_placa, created_at, updated_at`

// Create persiste uma nova ferramenta.
func (r *FerramentaRepo) Create(f *entity.Ferramenta) error {
	query := `
		INSERT INTO ferramentas (id, name, tipo, modelo, serial, status, current_type, current_id,
			cadastrado_por, owner_id, descricao, nf, marca, valor, tempo_garantia_dias,
			numero_lacre, numero_placa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Name, f.Tipo, f.Modelo, f.Serial, f.Status, f.CurrentType, f.CurrentID,
		f.CadastradoPor, f.OwnerID, f.Descricao, f.NF, f.Marca, f.Valor, f.TempoGarantiaDias,
		f.NumeroLacre, f.NumeroPlaca, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ferramenta: %w", err)
	}
	return nil
}

// GetByID obtém uma ferramenta por ID.
func (r *FerramentaRepo) GetByID(id string) (*entity.Ferramenta, error) {
	query := `SELECT ` + ferramentaColumns + ` FROM ferramentas WHERE id = $1`
	var f entity.Ferramenta
	err := scanFerramenta(r.q.QueryRow(context.Background(), query, id), &f)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ferramenta: %w", err)
	}
	return &f, nil
}

// Update atualiza uma ferramenta (inclui status e localização atual).
func (r *FerramentaRepo) Update(f *entity.Ferramenta) error {
	query := `
		UPDATE ferramentas SET name = $2, tipo = $3, modelo = $4, serial = $5, status = $6,
			current_type = $7, current_id = $8, descricao = $9, nf = $10, marca = $11,
			valor = $12, tempo_garantia_dias = $13, numero_lacre = $14, numero_placa = $15,
			updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Name, f.Tipo, f.Modelo, f.Serial, f.Status,
		f.CurrentType, f.CurrentID, f.Descricao, f.NF, f.Marca,
		f.Valor, f.TempoGarantiaDias, f.NumeroLacre, f.NumeroPlaca, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ferramenta: %w", err)
	}
	return nil
}

// Delete remove uma ferramenta por ID.
func (r *FerramentaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ferramentas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ferramenta: %w", err)
	}
	return nil
}

// ListByOwners ferramentas de qualquer um dos hosts, por nome.
func (r *FerramentaRepo) ListByOwners(ownerIDs []string, limit, offset int) ([]*entity.Ferramenta, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + ferramentaColumns + `
		FROM ferramentas WHERE owner_id = ANY($1) ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, ownerIDs, limit, offset)
}

// ListDesaparecidasByOwners somente ferramentas desaparecidas.
func (r *FerramentaRepo) ListDesaparecidasByOwners(ownerIDs []string) ([]*entity.Ferramenta, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + ferramentaColumns + `
		FROM ferramentas WHERE owner_id = ANY($1) AND status = 'desaparecida' ORDER BY updated_at DESC`
	return r.list(query, ownerIDs)
}

func (r *FerramentaRepo) list(query string, args ...any) ([]*entity.Ferramenta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ferramentas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ferramenta
	for rows.Next() {
		var f entity.Ferramenta
		if err := scanFerramenta(rows, &f); err != nil {
			return nil, fmt.Errorf("scan ferramenta: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

func scanFerramenta(row pgx.Row, f *entity.Ferramenta) error {
	return row.Scan(
		&f.ID, &f.Name, &f.Tipo, &f.Modelo, &f.Serial, &f.Status, &f.CurrentType, &f.CurrentID,
		&f.CadastradoPor, &f.OwnerID, &f.Descricao, &f.NF, &f.Marca, &f.Valor, &f.TempoGarantiaDias,
		&f.NumeroLacre, &f.NumeroPlaca, &f.CreatedAt, &f.UpdatedAt,
	)
}
