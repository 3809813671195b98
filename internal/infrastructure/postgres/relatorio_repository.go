package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas read-only para relatórios de movimentação.
type RelatorioRepo struct {
	pool *pgxpool.Pool
}

// NewRelatorioRepository constrói o adaptador de relatórios.
func NewRelatorioRepository(pool *pgxpool.Pool) *RelatorioRepo {
	return &RelatorioRepo{pool: pool}
}

// MovimentacoesPorObra movimentações com origem ou destino na obra no
// período, com nomes de ferramenta, locais e usuário já resolvidos. A
// origem/destino podem ser obra ou assistência, então os nomes saem de um
// COALESCE entre as duas tabelas.
func (r *RelatorioRepo) MovimentacoesPorObra(
	ctx context.Context,
	obraID string,
	startDate, endDate time.Time,
) ([]repository.MovimentacaoRelatorioResult, error) {
	const query = `
	SELECT
	    m.id                                         AS movimentacao_id,
	    f.id                                         AS ferramenta_id,
	    f.name                                       AS ferramenta,
	    f.serial                                     AS serial,
	    f.valor                                      AS valor,
	    COALESCE(ofrom.title, afrom.name, '')        AS from_nome,
	    COALESCE(oto.title,   ato.name,   '')        AS to_nome,
	    u.name                                       AS usuario,
	    m.note                                       AS note,
	    m.created_at                                 AS created_at
	FROM movimentacoes m
	JOIN ferramentas f ON f.id = m.ferramenta_id
	JOIN users       u ON u.id = m.user_id
	LEFT JOIN obras                 ofrom ON m.from_type = 'obra'        AND ofrom.id = m.from_id
	LEFT JOIN assistencias_tecnicas afrom ON m.from_type = 'assistencia' AND afrom.id = m.from_id
	LEFT JOIN obras                 oto   ON m.to_type   = 'obra'        AND oto.id   = m.to_id
	LEFT JOIN assistencias_tecnicas ato   ON m.to_type   = 'assistencia' AND ato.id   = m.to_id
	WHERE ((m.to_type = 'obra' AND m.to_id = $1) OR (m.from_type = 'obra' AND m.from_id = $1))
	  AND m.created_at BETWEEN $2 AND $3
	ORDER BY m.created_at DESC`

	rows, err := r.pool.Query(ctx, query, obraID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("relatorio.MovimentacoesPorObra: %w", err)
	}
	defer rows.Close()

	var results []repository.MovimentacaoRelatorioResult
	for rows.Next() {
		var row repository.MovimentacaoRelatorioResult
		if err := rows.Scan(
			&row.MovimentacaoID,
			&row.FerramentaID,
			&row.Ferramenta,
			&row.Serial,
			&row.ValorFerramenta,
			&row.FromNome,
			&row.ToNome,
			&row.Usuario,
			&row.Note,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("relatorio.MovimentacoesPorObra scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ResumoFerramentas contagem e valor total por status no escopo dos hosts.
func (r *RelatorioRepo) ResumoFerramentas(ctx context.Context, ownerIDs []string) ([]repository.FerramentaStatusResult, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	const query = `
	SELECT status, COUNT(*) AS quantidade, COALESCE(SUM(valor), 0) AS valor_total
	FROM ferramentas
	WHERE owner_id = ANY($1)
	GROUP BY status
	ORDER BY status`

	rows, err := r.pool.Query(ctx, query, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("relatorio.ResumoFerramentas: %w", err)
	}
	defer rows.Close()

	var results []repository.FerramentaStatusResult
	for rows.Next() {
		var row repository.FerramentaStatusResult
		if err := rows.Scan(&row.Status, &row.Quantidade, &row.ValorTotal); err != nil {
			return nil, fmt.Errorf("relatorio.ResumoFerramentas scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
