package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praticaeng/obraflow-api/internal/application/movimentacao"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

var _ movimentacao.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ferramentaRepo repository.FerramentaRepository,
	movRepo repository.MovimentacaoRepository,
	histRepo repository.HistoricoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ferramentaRepo := NewFerramentaRepository(tx)
	movRepo := NewMovimentacaoRepository(tx)
	histRepo := NewHistoricoRepository(tx)

	if err := fn(ferramentaRepo, movRepo, histRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
