package movimentacao

import (
	"context"

	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de DB, passando
// repositórios atados a essa tx. Garante atomicidade entre a atualização
// da ferramenta, o log de movimentação e o histórico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ferramentaRepo repository.FerramentaRepository,
		movRepo repository.MovimentacaoRepository,
		histRepo repository.HistoricoRepository,
	) error) error
}
