package repository

import (
	"time"

	"github.com/praticaeng/obraflow-api/internal/domain/entity"
)

// MovimentacaoRepository define o porto de persistência para o log de
// movimentações. Registros são imutáveis: não há Update nem Delete.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	ListByFerramenta(ferramentaID string, limit, offset int) ([]*entity.Movimentacao, error)
	// ListByObra movimentações com origem ou destino na obra, no período.
	ListByObra(obraID string, from, to *time.Time, limit, offset int) ([]*entity.Movimentacao, error)
}
