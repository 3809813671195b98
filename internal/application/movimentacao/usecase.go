package movimentacao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// UseCase transições de localização e status de ferramentas, sempre
// transacionais: localização nova + registro de movimentação + histórico
// em um único Commit.
type UseCase struct {
	txRunner     TxRunner
	ferramentas  repository.FerramentaRepository
	obras        repository.ObraRepository
	assistencias repository.AssistenciaRepository
	movs         repository.MovimentacaoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	ferramentas repository.FerramentaRepository,
	obras repository.ObraRepository,
	assistencias repository.AssistenciaRepository,
	movs repository.MovimentacaoRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		ferramentas:  ferramentas,
		obras:        obras,
		assistencias: assistencias,
		movs:         movs,
	}
}

// TransferirInput entrada para transferir uma ferramenta.
type TransferirInput struct {
	FerramentaID string
	ToType       string // obra ou assistencia
	ToID         string
	UserID       string
	Note         string
}

// Transferir move a ferramenta para a nova localização. Valida o destino,
// registra a movimentação com a origem anterior e marca a ferramenta como
// em uso. Commit ou Rollback pelo TxRunner.
func (uc *UseCase) Transferir(ctx context.Context, in TransferirInput) (*dto.MovimentacaoResponse, error) {
	if in.FerramentaID == "" || in.ToID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	switch in.ToType {
	case entity.LocalObra:
		obra, err := uc.obras.GetByID(in.ToID)
		if err != nil || obra == nil {
			return nil, domain.ErrNotFound
		}
		if obra.Status == entity.ObraFinalizada {
			return nil, domain.ErrObraFinalizada
		}
	case entity.LocalAssistencia:
		a, err := uc.assistencias.GetByID(in.ToID)
		if err != nil || a == nil {
			return nil, domain.ErrNotFound
		}
	default:
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	var out *dto.MovimentacaoResponse

	err := uc.txRunner.Run(ctx, func(
		ferramentaRepo repository.FerramentaRepository,
		movRepo repository.MovimentacaoRepository,
		histRepo repository.HistoricoRepository,
	) error {
		f, err := ferramentaRepo.GetByID(in.FerramentaID)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}

		mov := &entity.Movimentacao{
			ID:           uuid.New().String(),
			FerramentaID: f.ID,
			FromType:     f.CurrentType,
			FromID:       f.CurrentID,
			ToType:       in.ToType,
			ToID:         in.ToID,
			UserID:       in.UserID,
			Note:         in.Note,
			CreatedAt:    now,
		}

		toType := in.ToType
		toID := in.ToID
		f.CurrentType = &toType
		f.CurrentID = &toID
		f.Status = entity.FerramentaEmUso
		f.UpdatedAt = now
		if err := ferramentaRepo.Update(f); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		movID := mov.ID
		userID := in.UserID
		ownerID := f.OwnerID
		if err := histRepo.Create(&entity.Historico{
			ID:             uuid.New().String(),
			TipoEvento:     "ferramenta_transferida",
			Descricao:      "Ferramenta transferida: " + f.Name,
			MovimentacaoID: &movID,
			UserID:         &userID,
			OwnerID:        &ownerID,
			Metadata: map[string]any{
				"to_type": in.ToType,
				"to_id":   in.ToID,
			},
			CreatedAt: now,
		}); err != nil {
			return err
		}

		out = toMovimentacaoResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarcarDesaparecida marca a ferramenta como desaparecida. A localização
// atual é limpa: ferramenta desaparecida não tem local acionável.
func (uc *UseCase) MarcarDesaparecida(ctx context.Context, ferramentaID, userID string) error {
	return uc.mudarStatus(ctx, ferramentaID, userID, entity.FerramentaDesaparecida)
}

// MarcarEncontrada retorna uma ferramenta desaparecida ao estado em uso
// (fluxo da tela de desaparecidos do cliente).
func (uc *UseCase) MarcarEncontrada(ctx context.Context, ferramentaID, userID string) error {
	return uc.mudarStatus(ctx, ferramentaID, userID, entity.FerramentaEmUso)
}

func (uc *UseCase) mudarStatus(ctx context.Context, ferramentaID, userID, novoStatus string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		ferramentaRepo repository.FerramentaRepository,
		_ repository.MovimentacaoRepository,
		histRepo repository.HistoricoRepository,
	) error {
		f, err := ferramentaRepo.GetByID(ferramentaID)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}

		anterior := f.Status
		f.Status = novoStatus
		if novoStatus == entity.FerramentaDesaparecida {
			f.CurrentType = nil
			f.CurrentID = nil
		}
		f.UpdatedAt = now
		if err := ferramentaRepo.Update(f); err != nil {
			return err
		}

		uid := userID
		ownerID := f.OwnerID
		return histRepo.Create(&entity.Historico{
			ID:         uuid.New().String(),
			TipoEvento: "ferramenta_status",
			Descricao:  "Status alterado: " + f.Name,
			UserID:     &uid,
			OwnerID:    &ownerID,
			Metadata: map[string]any{
				"status_anterior": anterior,
				"status_novo":     novoStatus,
			},
			CreatedAt: now,
		})
	})
}

// Listar movimentações de uma ferramenta, mais recentes primeiro.
func (uc *UseCase) Listar(ferramentaID string, limit, offset int) (*dto.MovimentacaoListResponse, error) {
	list, err := uc.movs.ListByFerramenta(ferramentaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovimentacaoResponse(m))
	}
	return &dto.MovimentacaoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovimentacaoResponse(m *entity.Movimentacao) *dto.MovimentacaoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimentacaoResponse{
		ID:           m.ID,
		FerramentaID: m.FerramentaID,
		FromType:     m.FromType,
		FromID:       m.FromID,
		ToType:       m.ToType,
		ToID:         m.ToID,
		UserID:       m.UserID,
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
	}
}
