package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// ObraUseCase casos de uso de obras: CRUD e ciclo de vida
// (finalizar/reativar).
type ObraUseCase struct {
	repo repository.ObraRepository
	hist repository.HistoricoRepository
}

// NewObraUseCase constrói o caso de uso.
func NewObraUseCase(repo repository.ObraRepository, hist repository.HistoricoRepository) *ObraUseCase {
	return &ObraUseCase{repo: repo, hist: hist}
}

// Create cria uma nova obra ativa pertencente ao host.
func (uc *ObraUseCase) Create(ownerID string, in dto.CreateObraRequest) (*dto.ObraResponse, error) {
	now := time.Now()
	start := now
	if in.StartDate != "" {
		if d, err := time.Parse("2006-01-02", in.StartDate); err == nil {
			start = d
		}
	}
	obra := &entity.Obra{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Endereco:    in.Endereco,
		Status:      entity.ObraAtiva,
		OwnerID:     ownerID,
		StartDate:   start,
		Engenheiro:  in.Engenheiro,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(obra); err != nil {
		return nil, err
	}
	uc.registrar("obra_criada", "Obra criada: "+obra.Title, obra, ownerID, nil)
	return toObraResponse(obra), nil
}

// GetByID obtém uma obra por ID.
func (uc *ObraUseCase) GetByID(id string) (*dto.ObraResponse, error) {
	obra, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, nil
	}
	return toObraResponse(obra), nil
}

// Update atualização parcial de uma obra.
func (uc *ObraUseCase) Update(id string, in dto.UpdateObraRequest) (*dto.ObraResponse, error) {
	obra, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, nil
	}
	if in.Title != nil {
		obra.Title = *in.Title
	}
	if in.Description != nil {
		obra.Description = *in.Description
	}
	if in.Endereco != nil {
		obra.Endereco = *in.Endereco
	}
	if in.Engenheiro != nil {
		obra.Engenheiro = *in.Engenheiro
	}
	obra.UpdatedAt = time.Now()
	if err := uc.repo.Update(obra); err != nil {
		return nil, err
	}
	return toObraResponse(obra), nil
}

// Finalizar encerra a obra: status finalizada + data de término.
// Terminal para os fluxos normais; Reativar desfaz.
func (uc *ObraUseCase) Finalizar(id, actorID string) (*dto.ObraResponse, error) {
	obra, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, nil
	}
	if obra.Status == entity.ObraFinalizada {
		return nil, domain.ErrObraFinalizada
	}
	now := time.Now()
	obra.Status = entity.ObraFinalizada
	obra.EndDate = &now
	obra.UpdatedAt = now
	if err := uc.repo.Update(obra); err != nil {
		return nil, err
	}
	uc.registrar("obra_finalizada", "Obra finalizada: "+obra.Title, obra, actorID, map[string]any{
		"end_date": now.Format("2006-01-02"),
	})
	return toObraResponse(obra), nil
}

// Reativar retorna uma obra finalizada ao estado ativa, limpando a data de
// término.
func (uc *ObraUseCase) Reativar(id, actorID string) (*dto.ObraResponse, error) {
	obra, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, nil
	}
	obra.Status = entity.ObraAtiva
	obra.EndDate = nil
	obra.UpdatedAt = time.Now()
	if err := uc.repo.Update(obra); err != nil {
		return nil, err
	}
	uc.registrar("obra_reativada", "Obra reativada: "+obra.Title, obra, actorID, nil)
	return toObraResponse(obra), nil
}

// List obras dos donos informados, paginada. A filtragem de visibilidade
// por funcionário é aplicada pelo chamador (authz).
func (uc *ObraUseCase) List(ownerIDs []string, limit, offset int) ([]*entity.Obra, error) {
	return uc.repo.ListByOwners(ownerIDs, limit, offset)
}

// registrar insere a entrada de auditoria. Falha nunca interrompe o fluxo
// principal: é apenas logada pelo repositório.
func (uc *ObraUseCase) registrar(tipo, descricao string, obra *entity.Obra, actorID string, metadata map[string]any) {
	obraID := obra.ID
	userID := actorID
	ownerID := obra.OwnerID
	_ = uc.hist.Create(&entity.Historico{
		ID:         uuid.New().String(),
		TipoEvento: tipo,
		Descricao:  descricao,
		ObraID:     &obraID,
		UserID:     &userID,
		OwnerID:    &ownerID,
		Metadata:   metadata,
		CreatedAt:  time.Now(),
	})
}

func toObraResponse(o *entity.Obra) *dto.ObraResponse {
	if o == nil {
		return nil
	}
	return &dto.ObraResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Endereco:    o.Endereco,
		Status:      o.Status,
		OwnerID:     o.OwnerID,
		StartDate:   o.StartDate,
		EndDate:     o.EndDate,
		Engenheiro:  o.Engenheiro,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToObraResponses converte a lista filtrada para DTOs.
func ToObraResponses(obras []*entity.Obra) []dto.ObraResponse {
	items := make([]dto.ObraResponse, 0, len(obras))
	for _, o := range obras {
		items = append(items, *toObraResponse(o))
	}
	return items
}
