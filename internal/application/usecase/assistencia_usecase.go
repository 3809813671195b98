package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// AssistenciaUseCase CRUD de assistências técnicas.
type AssistenciaUseCase struct {
	repo repository.AssistenciaRepository
}

// NewAssistenciaUseCase constrói o caso de uso.
func NewAssistenciaUseCase(repo repository.AssistenciaRepository) *AssistenciaUseCase {
	return &AssistenciaUseCase{repo: repo}
}

// Create cria uma assistência técnica do host.
func (uc *AssistenciaUseCase) Create(ownerID string, in dto.CreateAssistenciaRequest) (*dto.AssistenciaResponse, error) {
	now := time.Now()
	a := &entity.AssistenciaTecnica{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Endereco:  in.Endereco,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAssistenciaResponse(a), nil
}

// GetByID obtém uma assistência por ID.
func (uc *AssistenciaUseCase) GetByID(id string) (*dto.AssistenciaResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAssistenciaResponse(a), nil
}

// List assistências dos donos informados.
func (uc *AssistenciaUseCase) List(ownerIDs []string, limit, offset int) ([]dto.AssistenciaResponse, error) {
	list, err := uc.repo.ListByOwners(ownerIDs, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssistenciaResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssistenciaResponse(a))
	}
	return items, nil
}

// Delete remove uma assistência por ID.
func (uc *AssistenciaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAssistenciaResponse(a *entity.AssistenciaTecnica) *dto.AssistenciaResponse {
	if a == nil {
		return nil
	}
	return &dto.AssistenciaResponse{
		ID:        a.ID,
		Name:      a.Name,
		Endereco:  a.Endereco,
		OwnerID:   a.OwnerID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
