package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// FerramentaUseCase CRUD de ferramentas. Transferências e status
// desaparecida ficam no pacote movimentacao.
type FerramentaUseCase struct {
	repo  repository.FerramentaRepository
	obras repository.ObraRepository
}

// NewFerramentaUseCase constrói o caso de uso.
func NewFerramentaUseCase(repo repository.FerramentaRepository, obras repository.ObraRepository) *FerramentaUseCase {
	return &FerramentaUseCase{repo: repo, obras: obras}
}

// Create cadastra uma ferramenta. Com obra inicial nasce em uso nessa
// obra; sem obra nasce disponível. A obra inicial precisa existir e
// estar ativa, a mesma regra do destino de uma transferência.
func (uc *FerramentaUseCase) Create(ownerID, cadastradoPor string, in dto.CreateFerramentaRequest) (*dto.FerramentaResponse, error) {
	if in.ObraID != "" {
		obra, err := uc.obras.GetByID(in.ObraID)
		if err != nil {
			return nil, err
		}
		if obra == nil {
			return nil, domain.ErrNotFound
		}
		if obra.Status == entity.ObraFinalizada {
			return nil, domain.ErrObraFinalizada
		}
	}
	now := time.Now()
	f := &entity.Ferramenta{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Tipo:              in.Tipo,
		Modelo:            in.Modelo,
		Serial:            in.Serial,
		Status:            entity.FerramentaDisponivel,
		CadastradoPor:     cadastradoPor,
		OwnerID:           ownerID,
		Descricao:         in.Descricao,
		NF:                in.NF,
		Marca:             in.Marca,
		Valor:             in.Valor,
		TempoGarantiaDias: in.TempoGarantiaDias,
		NumeroLacre:       in.NumeroLacre,
		NumeroPlaca:       in.NumeroPlaca,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.ObraID != "" {
		tipo := entity.LocalObra
		obraID := in.ObraID
		f.Status = entity.FerramentaEmUso
		f.CurrentType = &tipo
		f.CurrentID = &obraID
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return ToFerramentaResponse(f), nil
}

// GetByID obtém uma ferramenta por ID.
func (uc *FerramentaUseCase) GetByID(id string) (*dto.FerramentaResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return ToFerramentaResponse(f), nil
}

// Update atualização parcial dos dados cadastrais.
func (uc *FerramentaUseCase) Update(id string, in dto.UpdateFerramentaRequest) (*dto.FerramentaResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	if in.Name != nil {
		f.Name = *in.Name
	}
	if in.Tipo != nil {
		f.Tipo = *in.Tipo
	}
	if in.Modelo != nil {
		f.Modelo = *in.Modelo
	}
	if in.Serial != nil {
		f.Serial = *in.Serial
	}
	if in.Descricao != nil {
		f.Descricao = *in.Descricao
	}
	if in.NF != nil {
		f.NF = *in.NF
	}
	if in.Marca != nil {
		f.Marca = *in.Marca
	}
	if in.Valor != nil {
		f.Valor = *in.Valor
	}
	if in.TempoGarantiaDias != nil {
		f.TempoGarantiaDias = *in.TempoGarantiaDias
	}
	if in.NumeroLacre != nil {
		f.NumeroLacre = *in.NumeroLacre
	}
	if in.NumeroPlaca != nil {
		f.NumeroPlaca = *in.NumeroPlaca
	}
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return ToFerramentaResponse(f), nil
}

// List ferramentas dos donos informados. A filtragem de visibilidade por
// funcionário é aplicada pelo chamador (authz).
func (uc *FerramentaUseCase) List(ownerIDs []string, limit, offset int) ([]*entity.Ferramenta, error) {
	return uc.repo.ListByOwners(ownerIDs, limit, offset)
}

// ListDesaparecidas ferramentas desaparecidas dos donos informados.
func (uc *FerramentaUseCase) ListDesaparecidas(ownerIDs []string) ([]*entity.Ferramenta, error) {
	return uc.repo.ListDesaparecidasByOwners(ownerIDs)
}

// Delete remove uma ferramenta por ID.
func (uc *FerramentaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ToFerramentaResponse converte a entidade em DTO de saída.
func ToFerramentaResponse(f *entity.Ferramenta) *dto.FerramentaResponse {
	if f == nil {
		return nil
	}
	return &dto.FerramentaResponse{
		ID:                f.ID,
		Name:              f.Name,
		Tipo:              f.Tipo,
		Modelo:            f.Modelo,
		Serial:            f.Serial,
		Status:            f.Status,
		CurrentType:       f.CurrentType,
		CurrentID:         f.CurrentID,
		CadastradoPor:     f.CadastradoPor,
		OwnerID:           f.OwnerID,
		Descricao:         f.Descricao,
		NF:                f.NF,
		Marca:             f.Marca,
		Valor:             f.Valor,
		TempoGarantiaDias: f.TempoGarantiaDias,
		NumeroLacre:       f.NumeroLacre,
		NumeroPlaca:       f.NumeroPlaca,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}

// ToFerramentaResponses converte a lista filtrada para DTOs.
func ToFerramentaResponses(list []*entity.Ferramenta) []dto.FerramentaResponse {
	items := make([]dto.FerramentaResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *ToFerramentaResponse(f))
	}
	return items
}
