package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/application/movimentacao"
	"github.com/praticaeng/obraflow-api/internal/application/usecase"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/pkg/logger"
)

// FerramentaHandler CRUD, transferência e status de ferramentas. Tudo que
// lê ou move uma ferramenta específica passa pela verificação pontual de
// visibilidade; listagens passam pelo filtro.
type FerramentaHandler struct {
	uc       *usecase.FerramentaUseCase
	movs     *movimentacao.UseCase
	auth     *auth.AuthUseCase
	resolver *authz.Resolver
	log      *logger.Logger
}

// NewFerramentaHandler constrói o handler de ferramentas.
func NewFerramentaHandler(
	uc *usecase.FerramentaUseCase,
	movs *movimentacao.UseCase,
	authUC *auth.AuthUseCase,
	resolver *authz.Resolver,
	log *logger.Logger,
) *FerramentaHandler {
	return &FerramentaHandler{uc: uc, movs: movs, auth: authUC, resolver: resolver, log: log}
}

// visivel devolve true se o usuário da sessão enxerga a ferramenta.
func (h *FerramentaHandler) visivel(c *fiber.Ctx, ferramentaID string) bool {
	user := CurrentUser(c)
	return h.resolver.HasFerramentaPermission(user.ID, user.Role, ferramentaID)
}

// List godoc
// @Summary      Listar ferramentas visíveis
// @Tags         ferramentas
// @Produce      json
// @Param        limit   query  int  false  "tamanho da página"
// @Param        offset  query  int  false  "offset"
// @Success      200  {object}  dto.FerramentaListResponse
// @Router       /api/ferramentas [get]
func (h *FerramentaHandler) List(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	list, err := h.uc.List(h.auth.EscopoDeDonos(user), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	allowed, err := h.resolver.AllowedFerramentaIDs(user.ID, user.Role)
	if err != nil {
		// vazio por falha, não por política: a lista sai fechada mesmo assim
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("resolução de permissões de ferramentas falhou")
	}
	visiveis := authz.FiltrarFerramentas(list, allowed)

	return c.JSON(dto.FerramentaListResponse{
		Items: usecase.ToFerramentaResponses(visiveis),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// ListDesaparecidas godoc
// @Summary      Listar ferramentas desaparecidas visíveis
// @Tags         ferramentas
// @Produce      json
// @Success      200  {array}  dto.FerramentaResponse
// @Router       /api/ferramentas/desaparecidas [get]
func (h *FerramentaHandler) ListDesaparecidas(c *fiber.Ctx) error {
	user := CurrentUser(c)
	list, err := h.uc.ListDesaparecidas(h.auth.EscopoDeDonos(user))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	allowed, err := h.resolver.AllowedFerramentaIDs(user.ID, user.Role)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("resolução de permissões de ferramentas falhou")
	}
	return c.JSON(usecase.ToFerramentaResponses(authz.FiltrarFerramentas(list, allowed)))
}

// GetByID godoc
// @Summary      Obter ferramenta
// @Tags         ferramentas
// @Produce      json
// @Param        id  path  string  true  "id da ferramenta"
// @Success      200  {object}  dto.FerramentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id} [get]
func (h *FerramentaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.visivel(c, id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	f, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if f == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(f)
}

// Create godoc
// @Summary      Cadastrar ferramenta
// @Tags         ferramentas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFerramentaRequest  true  "dados da ferramenta"
// @Success      201   {object}  dto.FerramentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ferramentas [post]
func (h *FerramentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFerramentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	user := CurrentUser(c)
	f, err := h.uc.Create(user.ID, user.Name, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "OBRA_NOT_FOUND", Message: "a obra informada não existe"})
		case errors.Is(err, domain.ErrObraFinalizada):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OBRA_FINALIZADA", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

// Update godoc
// @Summary      Atualizar ferramenta
// @Tags         ferramentas
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "id da ferramenta"
// @Param        body  body  dto.UpdateFerramentaRequest  true  "campos a alterar"
// @Success      200   {object}  dto.FerramentaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id} [put]
func (h *FerramentaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFerramentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	f, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if f == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(f)
}

// Delete godoc
// @Summary      Remover ferramenta
// @Tags         ferramentas
// @Produce      json
// @Param        id  path  string  true  "id da ferramenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id} [delete]
func (h *FerramentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transferir godoc
// @Summary      Transferir ferramenta para obra ou assistência
// @Tags         ferramentas
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id da ferramenta"
// @Param        body  body  dto.TransferirRequest  true  "to_type, to_id, note"
// @Success      200   {object}  dto.MovimentacaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id}/transferir [post]
func (h *FerramentaHandler) Transferir(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.visivel(c, id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	var in dto.TransferirRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	mov, err := h.movs.Transferir(c.Context(), movimentacao.TransferirInput{
		FerramentaID: id,
		ToType:       in.ToType,
		ToID:         in.ToID,
		UserID:       CurrentUser(c).ID,
		Note:         in.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrObraFinalizada):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OBRA_FINALIZADA", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(mov)
}

// Desaparecida godoc
// @Summary      Marcar ferramenta como desaparecida
// @Tags         ferramentas
// @Produce      json
// @Param        id  path  string  true  "id da ferramenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id}/desaparecida [post]
func (h *FerramentaHandler) Desaparecida(c *fiber.Ctx) error {
	return h.mudarStatus(c, h.movs.MarcarDesaparecida)
}

// Encontrada godoc
// @Summary      Marcar ferramenta desaparecida como encontrada
// @Tags         ferramentas
// @Produce      json
// @Param        id  path  string  true  "id da ferramenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id}/encontrada [post]
func (h *FerramentaHandler) Encontrada(c *fiber.Ctx) error {
	return h.mudarStatus(c, h.movs.MarcarEncontrada)
}

func (h *FerramentaHandler) mudarStatus(c *fiber.Ctx, fn func(ctx context.Context, ferramentaID, userID string) error) error {
	id := c.Params("id")
	if !h.visivel(c, id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	if err := fn(c.Context(), id, CurrentUser(c).ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Movimentacoes godoc
// @Summary      Histórico de movimentações da ferramenta
// @Tags         ferramentas
// @Produce      json
// @Param        id  path  string  true  "id da ferramenta"
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id}/movimentacoes [get]
func (h *FerramentaHandler) Movimentacoes(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.visivel(c, id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	list, err := h.movs.Listar(id, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
