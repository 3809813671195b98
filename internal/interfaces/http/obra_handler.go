package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/application/usecase"
	"github.com/praticaeng/obraflow-api/internal/domain"
	"github.com/praticaeng/obraflow-api/pkg/logger"
)

// ObraHandler CRUD e ciclo de vida de obras. Listagem e leitura passam
// pelo filtro de visibilidade; mutação é restrita a hosts pelo router.
type ObraHandler struct {
	uc       *usecase.ObraUseCase
	auth     *auth.AuthUseCase
	resolver *authz.Resolver
	log      *logger.Logger
}

// NewObraHandler constrói o handler de obras.
func NewObraHandler(uc *usecase.ObraUseCase, authUC *auth.AuthUseCase, resolver *authz.Resolver, log *logger.Logger) *ObraHandler {
	return &ObraHandler{uc: uc, auth: authUC, resolver: resolver, log: log}
}

// List godoc
// @Summary      Listar obras visíveis
// @Tags         obras
// @Produce      json
// @Param        limit   query  int  false  "tamanho da página"
// @Param        offset  query  int  false  "offset"
// @Success      200  {object}  dto.ObraListResponse
// @Router       /api/obras [get]
func (h *ObraHandler) List(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	obras, err := h.uc.List(h.auth.EscopoDeDonos(user), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	allowed, err := h.resolver.AllowedObraIDs(user.ID, user.Role)
	if err != nil {
		// vazio por falha, não por política: a lista sai fechada mesmo assim
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("resolução de permissões de obras falhou")
	}
	visiveis := authz.FiltrarObras(obras, allowed)

	return c.JSON(dto.ObraListResponse{
		Items: usecase.ToObraResponses(visiveis),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetByID godoc
// @Summary      Obter obra
// @Tags         obras
// @Produce      json
// @Param        id  path  string  true  "id da obra"
// @Success      200  {object}  dto.ObraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id} [get]
func (h *ObraHandler) GetByID(c *fiber.Ctx) error {
	user := CurrentUser(c)
	id := c.Params("id")
	if !h.resolver.HasObraPermission(user.ID, user.Role, id) {
		// 404, não 403: funcionário sem permissão não sabe que a obra existe
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	obra, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if obra == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(obra)
}

// Create godoc
// @Summary      Criar obra
// @Tags         obras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateObraRequest  true  "title, description, endereco"
// @Success      201   {object}  dto.ObraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/obras [post]
func (h *ObraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateObraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title é obrigatório"})
	}
	obra, err := h.uc.Create(CurrentUser(c).ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(obra)
}

// Update godoc
// @Summary      Atualizar obra
// @Tags         obras
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id da obra"
// @Param        body  body  dto.UpdateObraRequest  true  "campos a alterar"
// @Success      200   {object}  dto.ObraResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/obras/{id} [put]
func (h *ObraHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateObraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	obra, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if obra == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(obra)
}

// Finalizar godoc
// @Summary      Finalizar obra
// @Tags         obras
// @Produce      json
// @Param        id  path  string  true  "id da obra"
// @Success      200  {object}  dto.ObraResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/obras/{id}/finalizar [post]
func (h *ObraHandler) Finalizar(c *fiber.Ctx) error {
	obra, err := h.uc.Finalizar(c.Params("id"), CurrentUser(c).ID)
	if err != nil {
		if errors.Is(err, domain.ErrObraFinalizada) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OBRA_FINALIZADA", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if obra == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(obra)
}

// Reativar godoc
// @Summary      Reativar obra finalizada
// @Tags         obras
// @Produce      json
// @Param        id  path  string  true  "id da obra"
// @Success      200  {object}  dto.ObraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id}/reativar [post]
func (h *ObraHandler) Reativar(c *fiber.Ctx) error {
	obra, err := h.uc.Reativar(c.Params("id"), CurrentUser(c).ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if obra == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.JSON(obra)
}
