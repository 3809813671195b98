package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/application/usecase"
	"github.com/praticaeng/obraflow-api/internal/domain"
)

// AssistenciaHandler cadastro de assistências técnicas. Não há filtro por
// permissão: assistência é destino de transferência, visível a qualquer
// autenticado da empresa.
type AssistenciaHandler struct {
	uc   *usecase.AssistenciaUseCase
	auth *auth.AuthUseCase
}

// NewAssistenciaHandler constrói o handler de assistências.
func NewAssistenciaHandler(uc *usecase.AssistenciaUseCase, authUC *auth.AuthUseCase) *AssistenciaHandler {
	return &AssistenciaHandler{uc: uc, auth: authUC}
}

// List godoc
// @Summary      Listar assistências técnicas
// @Tags         assistencias
// @Produce      json
// @Success      200  {array}  dto.AssistenciaResponse
// @Router       /api/assistencias [get]
func (h *AssistenciaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	list, err := h.uc.List(h.auth.EscopoDeDonos(CurrentUser(c)), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Cadastrar assistência técnica
// @Tags         assistencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssistenciaRequest  true  "name, endereco"
// @Success      201   {object}  dto.AssistenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistencias [post]
func (h *AssistenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssistenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	a, err := h.uc.Create(CurrentUser(c).ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// Delete godoc
// @Summary      Remover assistência técnica
// @Tags         assistencias
// @Produce      json
// @Param        id  path  string  true  "id da assistência"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assistencias/{id} [delete]
func (h *AssistenciaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
