package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain"
)

// FuncionarioHandler gestão de usuários da empresa (restrito a hosts).
type FuncionarioHandler struct {
	uc *auth.AuthUseCase
}

// NewFuncionarioHandler constrói o handler de funcionários.
func NewFuncionarioHandler(uc *auth.AuthUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuários da empresa
// @Tags         funcionarios
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/funcionarios [get]
func (h *FuncionarioHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListarFuncionarios(CurrentUser(c))
	if err != nil {
		if errors.Is(err, domain.ErrAcessoNegado) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACESSO_NEGADO", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Cadastrar funcionário ou host da empresa
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFuncionarioRequest  true  "name, email, role, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/funcionarios [post]
func (h *FuncionarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name e password são obrigatórios"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password deve ter ao menos 6 caracteres"})
	}

	user, err := h.uc.CadastrarFuncionario(CurrentUser(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAcessoNegado):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACESSO_NEGADO", Message: err.Error()})
		case errors.Is(err, domain.ErrEmailJaCadastrado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Delete godoc
// @Summary      Remover usuário da empresa
// @Tags         funcionarios
// @Produce      json
// @Param        id  path  string  true  "id do usuário"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [delete]
func (h *FuncionarioHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.RemoverFuncionario(CurrentUser(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsuarioProtegido):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "USUARIO_PROTEGIDO", Message: err.Error()})
		case errors.Is(err, domain.ErrAcessoNegado):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACESSO_NEGADO", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
