package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// PermissionHandler concessão e revogação de visibilidade de funcionários
// sobre obras e ferramentas. Restrito a hosts pelo router.
type PermissionHandler struct {
	perms repository.PermissionRepository
	users repository.UserRepository
}

// NewPermissionHandler constrói o handler de permissões.
func NewPermissionHandler(perms repository.PermissionRepository, users repository.UserRepository) *PermissionHandler {
	return &PermissionHandler{perms: perms, users: users}
}

// funcionarioValido confirma que o alvo existe e é funcionário.
func (h *PermissionHandler) funcionarioValido(userID string) bool {
	u, err := h.users.GetByID(userID)
	return err == nil && u != nil && !u.Role.IsHost()
}

// GrantObra godoc
// @Summary      Conceder visibilidade de obra a um funcionário
// @Tags         permissoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GrantObraPermissionRequest  true  "user_id, obra_id"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/permissoes/obras [post]
func (h *PermissionHandler) GrantObra(c *fiber.Ctx) error {
	var in dto.GrantObraPermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.UserID == "" || in.ObraID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id e obra_id são obrigatórios"})
	}
	if !h.funcionarioValido(in.UserID) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "o alvo deve ser um funcionário existente"})
	}
	err := h.perms.GrantObra(&entity.ObraPermission{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		ObraID:    in.ObraID,
		HostID:    CurrentUser(c).ID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RevokeObra godoc
// @Summary      Revogar visibilidade de obra
// @Tags         permissoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GrantObraPermissionRequest  true  "user_id, obra_id"
// @Success      204
// @Router       /api/permissoes/obras [delete]
func (h *PermissionHandler) RevokeObra(c *fiber.Ctx) error {
	var in dto.GrantObraPermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.perms.RevokeObra(in.UserID, in.ObraID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GrantFerramenta godoc
// @Summary      Conceder visibilidade de ferramenta a um funcionário
// @Tags         permissoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GrantFerramentaPermissionRequest  true  "user_id, ferramenta_id"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/permissoes/ferramentas [post]
func (h *PermissionHandler) GrantFerramenta(c *fiber.Ctx) error {
	var in dto.GrantFerramentaPermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.UserID == "" || in.FerramentaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id e ferramenta_id são obrigatórios"})
	}
	if !h.funcionarioValido(in.UserID) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "o alvo deve ser um funcionário existente"})
	}
	err := h.perms.GrantFerramenta(&entity.FerramentaPermission{
		ID:           uuid.New().String(),
		UserID:       in.UserID,
		FerramentaID: in.FerramentaID,
		HostID:       CurrentUser(c).ID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RevokeFerramenta godoc
// @Summary      Revogar visibilidade de ferramenta
// @Tags         permissoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GrantFerramentaPermissionRequest  true  "user_id, ferramenta_id"
// @Success      204
// @Router       /api/permissoes/ferramentas [delete]
func (h *PermissionHandler) RevokeFerramenta(c *fiber.Ctx) error {
	var in dto.GrantFerramentaPermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.perms.RevokeFerramenta(in.UserID, in.FerramentaID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
