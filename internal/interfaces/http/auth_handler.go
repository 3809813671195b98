package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain"
)

// AuthHandler login, logout e sessão atual.
type AuthHandler struct {
	store      *auth.SessionStore
	cookieName string
	expiraDias int
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(store *auth.SessionStore, cookieName string, expiraDias int) *AuthHandler {
	return &AuthHandler{store: store, cookieName: cookieName, expiraDias: expiraDias}
}

// Login godoc
// @Summary      Entrar
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "cnpj, username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CNPJ == "" || in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cnpj, username e password são obrigatórios"})
	}

	user, token, err := h.store.Entrar(in.CNPJ, in.Username, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsuarioNaoEncontrado):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NAO_AUTORIZADO", Message: err.Error()})
		case errors.Is(err, domain.ErrCredenciaisNaoEncontradas), errors.Is(err, domain.ErrSenhaIncorreta):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NAO_AUTORIZADO", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	setSessionCookie(c, h.cookieName, token, h.expiraDias)
	return c.JSON(dto.LoginResponse{Token: token, User: *auth.ToUserResponse(user)})
}

// Logout godoc
// @Summary      Sair
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if user := CurrentUser(c); user != nil {
		h.store.Sair(user.ID)
	}
	expireCookie(c, h.cookieName)
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuário da sessão
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NAO_AUTENTICADO", Message: "sessão não encontrada"})
	}
	return c.JSON(auth.ToUserResponse(user))
}
