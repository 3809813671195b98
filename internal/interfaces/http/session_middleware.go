package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
)

// Locals key do usuário da sessão.
const LocalUser = "current_user"

// SessionMiddleware resolve o cookie de sessão para o usuário via
// SessionStore e o coloca em c.Locals. Cookie ausente ou inválido expira o
// cookie e devolve 401.
func SessionMiddleware(store *auth.SessionStore, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Cookies(cookieName)
		if value == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NAO_AUTENTICADO", Message: "sessão não encontrada"})
		}
		user, err := store.CarregarUsuario(value)
		if err != nil {
			expireCookie(c, cookieName)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSAO_INVALIDA", Message: "sessão inválida ou expirada"})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireHost bloqueia a rota para quem não é host. Usar depois do
// SessionMiddleware.
func RequireHost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NAO_AUTENTICADO", Message: "sessão não encontrada"})
		}
		if !authz.CapabilitiesFor(user.Role).IsHost {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACESSO_NEGADO", Message: "operação restrita a hosts"})
		}
		return c.Next()
	}
}

// CurrentUser devolve o usuário da sessão (depois do SessionMiddleware).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// setSessionCookie grava o cookie de sessão. HttpOnly e SameSite=Strict;
// Secure fica a cargo do proxy TLS.
func setSessionCookie(c *fiber.Ctx, name, value string, dias int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().AddDate(0, 0, dias),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func expireCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
