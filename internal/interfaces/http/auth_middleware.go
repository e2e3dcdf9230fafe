package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
)

// LocalUserID key del userID autenticado en Fiber Locals.
const LocalUserID = "user_id"

// Authenticator valida un bearer token y devuelve el ID del usuario dueño.
// Lo implementa auth.AuthUseCase (firma JWT + fila de sesión en DB).
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (string, error)
}

// AuthMiddleware valida el Bearer Token y deja el UserID en c.Locals. Sin
// token válido la request no pasa: todo endpoint protegido falla cerrado.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido (Bearer <token>)"})
		}
		userID, err := authn.Authenticate(c.Context(), raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o revocado"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// bearerToken extrae el token del header Authorization; "" si falta o está mal formado.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
