package graphql

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/pkg/token"
)

// Local key para los claims del vendedor autenticado.
const localUsuario = "usuario"

// AuthMiddleware resuelve la identidad del caller una vez por request a partir
// del header Authorization. Sin header no hay identidad y la request sigue:
// el rechazo es perezoso, solo cuando una operación la exige (RequireUsuario).
// Un token presente pero inválido sí corta la request con INVALID_TOKEN.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			return c.Next()
		}
		claims, err := token.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, domain.ErrTokenInvalido)
		}
		c.Locals(localUsuario, claims)
		return c.Next()
	}
}

// UsuarioActual devuelve los claims del caller, o nil si la request es anónima.
func UsuarioActual(c *fiber.Ctx) *token.Claims {
	v := c.Locals(localUsuario)
	if v == nil {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}

// RequireUsuario devuelve los claims del caller o ErrNoAutenticado si la
// request es anónima. Punto único de rechazo para operaciones con auth.
func RequireUsuario(c *fiber.Ctx) (*token.Claims, error) {
	claims := UsuarioActual(c)
	if claims == nil {
		return nil, domain.ErrNoAutenticado
	}
	return claims, nil
}
