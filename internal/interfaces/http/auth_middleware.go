package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/pkg/jwt"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalNombre  = "nombre"
	LocalEsAdmin = "es_admin"
)

// AuthMiddleware valida el Bearer Token JWT y deja nombre y nivel de acceso
// en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		nombre, esAdmin, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalNombre, nombre)
		c.Locals(LocalEsAdmin, esAdmin)
		return c.Next()
	}
}

// GetNombre devuelve el nombre del contexto (después del middleware de auth).
func GetNombre(c *fiber.Ctx) string {
	v := c.Locals(LocalNombre)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEsAdmin indica si el token marca acceso de administrador.
func GetEsAdmin(c *fiber.Ctx) bool {
	v := c.Locals(LocalEsAdmin)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
