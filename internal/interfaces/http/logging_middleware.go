package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LocalRequestID key del id de la petición en c.Locals.
const LocalRequestID = "request_id"

// LoggingMiddleware asigna un request id, lo devuelve en la cabecera
// X-Request-ID y registra cada petición con su latencia.
func LoggingMiddleware(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
