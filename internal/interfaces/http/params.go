package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// urlParam extrae un parámetro de ruta decodificado. Los lugares de venta
// traen espacios y tildes, así que el valor llega percent-encoded.
func urlParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	value, err := url.PathUnescape(raw)
	if err != nil {
		value = raw
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fiber.ErrBadRequest
	}
	return value, nil
}
