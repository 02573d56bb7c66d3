package domain

import (
	"strconv"
	"strings"
)

// ParseMonto interpreta un monto almacenado como string con puntuación de
// moneda: quita "$" y los puntos de miles, recorta espacios y acepta un "-"
// inicial opcional. Devuelve (0, false) si lo que queda no es un entero;
// los llamadores de reportes tratan ese caso como cero en vez de rechazar el
// registro (lenidad deliberada que prioriza disponibilidad del reporte).
func ParseMonto(s string) (int64, bool) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	digits := s
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
