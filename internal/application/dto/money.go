package dto

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var montoPrinter = message.NewPrinter(language.Spanish)

// FormatMonto formatea un monto entero en pesos con separador de miles
// en convención chilena: 1234567 → "$1.234.567", -9000 → "-$9.000".
func FormatMonto(n int64) string {
	if n < 0 {
		return montoPrinter.Sprintf("-$%d", -n)
	}
	return montoPrinter.Sprintf("$%d", n)
}
