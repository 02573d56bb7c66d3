package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonto(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"$1.000", 1000, true},
		{"2.500", 2500, true},
		{"1000", 1000, true},
		{" 1000 ", 1000, true},
		{"-9.000", -9000, true},
		{"$-1.000", -1000, true},
		{"0", 0, true},
		{"", 0, false},
		{"consultar", 0, false},
		{"1.000,50", 0, false}, // decimales con coma no son montos válidos
		{"--10", 0, false},
		{"-", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseMonto(c.in)
		assert.Equal(t, c.ok, ok, "entrada %q", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "entrada %q", c.in)
		}
	}
}
