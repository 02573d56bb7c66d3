package csvstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/infrastructure/csvstore"
)

func TestSanitizeLugar(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Plaza Centro", "Plaza Centro"},
		{"Ñuñoa 2", "Ñuñoa 2"},
		{"Feria/Sur:*?", "FeriaSur"},
		{"Mall Norte  ", "Mall Norte"},
		{"punto_7-b", "punto_7-b"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, csvstore.SanitizeLugar(c.in), "entrada %q", c.in)
	}
}

func TestSalesFileName(t *testing.T) {
	assert.Equal(t, "Plaza Centro_2025-03-10.csv", csvstore.SalesFileName("Plaza Centro", "2025-03-10"))
	assert.Equal(t, "devoluciones_2025-03-10.csv", csvstore.ReturnsFileName("2025-03-10"))
}

func TestAppendSale_RoundTrip(t *testing.T) {
	repo := csvstore.NewSalesRepository(csvstore.New(t.TempDir(), ';'))

	venta := entity.Venta{
		Timestamp:   "2025-03-10 14:30:05",
		Lugar:       "Plaza Centro",
		CodFabrica:  "A1",
		CodVenta:    "BI6123XX",
		Descripcion: "Taza decorada",
		Precio:      "$1.000",
	}
	require.NoError(t, repo.AppendSale(venta))

	ventas := repo.SalesByLugar("Plaza Centro", "2025-03-10")
	require.Len(t, ventas, 1)
	assert.Equal(t, venta, ventas[0])

	// Otro día u otro lugar no ven la venta.
	assert.Empty(t, repo.SalesByLugar("Plaza Centro", "2025-03-11"))
	assert.Empty(t, repo.SalesByLugar("Mall Norte", "2025-03-10"))
}

func TestAppendReturn_RoundTrip(t *testing.T) {
	repo := csvstore.NewSalesRepository(csvstore.New(t.TempDir(), ';'))

	dev := entity.Devolucion{
		Timestamp:   "2025-03-10 16:00:00",
		Lugar:       "Plaza Centro",
		CodFabrica:  "A1",
		CodVenta:    "BI6123XX",
		Descripcion: "Taza decorada",
		Precio:      "-1000",
		Motivo:      "trizada",
		Tipo:        "devolucion",
	}
	require.NoError(t, repo.AppendReturn(dev))

	devs := repo.ReturnsForDate("2025-03-10")
	require.Len(t, devs, 1)
	assert.Equal(t, dev, devs[0])
	assert.Empty(t, repo.ReturnsForDate("2025-03-11"))
}

func TestSalesForDate_RecuperaLugarYExcluyeDevoluciones(t *testing.T) {
	repo := csvstore.NewSalesRepository(csvstore.New(t.TempDir(), ';'))

	require.NoError(t, repo.AppendSale(entity.Venta{
		Timestamp: "2025-03-10 10:00:00", Lugar: "Plaza Centro",
		CodVenta: "BI6123XX", Precio: "1000",
	}))
	require.NoError(t, repo.AppendSale(entity.Venta{
		Timestamp: "2025-03-10 11:00:00", Lugar: "Mall Norte",
		CodVenta: "BI6456YY", Precio: "2000",
	}))
	require.NoError(t, repo.AppendReturn(entity.Devolucion{
		Timestamp: "2025-03-10 12:00:00", Lugar: "Plaza Centro",
		CodVenta: "BI6123XX", Precio: "-1000", Tipo: "devolucion",
	}))
	// Venta de otro día: no debe aparecer.
	require.NoError(t, repo.AppendSale(entity.Venta{
		Timestamp: "2025-03-11 10:00:00", Lugar: "Plaza Centro",
		CodVenta: "BI6123XX", Precio: "1000",
	}))

	grupos := repo.SalesForDate("2025-03-10")
	require.Len(t, grupos, 2, "un grupo por archivo de lugar, sin el de devoluciones")

	lugares := map[string]int{}
	for _, g := range grupos {
		lugares[g.Lugar] = len(g.Ventas)
	}
	assert.Equal(t, map[string]int{"Plaza Centro": 1, "Mall Norte": 1}, lugares)
}
