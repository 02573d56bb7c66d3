package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boadigital/bazar-ops/internal/domain"
	"github.com/boadigital/bazar-ops/internal/infrastructure/csvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// catálogo de prueba, sin encabezado, delimitado por punto y coma.
const catalogoPrueba = "A1;BI6123XX;Taza decorada artesanal;$1.000\n" +
	"B22;BI6456YY;Plato hondo;2.500\n" +
	"C3;BI6789ZZ;Individual tejido;consultar\n"

func nuevoVentasUseCase(t *testing.T) *VentasUseCase {
	t.Helper()
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "productos.csv"), []byte(catalogoPrueba), 0o644))

	catalogRepo := csvstore.NewCatalogRepository(csvstore.New(dataDir, ';'), "")
	salesRepo := csvstore.NewSalesRepository(csvstore.New(t.TempDir(), ';'))

	uc := NewVentasUseCase(catalogRepo, salesRepo)
	uc.now = func() time.Time {
		return time.Date(2025, 3, 10, 14, 30, 5, 0, time.Local)
	}
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// RegistrarVenta
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVenta_GuardaEnArchivoDelDia(t *testing.T) {
	uc := nuevoVentasUseCase(t)

	out, err := uc.RegistrarVenta("Plaza Centro", "bi6123xx")
	require.NoError(t, err, "el código se normaliza a mayúsculas antes de buscar")
	assert.Equal(t, "Venta registrada correctamente", out.Message)

	ventas := uc.sales.SalesByLugar("Plaza Centro", "2025-03-10")
	require.Len(t, ventas, 1)
	assert.Equal(t, "2025-03-10 14:30:05", ventas[0].Timestamp)
	assert.Equal(t, "BI6123XX", ventas[0].CodVenta)
	assert.Equal(t, "$1.000", ventas[0].Precio, "el precio se copia textual del catálogo")
}

func TestRegistrarVenta_ProductoInexistente(t *testing.T) {
	uc := nuevoVentasUseCase(t)
	_, err := uc.RegistrarVenta("Plaza Centro", "NOEXISTE")
	assert.ErrorIs(t, err, domain.ErrProductoNotFound)
}

func TestRegistrarVenta_LugarVacio(t *testing.T) {
	uc := nuevoVentasUseCase(t)
	_, err := uc.RegistrarVenta("   ", "BI6123XX")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ProcesarDevolucion
// ──────────────────────────────────────────────────────────────────────────────

func TestProcesarDevolucion_SinVentaPreviaFalla(t *testing.T) {
	uc := nuevoVentasUseCase(t)
	_, err := uc.ProcesarDevolucion("Plaza Centro", "BI6123XX", "trizada")
	assert.ErrorIs(t, err, domain.ErrSinVentas,
		"no se puede devolver un producto sin venta registrada hoy en el lugar")
}

func TestProcesarDevolucion_NiegaElPrecioNumericamente(t *testing.T) {
	uc := nuevoVentasUseCase(t)
	_, err := uc.RegistrarVenta("Plaza Centro", "BI6123XX")
	require.NoError(t, err)

	out, err := uc.ProcesarDevolucion("Plaza Centro", "BI6123XX", "trizada")
	require.NoError(t, err)
	assert.Equal(t, 1, out.VentasEncontradas)

	devs := uc.sales.ReturnsForDate("2025-03-10")
	require.Len(t, devs, 1)
	assert.Equal(t, "-1000", devs[0].Precio, "$1.000 del catálogo se niega como -1000")
	assert.Equal(t, "trizada", devs[0].Motivo)
	assert.Equal(t, "devolucion", devs[0].Tipo)
}

// Un precio de catálogo que no parsea no puede producir un monto negado:
// es error de validación, nunca un string ilegible en el archivo.
func TestProcesarDevolucion_PrecioNoNumericoEsError(t *testing.T) {
	uc := nuevoVentasUseCase(t)
	_, err := uc.RegistrarVenta("Plaza Centro", "BI6789ZZ") // precio "consultar"
	require.NoError(t, err)

	_, err = uc.ProcesarDevolucion("Plaza Centro", "BI6789ZZ", "cambio")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, uc.sales.ReturnsForDate("2025-03-10"), "no debe escribirse nada")
}

func TestProcesarDevolucion_VentaEnOtroLugarNoCuenta(t *testing.T) {
	uc := nuevoVentasUseCase(t)
	_, err := uc.RegistrarVenta("Mall Norte", "BI6123XX")
	require.NoError(t, err)

	_, err = uc.ProcesarDevolucion("Plaza Centro", "BI6123XX", "")
	assert.ErrorIs(t, err, domain.ErrSinVentas)
}

// ──────────────────────────────────────────────────────────────────────────────
// TransaccionesDelDia
// ──────────────────────────────────────────────────────────────────────────────

func TestTransaccionesDelDia_MezclaYTotaliza(t *testing.T) {
	uc := nuevoVentasUseCase(t)

	_, err := uc.RegistrarVenta("Plaza Centro", "BI6123XX") // $1.000
	require.NoError(t, err)
	_, err = uc.RegistrarVenta("Plaza Centro", "BI6456YY") // 2.500
	require.NoError(t, err)
	_, err = uc.ProcesarDevolucion("Plaza Centro", "BI6123XX", "trizada") // -1000
	require.NoError(t, err)

	out, err := uc.TransaccionesDelDia("Plaza Centro")
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalVentas)
	assert.Equal(t, 1, out.TotalDevoluciones)
	assert.Equal(t, 1, out.VentasNetas)
	assert.Equal(t, int64(2500), out.MontoTotal, "1000 + 2500 - 1000")
	assert.Equal(t, int64(1000), out.MontoDevoluciones)
	assert.Len(t, out.Transacciones, 3)
	assert.Equal(t, "2025-03-10", out.Fecha)
}

func TestTransaccionesDelDia_DevolucionesDeOtroLugarNoEntran(t *testing.T) {
	uc := nuevoVentasUseCase(t)

	_, err := uc.RegistrarVenta("Mall Norte", "BI6123XX")
	require.NoError(t, err)
	_, err = uc.ProcesarDevolucion("Mall Norte", "BI6123XX", "")
	require.NoError(t, err)

	out, err := uc.TransaccionesDelDia("Plaza Centro")
	require.NoError(t, err)
	assert.Empty(t, out.Transacciones, "el archivo de devoluciones es compartido pero se filtra por lugar")
	assert.Equal(t, int64(0), out.MontoTotal)
}
