package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/domain"
	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/infrastructure/csvstore"
)

const telefonosPrueba = "nombre;telefono;allow\n" +
	"María Pérez;+56911111111;A\n" +
	"pedro soto;+56922222222;\n"

func nuevoSolicitudUseCase(t *testing.T) *SolicitudUseCase {
	t.Helper()
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "telefonos.csv"), []byte(telefonosPrueba), 0o644))

	store := csvstore.New(dataDir, ';')
	uc := NewSolicitudUseCase(csvstore.NewSolicitudRepository(store), csvstore.NewDirectoryRepository(store))
	uc.now = func() time.Time {
		return time.Date(2025, 3, 10, 14, 30, 5, 0, time.Local)
	}
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_DevolucionExigeClienteYMonto(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)

	_, err := uc.Crear(dto.CreateSolicitudRequest{Solicitante: "María Pérez"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, uc.repo.All(), "una validación fallida no toca el archivo")
}

func TestCrear_OtroTipoExigeMotivo(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)
	_, err := uc.Crear(dto.CreateSolicitudRequest{Solicitante: "pedro soto", Tipo: "Consulta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrear_GeneraIDConTimestampYSufijo(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)

	out, err := uc.Crear(dto.CreateSolicitudRequest{
		Solicitante: "María Pérez",
		Cliente:     "Juan Cliente",
		Monto:       "15000",
		Banco:       "Banco Estado",
		RUT:         "11.111.111-1",
	})
	require.NoError(t, err)
	require.Len(t, out.ID, 16, "14 de timestamp + 2 de sufijo aleatorio")
	assert.Equal(t, "20250310143005", out.ID[:14])

	solicitudes := uc.repo.All()
	require.Len(t, solicitudes, 1)
	s := solicitudes[0]
	assert.Equal(t, entity.TipoDevolucion, s.Tipo, "tipo por defecto")
	assert.Equal(t, entity.EstadoPendiente, s.Estado)
	assert.Equal(t, "Juan Cliente", s.ClienteNombre)
}

func TestCrear_MontoVacioQuedaEnCero(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)
	_, err := uc.Crear(dto.CreateSolicitudRequest{
		Tipo:   "Consulta",
		Motivo: "duda de precio",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", uc.repo.All()[0].Monto)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar / Cerrar / Pendientes
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_OrdenaPorTimestampDescendente(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)

	for i, ts := range []string{"2025-03-08 09:00:00", "2025-03-10 09:00:00", "2025-03-09 09:00:00"} {
		require.NoError(t, uc.repo.Append(entity.Solicitud{
			ID:        string(rune('a' + i)),
			Timestamp: ts,
			Estado:    entity.EstadoPendiente,
		}))
	}

	out := uc.Listar()
	require.Len(t, out.Solicitudes, 3)
	assert.Equal(t, "2025-03-10 09:00:00", out.Solicitudes[0].Timestamp)
	assert.Equal(t, "2025-03-08 09:00:00", out.Solicitudes[2].Timestamp)
}

func TestCerrar_ComentarioObligatorio(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)
	require.NoError(t, uc.repo.Append(entity.Solicitud{ID: "x1", Estado: entity.EstadoPendiente}))

	err := uc.Cerrar("x1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.EstadoPendiente, uc.repo.All()[0].Estado, "sin comentario no cambia nada")
}

func TestCerrar_IDInexistente(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)
	assert.ErrorIs(t, uc.Cerrar("nope", "listo"), domain.ErrNotFound)
}

func TestCerrar_MarcaCerradoYPersiste(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)
	require.NoError(t, uc.repo.Append(entity.Solicitud{ID: "x1", Estado: entity.EstadoPendiente}))
	require.NoError(t, uc.repo.Append(entity.Solicitud{ID: "x2", Estado: entity.EstadoPendiente}))

	require.NoError(t, uc.Cerrar("x1", "transferencia hecha"))

	solicitudes := uc.repo.All()
	require.Len(t, solicitudes, 2)
	porID := map[string]entity.Solicitud{}
	for _, s := range solicitudes {
		porID[s.ID] = s
	}
	assert.Equal(t, entity.EstadoCerrado, porID["x1"].Estado)
	assert.Equal(t, "transferencia hecha", porID["x1"].ComentarioCierre)
	assert.Equal(t, entity.EstadoPendiente, porID["x2"].Estado, "las demás no se tocan")
}

func TestPendientes_CuentaSoloPendientes(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)
	require.NoError(t, uc.repo.Append(entity.Solicitud{ID: "a", Estado: entity.EstadoPendiente}))
	require.NoError(t, uc.repo.Append(entity.Solicitud{ID: "b", Estado: entity.EstadoCerrado}))
	require.NoError(t, uc.repo.Append(entity.Solicitud{ID: "c", Estado: entity.EstadoPendiente}))

	assert.Equal(t, 2, uc.Pendientes().Pendientes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CaseInsensitiveYAdmin(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)

	out, err := uc.Login("  maría pérez ")
	require.NoError(t, err)
	assert.Equal(t, "María Pérez", out.Nombre, "devuelve el nombre tal como está en el archivo")
	assert.True(t, out.EsAdmin, "allow == A marca administrador")

	out, err = uc.Login("PEDRO SOTO")
	require.NoError(t, err)
	assert.False(t, out.EsAdmin)
}

func TestLogin_Desconocido(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)
	_, err := uc.Login("nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_Vacio(t *testing.T) {
	uc := nuevoSolicitudUseCase(t)
	_, err := uc.Login("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
