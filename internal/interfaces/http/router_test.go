package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boadigital/bazar-ops/internal/application/analytics"
	"github.com/boadigital/bazar-ops/internal/application/auth"
	"github.com/boadigital/bazar-ops/internal/application/usecase"
	"github.com/boadigital/bazar-ops/internal/infrastructure/csvstore"
	"github.com/boadigital/bazar-ops/internal/infrastructure/excel"
	"github.com/boadigital/bazar-ops/internal/infrastructure/pdf"
	apphttp "github.com/boadigital/bazar-ops/internal/interfaces/http"
)

const (
	testInfoPassword = "clave-informaciones"

	catalogoPrueba  = "A1;BI6123XX;Taza decorada;$1.000\n"
	telefonosPrueba = "nombre;telefono;lugar;allow\nMaría Pérez;+56911111111;Plaza Centro;A\n"
)

// buildAPI levanta la aplicación completa sobre directorios temporales.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()

	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "productos.csv"), []byte(catalogoPrueba), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "telefonos.csv"), []byte(telefonosPrueba), 0o644))

	dataStore := csvstore.New(dataDir, ';')
	salesStore := csvstore.New(t.TempDir(), ';')
	commentsStore := csvstore.New(t.TempDir(), ';')

	catalogRepo := csvstore.NewCatalogRepository(dataStore, "")
	salesRepo := csvstore.NewSalesRepository(salesStore)
	directoryRepo := csvstore.NewDirectoryRepository(dataStore)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:   usecase.NewCatalogUseCase(catalogRepo, usecase.CatalogConfig{SalesPrefix: "BI", SalesLength: 8}),
		VentasUC:    usecase.NewVentasUseCase(catalogRepo, salesRepo),
		DirectoryUC: usecase.NewDirectoryUseCase(directoryRepo),
		CommentUC:   usecase.NewCommentUseCase(csvstore.NewCommentRepository(commentsStore)),
		SolicitudUC: usecase.NewSolicitudUseCase(csvstore.NewSolicitudRepository(dataStore), directoryRepo),
		ReportUC:    analytics.NewReportUseCase(catalogRepo, salesRepo),
		AuthUC: auth.NewAuthUseCase(testInfoPassword, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		ReportPDF:   pdf.NewReportPDFGenerator(),
		ReportExcel: excel.NewReportExcelExporter(),
		JWTSecret:   testJWTSecret,
		PhotosDir:   t.TempDir(),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getPath(t *testing.T, app *fiber.App, path string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SearchProduct(t *testing.T) {
	app := buildAPI(t)

	resp := postJSON(t, app, "/api/search_product", fiber.Map{"codigo": "BI6123XX"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Producto struct {
			Descripcion string `json:"descripcion"`
		} `json:"producto"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "Taza decorada", body.Producto.Descripcion)
}

func TestAPI_SearchProduct_NoEncontrado(t *testing.T) {
	app := buildAPI(t)
	resp := postJSON(t, app, "/api/search_product", fiber.Map{"codigo": "ZZZ999"}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_FlujoVentaYDevolucion(t *testing.T) {
	app := buildAPI(t)

	// Devolver sin venta previa: conflicto.
	resp := postJSON(t, app, "/api/process_return", fiber.Map{
		"lugar": "Plaza Centro", "codigo": "BI6123XX", "motivo": "trizada",
	}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Registrar la venta.
	resp = postJSON(t, app, "/api/record_sale", fiber.Map{
		"lugar": "Plaza Centro", "codigo": "BI6123XX",
	}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Ahora la devolución pasa.
	resp = postJSON(t, app, "/api/process_return", fiber.Map{
		"lugar": "Plaza Centro", "codigo": "BI6123XX", "motivo": "trizada",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var ret struct {
		VentasEncontradas int `json:"ventas_encontradas"`
	}
	decode(t, resp, &ret)
	assert.Equal(t, 1, ret.VentasEncontradas)

	// Y las transacciones del día reflejan ambas.
	resp = getPath(t, app, "/api/daily_transactions/Plaza%20Centro", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var trans struct {
		TotalVentas       int   `json:"total_ventas"`
		TotalDevoluciones int   `json:"total_devoluciones"`
		MontoTotal        int64 `json:"monto_total"`
	}
	decode(t, resp, &trans)
	assert.Equal(t, 1, trans.TotalVentas)
	assert.Equal(t, 1, trans.TotalDevoluciones)
	assert.Equal(t, int64(0), trans.MontoTotal)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comentarios
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ComentarioVacioRetorna400(t *testing.T) {
	app := buildAPI(t)
	resp := postJSON(t, app, "/api/comments/eventos", fiber.Map{"comment": "   "}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ComentarioSeGuarda(t *testing.T) {
	app := buildAPI(t)
	resp := postJSON(t, app, "/api/comments/puntos", fiber.Map{"comment": "falta stock de tazas"}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización y rutas protegidas
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_AuthorizeYAccesoProtegido(t *testing.T) {
	app := buildAPI(t)

	// Sin token el directorio telefónico está cerrado.
	resp := getPath(t, app, "/api/telefonos", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Contraseña incorrecta.
	resp = postJSON(t, app, "/api/authorize", fiber.Map{"password": "nope"}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Contraseña correcta entrega un token.
	resp = postJSON(t, app, "/api/authorize", fiber.Map{"password": testInfoPassword}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var tok struct {
		Token string `json:"token"`
	}
	decode(t, resp, &tok)
	require.NotEmpty(t, tok.Token)

	// Con el token las rutas protegidas abren.
	authHeader := map[string]string{"Authorization": "Bearer " + tok.Token}
	resp = getPath(t, app, "/api/telefonos", authHeader)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getPath(t, app, "/api/reports?period=today", authHeader)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var reporte struct {
		TotalVentas int `json:"total_sales"`
	}
	decode(t, resp, &reporte)
	assert.Equal(t, 0, reporte.TotalVentas)
}

func TestAPI_ReporteRangoInvalido(t *testing.T) {
	app := buildAPI(t)

	resp := postJSON(t, app, "/api/authorize", fiber.Map{"password": testInfoPassword}, nil)
	var tok struct {
		Token string `json:"token"`
	}
	decode(t, resp, &tok)

	resp = getPath(t, app, "/api/reports?start=2025-03-12&end=2025-03-10",
		map[string]string{"Authorization": "Bearer " + tok.Token})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitudes
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SolicitudesFlujoCompleto(t *testing.T) {
	app := buildAPI(t)

	resp := postJSON(t, app, "/api/solicitudes", fiber.Map{
		"solicitante": "María Pérez",
		"cliente":     "Juan Cliente",
		"monto":       "15000",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var creada struct {
		ID string `json:"id"`
	}
	decode(t, resp, &creada)
	require.NotEmpty(t, creada.ID)

	resp = getPath(t, app, "/api/solicitudes/pendientes", nil)
	var pendientes struct {
		Pendientes int `json:"pendientes"`
	}
	decode(t, resp, &pendientes)
	assert.Equal(t, 1, pendientes.Pendientes)

	resp = postJSON(t, app, "/api/solicitudes/close", fiber.Map{
		"id": creada.ID, "comentario": "transferido",
	}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getPath(t, app, "/api/solicitudes/pendientes", nil)
	decode(t, resp, &pendientes)
	assert.Equal(t, 0, pendientes.Pendientes)
}

func TestAPI_SolicitudLogin(t *testing.T) {
	app := buildAPI(t)

	resp := postJSON(t, app, "/api/solicitudes/login", fiber.Map{"identificador": "maría pérez"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Nombre  string `json:"nombre"`
		EsAdmin bool   `json:"es_admin"`
	}
	decode(t, resp, &login)
	assert.Equal(t, "María Pérez", login.Nombre)
	assert.True(t, login.EsAdmin)

	resp = postJSON(t, app, "/api/solicitudes/login", fiber.Map{"identificador": "nadie"}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
