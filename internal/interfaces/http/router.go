package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/analytics"
	"github.com/boadigital/bazar-ops/internal/application/auth"
	"github.com/boadigital/bazar-ops/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	VentasUC    *usecase.VentasUseCase
	DirectoryUC *usecase.DirectoryUseCase
	CommentUC   *usecase.CommentUseCase
	SolicitudUC *usecase.SolicitudUseCase
	ReportUC    *analytics.ReportUseCase
	AuthUC      *auth.AuthUseCase
	ReportPDF   ReportPDFGenerator
	ReportExcel ReportExcelExporter
	JWTSecret   string
	PhotosDir   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Fotos de productos referenciadas por las respuestas del catálogo.
	app.Static("/static/fotos", deps.PhotosDir)

	api := app.Group("/api")

	// Catálogo y ventas (público: lo usan los vendedores en terreno)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Post("/search_product", catalogHandler.Search)

	salesHandler := NewSalesHandler(deps.VentasUC)
	api.Post("/record_sale", salesHandler.RecordSale)
	api.Post("/process_return", salesHandler.ProcessReturn)
	api.Get("/daily_transactions/:lugar", salesHandler.DailyTransactions)

	// Listados informativos
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)
	api.Get("/lugares", directoryHandler.Lugares)
	api.Get("/bazares", directoryHandler.Bazares)
	api.Get("/puntos", directoryHandler.Puntos)
	api.Get("/tutoriales", directoryHandler.Tutoriales)

	// Comentarios
	commentHandler := NewCommentHandler(deps.CommentUC)
	api.Post("/comments/eventos", commentHandler.Evento)
	api.Post("/comments/puntos", commentHandler.Punto)

	// Solicitudes
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC)
	api.Post("/solicitudes/login", solicitudHandler.Login)
	api.Get("/solicitudes", solicitudHandler.List)
	api.Post("/solicitudes", solicitudHandler.Create)
	api.Post("/solicitudes/close", solicitudHandler.Close)
	api.Get("/solicitudes/pendientes", solicitudHandler.Pendientes)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/authorize", authHandler.Authorize)

	// Rutas protegidas (requieren Bearer Token de /api/authorize)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/telefonos", directoryHandler.Telefonos)

	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF, deps.ReportExcel)
	protected.Get("/reports", reportHandler.Get)
	protected.Get("/reports/pdf", reportHandler.PDF)
	protected.Get("/reports/excel", reportHandler.Excel)
}
