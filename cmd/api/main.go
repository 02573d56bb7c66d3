package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/boadigital/bazar-ops/internal/application/analytics"
	"github.com/boadigital/bazar-ops/internal/application/auth"
	"github.com/boadigital/bazar-ops/internal/application/usecase"
	"github.com/boadigital/bazar-ops/internal/infrastructure/csvstore"
	infraexcel "github.com/boadigital/bazar-ops/internal/infrastructure/excel"
	infrapdf "github.com/boadigital/bazar-ops/internal/infrastructure/pdf"
	httpRouter "github.com/boadigital/bazar-ops/internal/interfaces/http"
	"github.com/boadigital/bazar-ops/pkg/config"
	"github.com/boadigital/bazar-ops/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatal().Err(err).Msg("preparar directorios de datos")
	}

	// Un store por directorio: datos maestros, ventas del día y comentarios.
	dataStore := csvstore.New(cfg.Dirs.Data, cfg.CSV.Delimiter)
	salesStore := csvstore.New(cfg.Dirs.Sales, cfg.CSV.Delimiter)
	commentsStore := csvstore.New(cfg.Dirs.Comments, cfg.CSV.Delimiter)

	catalogRepo := csvstore.NewCatalogRepository(dataStore, cfg.Dirs.Photos)
	salesRepo := csvstore.NewSalesRepository(salesStore)
	solicitudRepo := csvstore.NewSolicitudRepository(dataStore)
	directoryRepo := csvstore.NewDirectoryRepository(dataStore)
	commentRepo := csvstore.NewCommentRepository(commentsStore)

	catalogUC := usecase.NewCatalogUseCase(catalogRepo, usecase.CatalogConfig{
		SalesPrefix: cfg.Codes.SalesPrefix,
		SalesLength: cfg.Codes.SalesLength,
	})
	ventasUC := usecase.NewVentasUseCase(catalogRepo, salesRepo)
	directoryUC := usecase.NewDirectoryUseCase(directoryRepo)
	commentUC := usecase.NewCommentUseCase(commentRepo)
	solicitudUC := usecase.NewSolicitudUseCase(solicitudRepo, directoryRepo)
	reportUC := analytics.NewReportUseCase(catalogRepo, salesRepo)
	authUC := auth.NewAuthUseCase(cfg.Auth.InfoPassword, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggingMiddleware(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bazar Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		VentasUC:    ventasUC,
		DirectoryUC: directoryUC,
		CommentUC:   commentUC,
		SolicitudUC: solicitudUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		ReportPDF:   infrapdf.NewReportPDFGenerator(),
		ReportExcel: infraexcel.NewReportExcelExporter(),
		JWTSecret:   cfg.JWT.Secret,
		PhotosDir:   cfg.Dirs.Photos,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
