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

	"github.com/jcamargo/bascula-api/internal/application/auth"
	"github.com/jcamargo/bascula-api/internal/application/export"
	"github.com/jcamargo/bascula-api/internal/application/usecase"
	"github.com/jcamargo/bascula-api/internal/infrastructure/docx"
	infrapdf "github.com/jcamargo/bascula-api/internal/infrastructure/pdf"
	"github.com/jcamargo/bascula-api/internal/infrastructure/postgres"
	"github.com/jcamargo/bascula-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jcamargo/bascula-api/internal/interfaces/http"
	"github.com/jcamargo/bascula-api/pkg/config"
	"github.com/jcamargo/bascula-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	weighingRepo := postgres.NewWeighingRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	weighingUC := usecase.NewWeighingUseCase(weighingRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	statsUC := usecase.NewStatsUseCase(weighingRepo)

	// Exportes: xlsx del listado, factura docx por plantilla y tiquete pdf
	excelUC := export.NewExcelUseCase(weighingRepo, xlsx.NewBuilder())
	templates := docx.NewTemplateStore(cfg.Assets.TemplatesDir)
	invoiceUC := export.NewInvoiceUseCase(
		weighingRepo,
		docx.NewRenderer(templates),
		infrapdf.NewMarotoTicketGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Báscula API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		WeighingUC: weighingUC,
		SupplierUC: supplierUC,
		StatsUC:    statsUC,
		ExcelUC:    excelUC,
		InvoiceUC:  invoiceUC,
		JWTSecret:  cfg.JWT.Secret,
		Assets:     cfg.Assets,
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
