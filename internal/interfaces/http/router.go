package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/bascula-api/internal/application/auth"
	"github.com/jcamargo/bascula-api/internal/application/export"
	"github.com/jcamargo/bascula-api/internal/application/usecase"
	"github.com/jcamargo/bascula-api/internal/domain/entity"
	"github.com/jcamargo/bascula-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	WeighingUC *usecase.WeighingUseCase
	SupplierUC *usecase.SupplierUseCase
	StatsUC    *usecase.StatsUseCase
	ExcelUC    *export.ExcelUseCase
	InvoiceUC  *export.InvoiceUseCase
	JWTSecret  string
	Assets     config.AssetsConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Fotos subidas, servidas estáticamente
	app.Static("/uploads", deps.Assets.UploadDir)

	api := app.Group("/api")

	// Auth (público solo el login)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Escrituras por rol: crear pesajes admin+operator, editar/borrar solo admin.
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleOperator)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Weighings (protegido)
	weighings := protected.Group("/weighings")
	weighingHandler := NewWeighingHandler(deps.WeighingUC)
	weighings.Get("/", weighingHandler.List)
	weighings.Post("/", canWrite, weighingHandler.Create)
	weighings.Get("/:id", weighingHandler.GetByID)
	weighings.Patch("/:id", adminOnly, weighingHandler.Update)
	weighings.Delete("/:id", adminOnly, weighingHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", canWrite, supplierHandler.Create)
	suppliers.Patch("/:id", canWrite, supplierHandler.Rename)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Stats (protegido, lectura)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats/summary", statsHandler.Summary)

	// Export (protegido, lectura)
	exportHandler := NewExportHandler(deps.ExcelUC, deps.InvoiceUC)
	protected.Get("/export/excel", exportHandler.Excel)
	weighings.Get("/:id/invoice.docx", exportHandler.InvoiceDocx)
	weighings.Get("/:id/ticket.pdf", exportHandler.TicketPDF)

	// Upload de fotos (protegido, escritura)
	uploadHandler := NewUploadHandler(deps.Assets.UploadDir, deps.Assets.PublicURL)
	protected.Post("/upload", canWrite, uploadHandler.UploadPhoto)
}
