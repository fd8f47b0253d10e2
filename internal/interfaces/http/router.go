package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dlsventas/comisiones-api/internal/application/auth"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	SellerUC   *usecase.SellerUseCase
	SettingsUC *usecase.SettingsUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	StatsUC    *usecase.StatsUseCase
	ReportUC   *usecase.ReportUseCase
	BackupUC   *usecase.BackupUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos de comisión (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Post("/import-csv", clientHandler.ImportCSV)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Vendedores (protegido)
	sellers := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellers.Post("/", sellerHandler.Create)
	sellers.Get("/", sellerHandler.List)
	sellers.Get("/:id", sellerHandler.GetByID)
	sellers.Put("/:id", sellerHandler.Update)
	sellers.Put("/:id/default", sellerHandler.SetDefault)
	sellers.Delete("/:id", sellerHandler.Delete)

	// Configuración global (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Facturas (protegido). bulk-percentage va antes de :id para que
	// fiber no lo capture como parámetro.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Put("/bulk-percentage", invoiceHandler.BulkPercentage)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Estadísticas (protegido)
	statsGroup := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	statsGroup.Get("/month", statsHandler.Month)
	statsGroup.Get("/year", statsHandler.Year)
	statsGroup.Get("/breakdown", statsHandler.Breakdown)

	// Reportes PDF (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/annual", reportHandler.Annual)
	reports.Get("/breakdown", reportHandler.Breakdown)

	// Respaldo (protegido)
	backup := protected.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backup.Get("/", backupHandler.Export)
	backup.Post("/restore", backupHandler.Restore)
}
