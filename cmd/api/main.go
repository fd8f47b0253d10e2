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

	"github.com/dlsventas/comisiones-api/internal/application/auth"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	infrapdf "github.com/dlsventas/comisiones-api/internal/infrastructure/pdf"
	"github.com/dlsventas/comisiones-api/internal/infrastructure/postgres"
	httpRouter "github.com/dlsventas/comisiones-api/internal/interfaces/http"
	"github.com/dlsventas/comisiones-api/pkg/config"
	"github.com/dlsventas/comisiones-api/pkg/logger"
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
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	sellerUC := usecase.NewSellerUseCase(sellerRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	if err := settingsUC.Seed(cfg.NCF.RestPercentage, cfg.NCF.InitialSuffix); err != nil {
		log.Fatal().Err(err).Msg("sembrar configuración inicial")
	}
	invoiceUC := usecase.NewInvoiceUseCase(
		invoiceRepo, clientRepo, sellerRepo, productRepo, settingsUC, log,
	)
	statsUC := usecase.NewStatsUseCase(invoiceRepo, clientRepo, sellerRepo, settingsUC)

	// PDF: reportes mensual, anual y desglose por producto
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(clientRepo, statsUC, pdfGenerator)

	backupUC := usecase.NewBackupUseCase(
		invoiceRepo, clientRepo, productRepo, sellerRepo, settingsRepo, txRunner, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comisiones DLS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		ClientUC:   clientUC,
		SellerUC:   sellerUC,
		SettingsUC: settingsUC,
		InvoiceUC:  invoiceUC,
		StatsUC:    statsUC,
		ReportUC:   reportUC,
		BackupUC:   backupUC,
		JWTSecret:  cfg.JWT.Secret,
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
