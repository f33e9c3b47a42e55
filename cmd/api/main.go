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
	appanalytics "github.com/jhoicas/lagerhub/internal/application/analytics"
	"github.com/jhoicas/lagerhub/internal/application/auth"
	"github.com/jhoicas/lagerhub/internal/application/receiving"
	appsnapshot "github.com/jhoicas/lagerhub/internal/application/snapshot"
	"github.com/jhoicas/lagerhub/internal/application/usecase"
	"github.com/jhoicas/lagerhub/internal/infrastructure/livingapps"
	infrapdf "github.com/jhoicas/lagerhub/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/lagerhub/internal/interfaces/http"
	"github.com/jhoicas/lagerhub/pkg/config"
	"github.com/jhoicas/lagerhub/pkg/logger"
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

	// Cliente LivingApps y los cinco adaptadores de colección
	client := livingapps.NewClient(livingapps.Config{
		BaseURL:       cfg.LivingApps.BaseURL,
		SessionCookie: cfg.LivingApps.SessionCookie,
		Timeout:       cfg.LivingApps.Timeout,
	})
	apps := livingapps.AppIDs{
		Products:      cfg.LivingApps.ProductsAppID,
		StockLevels:   cfg.LivingApps.StockLevelsAppID,
		Orders:        cfg.LivingApps.OrdersAppID,
		GoodsReceipts: cfg.LivingApps.GoodsReceiptsAppID,
		Suppliers:     cfg.LivingApps.SuppliersAppID,
	}
	productRepo := livingapps.NewProductRepository(client, apps.Products)
	stockRepo := livingapps.NewStockLevelRepository(client, apps.StockLevels)
	orderRepo := livingapps.NewOrderRepository(client, apps.Orders)
	receiptRepo := livingapps.NewGoodsReceiptRepository(client, apps)
	supplierRepo := livingapps.NewSupplierRepository(client, apps.Suppliers)

	// Snapshot en memoria: carga paralela todo-o-nada de las cinco colecciones
	loader := appsnapshot.NewLoader(productRepo, stockRepo, orderRepo, receiptRepo, supplierRepo)
	store := appsnapshot.NewStore()
	snapshotSvc := appsnapshot.NewService(loader, store, log)

	// Carga inicial: un fallo no aborta el arranque, los handlers responden
	// 503 hasta que una recarga tenga éxito.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := snapshotSvc.Refresh(startupCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial del snapshot fallida, se reintentará")
	}
	cancelStartup()

	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()
	if cfg.Snapshot.RefreshInterval > 0 {
		go snapshotSvc.RunPeriodic(rootCtx, cfg.Snapshot.RefreshInterval)
	}

	// Casos de uso
	dashboardUC := appanalytics.NewDashboardUseCase(snapshotSvc)
	reportUC := appanalytics.NewReportUseCase(dashboardUC, infrapdf.NewMarotoReportGenerator())
	catalogUC := usecase.NewCatalogUseCase(snapshotSvc)
	receivingUC := receiving.NewUseCase(receiptRepo, snapshotSvc, log)
	authUC := auth.NewUseCase(
		auth.Credentials{
			Username:     cfg.Auth.Username,
			PasswordHash: cfg.Auth.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LagerHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		CatalogUC:   catalogUC,
		ReceivingUC: receivingUC,
		SnapshotSvc: snapshotSvc,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
	cancelRoot()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
