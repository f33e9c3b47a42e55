package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/lagerhub/internal/application/analytics"
	"github.com/jhoicas/lagerhub/internal/application/auth"
	"github.com/jhoicas/lagerhub/internal/application/receiving"
	appsnapshot "github.com/jhoicas/lagerhub/internal/application/snapshot"
	"github.com/jhoicas/lagerhub/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
	CatalogUC   *usecase.CatalogUseCase
	ReceivingUC *receiving.UseCase
	SnapshotSvc *appsnapshot.Service
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/categories", dashboardHandler.GetCategoryBreakdown)
	dashboard.Get("/locations", dashboardHandler.GetLocationBreakdown)
	dashboard.Get("/order-status", dashboardHandler.GetOrderStatusDistribution)
	dashboard.Get("/critical-stock", dashboardHandler.GetCriticalStock)
	dashboard.Get("/recent-receipts", dashboardHandler.GetRecentReceipts)
	dashboard.Get("/open-orders", dashboardHandler.GetOpenOrders)
	dashboard.Get("/report.pdf", dashboardHandler.GetReportPDF)

	// Catálogo para formularios (protegido)
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/products", catalogHandler.ListProducts)
	catalog.Get("/suppliers", catalogHandler.ListSuppliers)
	catalog.Get("/orders", catalogHandler.ListOpenOrders)
	catalog.Get("/form-options", catalogHandler.FormOptions)

	// Entradas de mercancía (protegido)
	receipts := protected.Group("/receipts")
	receivingHandler := NewReceivingHandler(deps.ReceivingUC)
	receipts.Post("/", receivingHandler.Create)

	// Snapshot (protegido)
	snapshotGroup := protected.Group("/snapshot")
	snapshotHandler := NewSnapshotHandler(deps.SnapshotSvc)
	snapshotGroup.Post("/refresh", snapshotHandler.Refresh)
	snapshotGroup.Get("/status", snapshotHandler.Status)
}
