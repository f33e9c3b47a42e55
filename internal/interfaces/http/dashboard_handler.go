package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/lagerhub/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard de almacén. Todas
// las respuestas salen del snapshot en memoria.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	report *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, report *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// GetSummary devuelve los KPIs de cabecera del dashboard.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (valor de inventario, órdenes abiertas,
// stock crítico, entradas de hoy, lieferzeit media, fecha del servidor).
// No requiere parámetros.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetCategoryBreakdown devuelve el desglose de inventario por categoría.
// GET /api/dashboard/categories
func (h *DashboardHandler) GetCategoryBreakdown(c *fiber.Ctx) error {
	groups, err := h.uc.GetCategoryBreakdown(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(groups)
}

// GetLocationBreakdown devuelve el desglose de inventario por ubicación.
// GET /api/dashboard/locations
func (h *DashboardHandler) GetLocationBreakdown(c *fiber.Ctx) error {
	groups, err := h.uc.GetLocationBreakdown(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(groups)
}

// GetOrderStatusDistribution devuelve el conteo de órdenes por estado.
// GET /api/dashboard/order-status
func (h *DashboardHandler) GetOrderStatusDistribution(c *fiber.Ctx) error {
	slices, err := h.uc.GetOrderStatusDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slices)
}

// GetCriticalStock devuelve las posiciones bajo mindestbestand, peor
// faltante primero. GET /api/dashboard/critical-stock?limit=10
func (h *DashboardHandler) GetCriticalStock(c *fiber.Ctx) error {
	rows, err := h.uc.GetCriticalStock(c.Context(), queryLimit(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// GetRecentReceipts devuelve las últimas entradas de mercancía.
// GET /api/dashboard/recent-receipts?limit=5
func (h *DashboardHandler) GetRecentReceipts(c *fiber.Ctx) error {
	rows, err := h.uc.GetRecentReceipts(c.Context(), queryLimit(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// GetOpenOrders devuelve las órdenes abiertas, más recientes primero.
// GET /api/dashboard/open-orders?limit=10
func (h *DashboardHandler) GetOpenOrders(c *fiber.Ctx) error {
	rows, err := h.uc.GetOpenOrders(c.Context(), queryLimit(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// GetReportPDF genera y descarga el informe de almacén en PDF.
// GET /api/dashboard/report.pdf
func (h *DashboardHandler) GetReportPDF(c *fiber.Ctx) error {
	data, err := h.report.Generate(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	filename := "lagerbericht-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// queryLimit lee ?limit=N; 0 significa "usa el default del caso de uso".
func queryLimit(c *fiber.Ctx) int {
	n, err := strconv.Atoi(c.Query("limit", "0"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
