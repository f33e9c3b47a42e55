package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/lagerhub/internal/application/dto"
)

// ReportData datos ya resueltos que entran al informe PDF.
type ReportData struct {
	Summary       *dto.DashboardSummaryDTO
	CriticalStock []dto.CriticalStockDTO
	Receipts      []dto.ReceiptRowDTO
	OpenOrders    []dto.OpenOrderRowDTO
	GeneratedAt   time.Time
}

// ReportGenerator puerto de generación del informe (implementado en
// infrastructure/pdf con Maroto).
type ReportGenerator interface {
	GenerateReport(ctx context.Context, data ReportData) ([]byte, error)
}

// ReportUseCase arma el informe de almacén: junta los mismos datos que
// sirve el dashboard y los entrega al generador.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator ReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso del informe.
func NewReportUseCase(dashboard *DashboardUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator, now: time.Now}
}

// Generate produce los bytes del PDF con el estado actual del snapshot.
func (uc *ReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	summary, err := uc.dashboard.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	critical, err := uc.dashboard.GetCriticalStock(ctx, 0)
	if err != nil {
		return nil, err
	}
	receipts, err := uc.dashboard.GetRecentReceipts(ctx, 0)
	if err != nil {
		return nil, err
	}
	orders, err := uc.dashboard.GetOpenOrders(ctx, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReport(ctx, ReportData{
		Summary:       summary,
		CriticalStock: critical,
		Receipts:      receipts,
		OpenOrders:    orders,
		GeneratedAt:   uc.now(),
	})
}
