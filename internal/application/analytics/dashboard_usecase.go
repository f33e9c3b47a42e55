package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/lagerhub/internal/application/dto"
	"github.com/jhoicas/lagerhub/internal/application/snapshot"
	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/record"
	domsnapshot "github.com/jhoicas/lagerhub/internal/domain/snapshot"
)

// Etiquetas de fallback cuando una referencia no resuelve. La resolución
// fallida no es un error: el consumidor muestra estos textos.
const (
	labelUnknownProduct = "Unbekanntes Produkt"
	labelNoSupplier     = "Kein Lieferant"
	labelUnknown        = "Unbekannt"
)

const (
	defaultRecentReceipts = 5
	defaultTableRows      = 10
	maxListLimit          = 100
)

// DashboardUseCase expone las agregaciones del dashboard sobre el snapshot
// vigente. Es la única API de agregación; cualquier variante de presentación
// consume estos métodos en lugar de duplicar los cálculos.
type DashboardUseCase struct {
	snapshots *snapshot.Service
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(snapshots *snapshot.Service) *DashboardUseCase {
	return &DashboardUseCase{snapshots: snapshots, now: time.Now}
}

// GetSummary calcula los KPIs de cabecera. Devuelve ErrSnapshotNotLoaded si
// nunca hubo una carga exitosa.
func (uc *DashboardUseCase) GetSummary(_ context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	today := uc.now().Format("2006-01-02")
	open := OpenOrders(snap)

	return &dto.DashboardSummaryDTO{
		TotalInventoryValue: TotalInventoryValue(snap).Round(2),
		StockPositions:      len(snap.StockLevels),
		OpenOrderValue:      OpenOrderValue(open).Round(2),
		OpenOrderCount:      len(open),
		CriticalStockCount:  len(BelowMinimum(snap)),
		SupplierCount:       len(snap.Suppliers),
		ReceiptsTodayCount:  len(ReceiptsOn(snap, today)),
		AverageLeadTimeDays: AverageLeadTime(snap).Round(1),
		Date:                today,
	}, nil
}

// GetCategoryBreakdown serie de valor de inventario por categoría de producto.
func (uc *DashboardUseCase) GetCategoryBreakdown(_ context.Context) ([]dto.ChartGroupDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	return toChartGroups(GroupByCategory(snap)), nil
}

// GetLocationBreakdown serie de valor de inventario por ubicación de almacén.
func (uc *DashboardUseCase) GetLocationBreakdown(_ context.Context) ([]dto.ChartGroupDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	return toChartGroups(GroupByLocation(snap)), nil
}

// GetOrderStatusDistribution conteo de órdenes por estado (gráfica de tarta).
func (uc *DashboardUseCase) GetOrderStatusDistribution(_ context.Context) ([]dto.StatusSliceDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	dist := OrderStatusDistribution(snap)
	out := make([]dto.StatusSliceDTO, 0, len(dist))
	for _, sc := range dist {
		out = append(out, dto.StatusSliceDTO{
			Status: string(sc.Status),
			Label:  sc.Label,
			Count:  sc.Count,
		})
	}
	return out, nil
}

// GetCriticalStock lista de posiciones bajo mínimo, truncada a limit
// (por defecto 10, tope 100).
func (uc *DashboardUseCase) GetCriticalStock(_ context.Context, limit int) ([]dto.CriticalStockDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	critical := BelowMinimum(snap)
	critical = truncate(critical, normalizeLimit(limit, defaultTableRows))

	out := make([]dto.CriticalStockDTO, 0, len(critical))
	for _, c := range critical {
		out = append(out, dto.CriticalStockDTO{
			StockRecordID: c.Stock.RecordID,
			ProductID:     c.Product.RecordID,
			ProductName:   c.Product.DisplayName(),
			Location:      string(c.Stock.Location),
			LocationLabel: c.Stock.Location.Label(),
			Available:     c.Available,
			MinStock:      c.MinStock,
			Shortfall:     c.Shortfall,
		})
	}
	return out, nil
}

// GetRecentReceipts las n entradas más recientes con referencias resueltas
// (por defecto 5, tope 100).
func (uc *DashboardUseCase) GetRecentReceipts(_ context.Context, limit int) ([]dto.ReceiptRowDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	receipts := RecentReceipts(snap, normalizeLimit(limit, defaultRecentReceipts))

	out := make([]dto.ReceiptRowDTO, 0, len(receipts))
	for _, r := range receipts {
		quality := r.Quality
		if quality == "" {
			quality = entity.QualityNichtGeprueft
		}
		out = append(out, dto.ReceiptRowDTO{
			RecordID:     r.RecordID,
			ProductName:  resolveProductName(snap, r.ProductRef, labelUnknownProduct),
			SupplierName: resolveSupplierName(snap, r.SupplierRef, labelNoSupplier),
			Quantity:     r.DeliveredQuantity,
			DeliveryDate: r.DeliveryDate,
			Quality:      string(quality),
			QualityLabel: quality.Label(),
			Location:     string(r.Location),
		})
	}
	return out, nil
}

// GetOpenOrders tabla de órdenes abiertas con referencias resueltas,
// truncada a limit (por defecto 10, tope 100).
func (uc *DashboardUseCase) GetOpenOrders(_ context.Context, limit int) ([]dto.OpenOrderRowDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	open := truncate(OpenOrders(snap), normalizeLimit(limit, defaultTableRows))

	out := make([]dto.OpenOrderRowDTO, 0, len(open))
	for _, o := range open {
		row := dto.OpenOrderRowDTO{
			RecordID:         o.RecordID,
			OrderNumber:      o.DisplayNumber(),
			ProductName:      resolveProductName(snap, o.ProductRef, labelUnknown),
			SupplierName:     resolveSupplierName(snap, o.SupplierRef, labelUnknown),
			Quantity:         o.Quantity,
			Status:           string(o.Status),
			StatusLabel:      o.Status.Label(),
			ExpectedDelivery: o.ExpectedDelivery,
		}
		if o.TotalPrice != nil {
			row.TotalPrice = *o.TotalPrice
		}
		out = append(out, row)
	}
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func resolveProductName(snap *domsnapshot.Snapshot, ref record.Ref, fallback string) string {
	if p := snap.ProductByRef(ref); p != nil {
		return p.DisplayName()
	}
	return fallback
}

func resolveSupplierName(snap *domsnapshot.Snapshot, ref record.Ref, fallback string) string {
	if s := snap.SupplierByRef(ref); s != nil {
		return s.DisplayName()
	}
	return fallback
}

func toChartGroups(groups []Group) []dto.ChartGroupDTO {
	out := make([]dto.ChartGroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.ChartGroupDTO{
			Key:      g.Key,
			Label:    g.Label,
			Count:    g.Count,
			Quantity: g.Quantity,
			Value:    g.Value.Round(2),
		})
	}
	return out
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func truncate[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
