package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: los KPIs de
// cabecera del dashboard de almacén. Los montos van redondeados a 2
// decimales solo aquí, en el borde de presentación.
type DashboardSummaryDTO struct {
	// Valor total del inventario (Σ menge × einkaufspreis del producto resuelto)
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	StockPositions      int             `json:"stock_positions"`

	// Órdenes abiertas (estado no terminal) y su valor acumulado
	OpenOrderValue decimal.Decimal `json:"open_order_value"`
	OpenOrderCount int             `json:"open_order_count"`

	// Posiciones por debajo del mindestbestand
	CriticalStockCount int `json:"critical_stock_count"`

	SupplierCount int `json:"supplier_count"`

	// Entradas de mercancía con lieferdatum == hoy (igualdad literal de fecha)
	ReceiptsTodayCount int `json:"receipts_today_count"`

	// Media de lieferzeit (días) de los proveedores que la declaran
	AverageLeadTimeDays decimal.Decimal `json:"average_lead_time_days"`

	// Fecha del servidor usada para "hoy", formato ISO
	Date string `json:"date"`
}

// ChartGroupDTO punto de una serie agrupada (categoría o ubicación),
// listo para gráficas de barras/tarta.
type ChartGroupDTO struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// StatusSliceDTO porción de la distribución de estados de órdenes.
type StatusSliceDTO struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// CriticalStockDTO fila de la lista "productos bajo mínimo".
type CriticalStockDTO struct {
	StockRecordID string          `json:"stock_record_id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Location      string          `json:"location"`
	LocationLabel string          `json:"location_label"`
	Available     decimal.Decimal `json:"available"`
	MinStock      decimal.Decimal `json:"min_stock"`
	Shortfall     decimal.Decimal `json:"shortfall"`
}

// ReceiptRowDTO fila de "últimas entradas de mercancía" con las referencias
// ya resueltas a nombres (con fallback si no resuelven).
type ReceiptRowDTO struct {
	RecordID     string          `json:"record_id"`
	ProductName  string          `json:"product_name"`
	SupplierName string          `json:"supplier_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	DeliveryDate string          `json:"delivery_date,omitempty"`
	Quality      string          `json:"quality"`
	QualityLabel string          `json:"quality_label"`
	Location     string          `json:"location,omitempty"`
}

// OpenOrderRowDTO fila de la tabla de órdenes abiertas.
type OpenOrderRowDTO struct {
	RecordID         string          `json:"record_id"`
	OrderNumber      string          `json:"order_number"`
	ProductName      string          `json:"product_name"`
	SupplierName     string          `json:"supplier_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	Status           string          `json:"status"`
	StatusLabel      string          `json:"status_label"`
	ExpectedDelivery string          `json:"expected_delivery,omitempty"`
}
