package dto

import "github.com/shopspring/decimal"

// ProductOptionDTO opción de producto para selects de formularios.
type ProductOptionDTO struct {
	RecordID      string `json:"record_id"`
	Name          string `json:"name"`
	ArticleNumber string `json:"article_number,omitempty"`
	Category      string `json:"category,omitempty"`
	CategoryLabel string `json:"category_label,omitempty"`
	Active        string `json:"active,omitempty"`
}

// SupplierOptionDTO opción de proveedor para selects.
type SupplierOptionDTO struct {
	RecordID       string           `json:"record_id"`
	Name           string           `json:"name"`
	SupplierNumber string           `json:"supplier_number,omitempty"`
	Rating         string           `json:"rating,omitempty"`
	LeadTimeDays   *decimal.Decimal `json:"lead_time_days,omitempty"`
}

// OrderOptionDTO opción de orden para selects (vincular una entrada con su
// orden de compra).
type OrderOptionDTO struct {
	RecordID    string `json:"record_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

// EnumOptionDTO valor de un dominio cerrado con su etiqueta de presentación
// (ubicaciones de almacén, resultados de calidad).
type EnumOptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormOptionsDTO dominios cerrados que consumen los formularios.
type FormOptionsDTO struct {
	Locations      []EnumOptionDTO `json:"locations"`
	QualityResults []EnumOptionDTO `json:"quality_results"`
}
