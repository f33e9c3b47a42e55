package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/record"
)

// OrderStatus estado de una orden de compra (dominio cerrado).
type OrderStatus string

const (
	OrderStatusEntwurf            OrderStatus = "entwurf"
	OrderStatusBestellt           OrderStatus = "bestellt"
	OrderStatusBestaetigt         OrderStatus = "bestaetigt"
	OrderStatusTeilweiseGeliefert OrderStatus = "teilweise_geliefert"
	OrderStatusGeliefert          OrderStatus = "geliefert"
	OrderStatusStorniert          OrderStatus = "storniert"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusEntwurf:            "Entwurf",
	OrderStatusBestellt:           "Bestellt",
	OrderStatusBestaetigt:         "Bestätigt",
	OrderStatusTeilweiseGeliefert: "Teilweise geliefert",
	OrderStatusGeliefert:          "Geliefert",
	OrderStatusStorniert:          "Storniert",
}

// Label etiqueta de presentación; valores desconocidos caen al valor crudo.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsTerminal reporta si el estado es terminal (entregada o cancelada).
// Una orden está "abierta" exactamente cuando su estado no es terminal;
// eso incluye los borradores.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusGeliefert || s == OrderStatusStorniert
}

// Order orden de compra a un proveedor, registro de la app "Bestellungen".
type Order struct {
	RecordID  string
	CreatedAt string
	UpdatedAt string

	OrderNumber      string
	ProductRef       record.Ref // applookup → Produkte
	SupplierRef      record.Ref // applookup → Lieferanten
	Quantity         decimal.Decimal
	UnitPrice        *decimal.Decimal
	TotalPrice       *decimal.Decimal // gesamtpreis; nil contribuye 0 al valor abierto
	OrderDate        string           // fecha ISO
	ExpectedDelivery string           // fecha ISO
	Status           OrderStatus      // ausente en el wire = entwurf
	SupplierOrderRef string
	Notes            string
}

// DisplayNumber número para listados: bestellnummer o el sufijo del record id.
func (o Order) DisplayNumber() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	if len(o.RecordID) > 8 {
		return o.RecordID[len(o.RecordID)-8:]
	}
	return o.RecordID
}
