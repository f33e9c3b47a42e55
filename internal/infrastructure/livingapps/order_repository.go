package livingapps

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/record"
)

// OrderRepository adaptador de lectura de la app "Bestellungen".
type OrderRepository struct {
	client *Client
	appID  string
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(client *Client, appID string) *OrderRepository {
	return &OrderRepository{client: client, appID: appID}
}

type orderFields struct {
	OrderNumber      string           `json:"bestellnummer"`
	Supplier         string           `json:"lieferant"` // applookup → Lieferanten
	Product          string           `json:"produkt"`   // applookup → Produkte
	Quantity         decimal.Decimal  `json:"bestellmenge"`
	UnitPrice        *decimal.Decimal `json:"preis_pro_einheit"`
	TotalPrice       *decimal.Decimal `json:"gesamtpreis"`
	OrderDate        string           `json:"bestelldatum"`
	ExpectedDelivery string           `json:"erwartetes_lieferdatum"`
	Status           string           `json:"status"`
	SupplierOrderRef string           `json:"lieferantenbestellung"`
	Notes            string           `json:"notizen"`
}

// ListAll devuelve todas las órdenes de compra.
func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	records, err := r.client.Records(ctx, r.appID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(records))
	for id, rec := range records {
		var f orderFields
		if err := decodeFields(rec, id, &f); err != nil {
			return nil, err
		}
		status := entity.OrderStatus(f.Status)
		if f.Status == "" {
			// una orden sin estado cuenta como borrador
			status = entity.OrderStatusEntwurf
		}
		out = append(out, entity.Order{
			RecordID:         id,
			CreatedAt:        rec.CreatedAt,
			UpdatedAt:        strOrEmpty(rec.UpdatedAt),
			OrderNumber:      f.OrderNumber,
			ProductRef:       record.Ref(f.Product),
			SupplierRef:      record.Ref(f.Supplier),
			Quantity:         f.Quantity,
			UnitPrice:        f.UnitPrice,
			TotalPrice:       f.TotalPrice,
			OrderDate:        f.OrderDate,
			ExpectedDelivery: f.ExpectedDelivery,
			Status:           status,
			SupplierOrderRef: f.SupplierOrderRef,
			Notes:            f.Notes,
		})
	}
	return out, nil
}
