package livingapps

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/record"
)

// StockLevelRepository adaptador de lectura de la app "Lagerbestand".
type StockLevelRepository struct {
	client *Client
	appID  string
}

// NewStockLevelRepository construye el adaptador.
func NewStockLevelRepository(client *Client, appID string) *StockLevelRepository {
	return &StockLevelRepository{client: client, appID: appID}
}

type stockFields struct {
	Product       string           `json:"produkt"` // applookup → Produkte
	Location      string           `json:"lagerort"`
	OnHand        decimal.Decimal  `json:"menge"`
	Reserved      *decimal.Decimal `json:"reserviert"`
	Available     *decimal.Decimal `json:"verfuegbar"`
	LastInventory string           `json:"letzte_inventur"`
	Notes         string           `json:"notizen"`
}

// ListAll devuelve todas las posiciones de stock.
func (r *StockLevelRepository) ListAll(ctx context.Context) ([]entity.StockLevel, error) {
	records, err := r.client.Records(ctx, r.appID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.StockLevel, 0, len(records))
	for id, rec := range records {
		var f stockFields
		if err := decodeFields(rec, id, &f); err != nil {
			return nil, err
		}
		out = append(out, entity.StockLevel{
			RecordID:      id,
			CreatedAt:     rec.CreatedAt,
			UpdatedAt:     strOrEmpty(rec.UpdatedAt),
			ProductRef:    record.Ref(f.Product),
			Location:      entity.StorageLocation(f.Location),
			OnHand:        f.OnHand,
			Reserved:      f.Reserved,
			Available:     f.Available,
			LastInventory: f.LastInventory,
			Notes:         f.Notes,
		})
	}
	return out, nil
}
