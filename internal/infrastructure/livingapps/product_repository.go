package livingapps

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
)

// ProductRepository adaptador de lectura de la app "Produkte".
type ProductRepository struct {
	client *Client
	appID  string
}

// NewProductRepository construye el adaptador.
func NewProductRepository(client *Client, appID string) *ProductRepository {
	return &ProductRepository{client: client, appID: appID}
}

// productFields mapeo de campos del wire (identificadores LivingApps en alemán).
type productFields struct {
	Name          string           `json:"produktname"`
	ArticleNumber string           `json:"artikelnummer"`
	Description   string           `json:"beschreibung"`
	Category      string           `json:"kategorie"`
	PurchasePrice *decimal.Decimal `json:"einkaufspreis"`
	SalePrice     *decimal.Decimal `json:"verkaufspreis"`
	MinStock      *decimal.Decimal `json:"mindestbestand"`
	Unit          string           `json:"einheit"`
	Barcode       string           `json:"barcode"`
	Active        string           `json:"aktiv"`
}

// ListAll devuelve el catálogo de productos completo.
func (r *ProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	records, err := r.client.Records(ctx, r.appID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(records))
	for id, rec := range records {
		var f productFields
		if err := decodeFields(rec, id, &f); err != nil {
			return nil, err
		}
		out = append(out, entity.Product{
			RecordID:      id,
			CreatedAt:     rec.CreatedAt,
			UpdatedAt:     strOrEmpty(rec.UpdatedAt),
			Name:          f.Name,
			ArticleNumber: f.ArticleNumber,
			Description:   f.Description,
			Category:      entity.Category(f.Category),
			PurchasePrice: f.PurchasePrice,
			SalePrice:     f.SalePrice,
			MinStock:      f.MinStock,
			Unit:          f.Unit,
			Barcode:       f.Barcode,
			Active:        entity.ActiveState(f.Active),
		})
	}
	return out, nil
}
