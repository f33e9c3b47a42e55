package livingapps

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
)

// SupplierRepository adaptador de lectura de la app "Lieferanten".
type SupplierRepository struct {
	client *Client
	appID  string
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(client *Client, appID string) *SupplierRepository {
	return &SupplierRepository{client: client, appID: appID}
}

type supplierFields struct {
	CompanyName     string           `json:"firmenname"`
	SupplierNumber  string           `json:"lieferantennummer"`
	ContactPerson   string           `json:"ansprechpartner"`
	Email           string           `json:"email"`
	Phone           string           `json:"telefon"`
	City            string           `json:"stadt"`
	Country         string           `json:"land"`
	PaymentTermDays *decimal.Decimal `json:"zahlungsziel"`
	LeadTimeDays    *decimal.Decimal `json:"lieferzeit"`
	Rating          string           `json:"bewertung"`
	Notes           string           `json:"notizen"`
}

// ListAll devuelve todos los proveedores registrados.
func (r *SupplierRepository) ListAll(ctx context.Context) ([]entity.Supplier, error) {
	records, err := r.client.Records(ctx, r.appID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Supplier, 0, len(records))
	for id, rec := range records {
		var f supplierFields
		if err := decodeFields(rec, id, &f); err != nil {
			return nil, err
		}
		out = append(out, entity.Supplier{
			RecordID:        id,
			CreatedAt:       rec.CreatedAt,
			UpdatedAt:       strOrEmpty(rec.UpdatedAt),
			CompanyName:     f.CompanyName,
			SupplierNumber:  f.SupplierNumber,
			ContactPerson:   f.ContactPerson,
			Email:           f.Email,
			Phone:           f.Phone,
			City:            f.City,
			Country:         f.Country,
			PaymentTermDays: f.PaymentTermDays,
			LeadTimeDays:    f.LeadTimeDays,
			Rating:          entity.SupplierRating(f.Rating),
			Notes:           f.Notes,
		})
	}
	return out, nil
}
