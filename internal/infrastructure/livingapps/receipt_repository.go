package livingapps

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/record"
)

// GoodsReceiptRepository adaptador de la app "Wareneingang" (lectura y la
// única operación de escritura del servicio). Necesita los app IDs de las
// colecciones referenciadas para serializar los applookup como
// localizadores completos.
type GoodsReceiptRepository struct {
	client *Client
	apps   AppIDs
}

// NewGoodsReceiptRepository construye el adaptador.
func NewGoodsReceiptRepository(client *Client, apps AppIDs) *GoodsReceiptRepository {
	return &GoodsReceiptRepository{client: client, apps: apps}
}

type receiptFields struct {
	Order             string          `json:"bestellung"` // applookup → Bestellungen
	Product           string          `json:"produkt"`    // applookup → Produkte
	Supplier          string          `json:"lieferant"`  // applookup → Lieferanten
	DeliveryDate      string          `json:"lieferdatum"`
	DeliveredQuantity decimal.Decimal `json:"gelieferte_menge"`
	Location          string          `json:"lagerort"`
	Quality           string          `json:"qualitaetspruefung"`
	Deviations        string          `json:"abweichungen"`
	DeliveryNoteNo    string          `json:"lieferscheinnummer"`
	RecordedBy        string          `json:"erfasst_von"`
	RecordedAt        string          `json:"erfassungsdatum"`
	Notes             string          `json:"notizen"`
}

// ListAll devuelve todas las entradas de mercancía.
func (r *GoodsReceiptRepository) ListAll(ctx context.Context) ([]entity.GoodsReceipt, error) {
	records, err := r.client.Records(ctx, r.apps.GoodsReceipts)
	if err != nil {
		return nil, err
	}
	out := make([]entity.GoodsReceipt, 0, len(records))
	for id, rec := range records {
		var f receiptFields
		if err := decodeFields(rec, id, &f); err != nil {
			return nil, err
		}
		out = append(out, entity.GoodsReceipt{
			RecordID:          id,
			CreatedAt:         rec.CreatedAt,
			UpdatedAt:         strOrEmpty(rec.UpdatedAt),
			OrderRef:          record.Ref(f.Order),
			ProductRef:        record.Ref(f.Product),
			SupplierRef:       record.Ref(f.Supplier),
			DeliveryDate:      f.DeliveryDate,
			DeliveredQuantity: f.DeliveredQuantity,
			Location:          entity.StorageLocation(f.Location),
			Quality:           entity.QualityResult(f.Quality),
			Deviations:        f.Deviations,
			DeliveryNoteNo:    f.DeliveryNoteNo,
			RecordedBy:        f.RecordedBy,
			RecordedAt:        f.RecordedAt,
			Notes:             f.Notes,
		})
	}
	return out, nil
}

// receiptCreateFields payload de creación. omitempty en todos los opcionales:
// el API distingue "campo ausente" de "cadena vacía", así que los campos en
// blanco se omiten por completo.
type receiptCreateFields struct {
	Product           string          `json:"produkt"`
	Order             string          `json:"bestellung,omitempty"`
	Supplier          string          `json:"lieferant,omitempty"`
	DeliveryDate      string          `json:"lieferdatum,omitempty"`
	DeliveredQuantity decimal.Decimal `json:"gelieferte_menge"`
	Location          string          `json:"lagerort"`
	Quality           string          `json:"qualitaetspruefung,omitempty"`
	DeliveryNoteNo    string          `json:"lieferscheinnummer,omitempty"`
	RecordedBy        string          `json:"erfasst_von,omitempty"`
	RecordedAt        string          `json:"erfassungsdatum,omitempty"`
	Deviations        string          `json:"abweichungen,omitempty"`
}

// Create crea la entrada de mercancía. Los applookup se serializan como
// localizadores completos construidos con el app ID destino + record id.
// No reintenta; un rechazo del servidor se propaga con su texto crudo.
func (r *GoodsReceiptRepository) Create(ctx context.Context, draft entity.GoodsReceiptDraft) (*entity.GoodsReceipt, error) {
	base := r.client.BaseURL()
	fields := receiptCreateFields{
		Product:           record.URL(base, r.apps.Products, draft.ProductID),
		DeliveryDate:      draft.DeliveryDate,
		DeliveredQuantity: draft.DeliveredQuantity,
		Location:          string(draft.Location),
		Quality:           string(draft.Quality),
		DeliveryNoteNo:    draft.DeliveryNoteNo,
		RecordedBy:        draft.RecordedBy,
		RecordedAt:        draft.RecordedAt,
		Deviations:        draft.Deviations,
	}
	if draft.OrderID != "" {
		fields.Order = record.URL(base, r.apps.Orders, draft.OrderID)
	}
	if draft.SupplierID != "" {
		fields.Supplier = record.URL(base, r.apps.Suppliers, draft.SupplierID)
	}

	created, err := r.client.CreateRecord(ctx, r.apps.GoodsReceipts, fields)
	if err != nil {
		return nil, err
	}

	receipt := &entity.GoodsReceipt{
		RecordID:          created.ID,
		CreatedAt:         created.CreatedAt,
		ProductRef:        record.Ref(fields.Product),
		OrderRef:          record.Ref(fields.Order),
		SupplierRef:       record.Ref(fields.Supplier),
		DeliveryDate:      draft.DeliveryDate,
		DeliveredQuantity: draft.DeliveredQuantity,
		Location:          draft.Location,
		Quality:           draft.Quality,
		Deviations:        draft.Deviations,
		DeliveryNoteNo:    draft.DeliveryNoteNo,
		RecordedBy:        draft.RecordedBy,
		RecordedAt:        draft.RecordedAt,
	}
	return receipt, nil
}
