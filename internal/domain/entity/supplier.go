package entity

import "github.com/shopspring/decimal"

// SupplierRating calificación de un proveedor (dominio cerrado).
type SupplierRating string

const (
	RatingSehrGut      SupplierRating = "sehr_gut"
	RatingGut          SupplierRating = "gut"
	RatingBefriedigend SupplierRating = "befriedigend"
	RatingAusreichend  SupplierRating = "ausreichend"
	RatingMangelhaft   SupplierRating = "mangelhaft"
)

var ratingLabels = map[SupplierRating]string{
	RatingSehrGut:      "Sehr gut",
	RatingGut:          "Gut",
	RatingBefriedigend: "Befriedigend",
	RatingAusreichend:  "Ausreichend",
	RatingMangelhaft:   "Mangelhaft",
}

// Label etiqueta de presentación; valores desconocidos caen al valor crudo.
func (r SupplierRating) Label() string {
	if l, ok := ratingLabels[r]; ok {
		return l
	}
	return string(r)
}

// Supplier proveedor, registro de la app "Lieferanten". Referenciado por
// Order y GoodsReceipt vía applookup.
type Supplier struct {
	RecordID  string
	CreatedAt string
	UpdatedAt string

	CompanyName    string
	SupplierNumber string
	ContactPerson  string
	Email          string
	Phone          string
	City           string
	Country        string
	PaymentTermDays *decimal.Decimal // zahlungsziel, días
	LeadTimeDays    *decimal.Decimal // lieferzeit, días; nil = sin dato
	Rating          SupplierRating
	Notes           string
}

// DisplayName nombre para listados: firmenname, si no lieferantennummer.
func (s Supplier) DisplayName() string {
	if s.CompanyName != "" {
		return s.CompanyName
	}
	if s.SupplierNumber != "" {
		return s.SupplierNumber
	}
	return "Unbenannt"
}
