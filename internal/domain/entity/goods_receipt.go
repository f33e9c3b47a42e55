package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/record"
)

// QualityResult resultado de la inspección de calidad de una entrada.
type QualityResult string

const (
	QualityBestanden      QualityResult = "bestanden"
	QualityMitMaengeln    QualityResult = "mit_maengeln"
	QualityNichtBestanden QualityResult = "nicht_bestanden"
	QualityNichtGeprueft  QualityResult = "nicht_geprueft"
)

var qualityLabels = map[QualityResult]string{
	QualityBestanden:      "Bestanden",
	QualityMitMaengeln:    "Mit Mängeln",
	QualityNichtBestanden: "Nicht bestanden",
	QualityNichtGeprueft:  "Nicht geprüft",
}

// Label etiqueta de presentación; valores desconocidos caen al valor crudo.
func (q QualityResult) Label() string {
	if l, ok := qualityLabels[q]; ok {
		return l
	}
	return string(q)
}

// QualityResults dominio cerrado en orden fijo (para selects de formularios).
func QualityResults() []QualityResult {
	return []QualityResult{
		QualityBestanden, QualityMitMaengeln, QualityNichtBestanden, QualityNichtGeprueft,
	}
}

// GoodsReceipt entrada de mercancía, registro de la app "Wareneingang".
// Es la única colección con operación de escritura en este servicio.
type GoodsReceipt struct {
	RecordID  string
	CreatedAt string
	UpdatedAt string

	OrderRef          record.Ref // applookup → Bestellungen (opcional)
	ProductRef        record.Ref // applookup → Produkte
	SupplierRef       record.Ref // applookup → Lieferanten (opcional)
	DeliveryDate      string     // fecha ISO
	DeliveredQuantity decimal.Decimal
	Location          StorageLocation
	Quality           QualityResult
	Deviations        string
	DeliveryNoteNo    string
	RecordedBy        string
	RecordedAt        string // timestamp ISO de captura
	Notes             string
}

// GoodsReceiptDraft es la entrada ya validada y normalizada que el caso de
// uso entrega al adaptador de escritura. Los punteros nil se omiten por
// completo del payload: el API distingue "ausente" de "cadena vacía".
type GoodsReceiptDraft struct {
	ProductID  string // obligatorio: record id del producto (24 hex)
	SupplierID string // opcional
	OrderID    string // opcional

	DeliveryDate      string // opcional, fecha ISO
	DeliveredQuantity decimal.Decimal
	Location          StorageLocation
	Quality           QualityResult // opcional
	DeliveryNoteNo    string
	RecordedBy        string
	RecordedAt        string // timestamp de captura, lo fija el caso de uso
	Deviations        string
}
