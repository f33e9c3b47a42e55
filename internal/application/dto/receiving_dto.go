package dto

// CreateReceiptRequest body de POST /api/receipts. La cantidad viaja como
// string (igual que la capturan los formularios) y se valida/parsea en el
// caso de uso; los campos opcionales en blanco se omiten del payload hacia
// LivingApps.
type CreateReceiptRequest struct {
	ProductID  string `json:"product_id"`            // obligatorio, record id de 24 hex
	SupplierID string `json:"supplier_id,omitempty"` // opcional
	OrderID    string `json:"order_id,omitempty"`    // opcional

	DeliveredQuantity string `json:"delivered_quantity"` // obligatorio, numérico finito
	Location          string `json:"location"`           // obligatorio
	DeliveryDate      string `json:"delivery_date,omitempty"`
	Quality           string `json:"quality,omitempty"`
	DeliveryNoteNo    string `json:"delivery_note_no,omitempty"`
	RecordedBy        string `json:"recorded_by,omitempty"`
	Deviations        string `json:"deviations,omitempty"`
}

// CreateReceiptResponse respuesta de una creación exitosa.
type CreateReceiptResponse struct {
	RecordID string `json:"record_id"`
	Message  string `json:"message"`
}
