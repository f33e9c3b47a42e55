package dto

// SnapshotStatusDTO estado del snapshot en memoria, GET /api/snapshot/status.
type SnapshotStatusDTO struct {
	Loaded      bool   `json:"loaded"`
	LoadedAt    string `json:"loaded_at,omitempty"`    // RFC 3339
	LastAttempt string `json:"last_attempt,omitempty"` // RFC 3339
	LastError   string `json:"last_error,omitempty"`

	Products      int `json:"products"`
	StockLevels   int `json:"stock_levels"`
	Orders        int `json:"orders"`
	GoodsReceipts int `json:"goods_receipts"`
	Suppliers     int `json:"suppliers"`
}
