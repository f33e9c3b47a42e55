package livingapps

import (
	"encoding/json"
	"fmt"
)

// decodeFields decodifica el mapeo de campos de un registro en el struct de
// wire de la colección. Un registro sin campos es válido (todo opcional).
func decodeFields(rec RawRecord, recordID string, dst any) error {
	if len(rec.Fields) == 0 {
		return nil
	}
	if err := json.Unmarshal(rec.Fields, dst); err != nil {
		return fmt.Errorf("livingapps: registro %s: %w", recordID, err)
	}
	return nil
}

// strOrEmpty desreferencia un updatedat opcional.
func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
