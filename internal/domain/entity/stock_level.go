package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/record"
)

// StorageLocation ubicación física de almacenamiento (dominio cerrado).
type StorageLocation string

const (
	LocationRegalA1    StorageLocation = "regal_a1"
	LocationRegalA2    StorageLocation = "regal_a2"
	LocationRegalB1    StorageLocation = "regal_b1"
	LocationRegalB2    StorageLocation = "regal_b2"
	LocationHochregal1 StorageLocation = "hochregal_1"
	LocationKuehllager StorageLocation = "kuehllager"
	LocationAussenlager StorageLocation = "aussenlager"
	LocationRetoure    StorageLocation = "retoure"
)

var locationLabels = map[StorageLocation]string{
	LocationRegalA1:     "Regal A1",
	LocationRegalA2:     "Regal A2",
	LocationRegalB1:     "Regal B1",
	LocationRegalB2:     "Regal B2",
	LocationHochregal1:  "Hochregal 1",
	LocationKuehllager:  "Kühllager",
	LocationAussenlager: "Außenlager",
	LocationRetoure:     "Retoure",
}

// Label etiqueta de presentación; valores desconocidos caen al valor crudo.
func (l StorageLocation) Label() string {
	if s, ok := locationLabels[l]; ok {
		return s
	}
	return string(l)
}

// StorageLocations devuelve el dominio cerrado de ubicaciones en orden fijo
// (para selects de formularios).
func StorageLocations() []StorageLocation {
	return []StorageLocation{
		LocationRegalA1, LocationRegalA2, LocationRegalB1, LocationRegalB2,
		LocationHochregal1, LocationKuehllager, LocationAussenlager, LocationRetoure,
	}
}

// StockLevel posición de stock de un producto en una ubicación, registro de
// la app "Lagerbestand".
type StockLevel struct {
	RecordID  string
	CreatedAt string
	UpdatedAt string

	ProductRef    record.Ref // applookup → Produkte
	Location      StorageLocation
	OnHand        decimal.Decimal  // menge; ausente en el wire = 0
	Reserved      *decimal.Decimal // reserviert
	Available     *decimal.Decimal // verfuegbar; puede venir almacenado o ausente
	LastInventory string           // fecha ISO
	Notes         string
}

// EffectiveAvailable cantidad disponible con fallback uniforme: si verfuegbar
// no viene en el registro se usa la cantidad en mano. (La fuente original era
// inconsistente en este fallback; aquí se aplica siempre on-hand.)
func (s StockLevel) EffectiveAvailable() decimal.Decimal {
	if s.Available != nil {
		return *s.Available
	}
	return s.OnHand
}
