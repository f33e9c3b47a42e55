package entity

import "github.com/shopspring/decimal"

// Category categoría de producto (dominio cerrado en LivingApps).
// Valores desconocidos no rompen nada: Label cae al valor crudo.
type Category string

const (
	CategoryElektronik   Category = "elektronik"
	CategoryLebensmittel Category = "lebensmittel"
	CategoryKleidung     Category = "kleidung"
	CategoryMoebel       Category = "moebel"
	CategoryWerkzeuge    Category = "werkzeuge"
	CategoryBuero        Category = "buero"
	CategorySpielwaren   Category = "spielwaren"
	CategorySonstiges    Category = "sonstiges"
)

var categoryLabels = map[Category]string{
	CategoryElektronik:   "Elektronik",
	CategoryLebensmittel: "Lebensmittel",
	CategoryKleidung:     "Kleidung",
	CategoryMoebel:       "Möbel",
	CategoryWerkzeuge:    "Werkzeuge",
	CategoryBuero:        "Bürobedarf",
	CategorySpielwaren:   "Spielwaren",
	CategorySonstiges:    "Sonstiges",
}

// Label devuelve la etiqueta de presentación; para valores fuera del dominio
// cerrado devuelve el valor crudo.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ActiveState estado de un producto en el catálogo.
type ActiveState string

const (
	ActiveStateAktiv      ActiveState = "aktiv"
	ActiveStateInaktiv    ActiveState = "inaktiv"
	ActiveStateAuslaufend ActiveState = "auslaufend"
)

// Product es un producto del catálogo LivingApps, snapshot inmutable de un
// registro de la app "Produkte". Referenciado por StockLevel y GoodsReceipt
// vía applookup.
//
// Los campos numéricos opcionales son punteros: en LivingApps "ausente" y
// "cero" son cosas distintas y el agregador depende de esa distinción
// (ej. un producto sin mindestbestand nunca es crítico).
type Product struct {
	RecordID  string
	CreatedAt string // timestamp ISO tal como lo entrega el API
	UpdatedAt string

	Name          string
	ArticleNumber string
	Description   string
	Category      Category
	PurchasePrice *decimal.Decimal // einkaufspreis; nil = sin precio, contribuye 0 al valor
	SalePrice     *decimal.Decimal
	MinStock      *decimal.Decimal // mindestbestand; nil = sin umbral definido
	Unit          string
	Barcode       string
	Active        ActiveState
}

// DisplayName nombre para listados: produktname, si no artikelnummer,
// si no un placeholder.
func (p Product) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.ArticleNumber != "" {
		return p.ArticleNumber
	}
	return "Unbenannt"
}
