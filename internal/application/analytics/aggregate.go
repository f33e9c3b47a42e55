// Package analytics implementa el motor de agregación del dashboard: KPIs
// escalares, series agrupadas para gráficas y listas rankeadas, todo derivado
// del snapshot de las cinco colecciones.
//
// Todas las funciones de este archivo son puras: reciben el snapshot como
// parámetro, no mutan las colecciones de entrada y con el mismo snapshot
// producen siempre el mismo resultado. Una referencia applookup que no
// resuelve nunca es un error: el registro se excluye o se etiqueta como
// desconocido según la operación.
package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
	domsnapshot "github.com/jhoicas/lagerhub/internal/domain/snapshot"
)

// ── KPIs escalares ────────────────────────────────────────────────────────────

// TotalInventoryValue suma cantidad en mano × precio de compra del producto
// resuelto sobre todas las posiciones de stock. Producto no resoluble o sin
// precio contribuye cero. Sin redondeo: eso es cosa de la capa de
// presentación.
func TotalInventoryValue(s *domsnapshot.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, sl := range s.StockLevels {
		p := s.ProductByRef(sl.ProductRef)
		if p == nil || p.PurchasePrice == nil {
			continue
		}
		total = total.Add(sl.OnHand.Mul(*p.PurchasePrice))
	}
	return total
}

// OpenOrders devuelve las órdenes cuyo estado no es terminal (ni entregada
// ni cancelada; los borradores cuentan como abiertas), ordenadas por fecha
// de creación descendente con desempate por record id para un resultado
// determinista.
func OpenOrders(s *domsnapshot.Snapshot) []entity.Order {
	var open []entity.Order
	for _, o := range s.Orders {
		if !o.Status.IsTerminal() {
			open = append(open, o)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		if open[i].CreatedAt != open[j].CreatedAt {
			return open[i].CreatedAt > open[j].CreatedAt
		}
		return open[i].RecordID < open[j].RecordID
	})
	return open
}

// OpenOrderValue suma gesamtpreis de las órdenes abiertas; órdenes sin
// precio total contribuyen cero.
func OpenOrderValue(orders []entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.TotalPrice != nil {
			total = total.Add(*o.TotalPrice)
		}
	}
	return total
}

// ReceiptsOn devuelve las entradas de mercancía cuya fecha de entrega cae en
// el día dado (formato ISO "2006-01-02"). La comparación es igualdad literal
// sobre la parte de fecha del string almacenado, no una comparación con zona
// horaria: coincide con lo que el usuario capturó.
func ReceiptsOn(s *domsnapshot.Snapshot, isoDate string) []entity.GoodsReceipt {
	var out []entity.GoodsReceipt
	for _, r := range s.GoodsReceipts {
		if datePart(r.DeliveryDate) == isoDate && isoDate != "" {
			out = append(out, r)
		}
	}
	return out
}

// datePart recorta un string ISO (fecha o fecha-hora) a su parte de fecha.
func datePart(iso string) string {
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		return iso[:i]
	}
	return iso
}

// AverageLeadTime media aritmética de la lieferzeit de los proveedores que
// la tienen definida. Cero si no hay proveedores o ninguno declara plazo:
// nunca divide por cero.
func AverageLeadTime(s *domsnapshot.Snapshot) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for _, sup := range s.Suppliers {
		if sup.LeadTimeDays == nil {
			continue
		}
		sum = sum.Add(*sup.LeadTimeDays)
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}

// ── Bestände críticos ─────────────────────────────────────────────────────────

// CriticalStock posición de stock por debajo del mínimo, con el producto ya
// resuelto y la cantidad faltante calculada.
type CriticalStock struct {
	Stock     entity.StockLevel
	Product   entity.Product
	Available decimal.Decimal // disponible con fallback a cantidad en mano
	MinStock  decimal.Decimal
	Shortfall decimal.Decimal // MinStock - Available
}

// BelowMinimum devuelve las posiciones cuyo producto resuelto tiene
// mindestbestand definido y disponible (con fallback a menge) estrictamente
// menor. Posiciones con referencia no resoluble quedan fuera: no se cuentan
// como críticas. Orden: faltante descendente, desempate por record id.
func BelowMinimum(s *domsnapshot.Snapshot) []CriticalStock {
	var out []CriticalStock
	for _, sl := range s.StockLevels {
		p := s.ProductByRef(sl.ProductRef)
		if p == nil || p.MinStock == nil {
			continue
		}
		available := sl.EffectiveAvailable()
		if available.GreaterThanOrEqual(*p.MinStock) {
			continue
		}
		out = append(out, CriticalStock{
			Stock:     sl,
			Product:   *p,
			Available: available,
			MinStock:  *p.MinStock,
			Shortfall: p.MinStock.Sub(available),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Shortfall.Equal(out[j].Shortfall) {
			return out[i].Shortfall.GreaterThan(out[j].Shortfall)
		}
		return out[i].Stock.RecordID < out[j].Stock.RecordID
	})
	return out
}

// ── Agrupaciones para gráficas ────────────────────────────────────────────────

// Group acumulador de una clave de agrupación (categoría o ubicación).
type Group struct {
	Key      string
	Label    string
	Count    int             // posiciones de stock que contribuyen
	Quantity decimal.Decimal // suma de cantidades en mano
	Value    decimal.Decimal // suma de menge × einkaufspreis
}

// GroupByCategory particiona las posiciones de stock por la categoría del
// producto resuelto. Se salta posiciones con producto no resoluble o sin
// categoría: cada registro contribuyente aporta exactamente a un grupo.
// Resultado ordenado por valor descendente (consumo directo de gráficas),
// desempate por etiqueta.
func GroupByCategory(s *domsnapshot.Snapshot) []Group {
	acc := make(map[string]*Group)
	for _, sl := range s.StockLevels {
		p := s.ProductByRef(sl.ProductRef)
		if p == nil || p.Category == "" {
			continue
		}
		value := decimal.Zero
		if p.PurchasePrice != nil {
			value = sl.OnHand.Mul(*p.PurchasePrice)
		}
		addToGroup(acc, string(p.Category), p.Category.Label(), sl.OnHand, value)
	}
	return sortedGroups(acc)
}

// GroupByLocation particiona las posiciones de stock por su ubicación de
// almacén. El valor sigue requiriendo producto resuelto (posición sin
// producto resoluble se excluye, igual que en el valor total).
func GroupByLocation(s *domsnapshot.Snapshot) []Group {
	acc := make(map[string]*Group)
	for _, sl := range s.StockLevels {
		if sl.Location == "" {
			continue
		}
		p := s.ProductByRef(sl.ProductRef)
		if p == nil {
			continue
		}
		value := decimal.Zero
		if p.PurchasePrice != nil {
			value = sl.OnHand.Mul(*p.PurchasePrice)
		}
		addToGroup(acc, string(sl.Location), sl.Location.Label(), sl.OnHand, value)
	}
	return sortedGroups(acc)
}

func addToGroup(acc map[string]*Group, key, label string, qty, value decimal.Decimal) {
	g, ok := acc[key]
	if !ok {
		g = &Group{Key: key, Label: label, Quantity: decimal.Zero, Value: decimal.Zero}
		acc[key] = g
	}
	g.Count++
	g.Quantity = g.Quantity.Add(qty)
	g.Value = g.Value.Add(value)
}

func sortedGroups(acc map[string]*Group) []Group {
	out := make([]Group, 0, len(acc))
	for _, g := range acc {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// ── Distribución de estados ───────────────────────────────────────────────────

// StatusCount conteo de órdenes por estado.
type StatusCount struct {
	Status entity.OrderStatus
	Label  string
	Count  int
}

// OrderStatusDistribution cuenta órdenes por estado. Los estados del dominio
// cerrado salen en orden canónico; valores fuera del dominio se anexan al
// final ordenados por valor crudo (no rompen, se muestran tal cual).
func OrderStatusDistribution(s *domsnapshot.Snapshot) []StatusCount {
	counts := make(map[entity.OrderStatus]int)
	for _, o := range s.Orders {
		counts[o.Status]++
	}

	canonical := []entity.OrderStatus{
		entity.OrderStatusEntwurf, entity.OrderStatusBestellt,
		entity.OrderStatusBestaetigt, entity.OrderStatusTeilweiseGeliefert,
		entity.OrderStatusGeliefert, entity.OrderStatusStorniert,
	}
	var out []StatusCount
	for _, st := range canonical {
		if n, ok := counts[st]; ok {
			out = append(out, StatusCount{Status: st, Label: st.Label(), Count: n})
			delete(counts, st)
		}
	}
	var rest []entity.OrderStatus
	for st := range counts {
		rest = append(rest, st)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, st := range rest {
		out = append(out, StatusCount{Status: st, Label: st.Label(), Count: counts[st]})
	}
	return out
}

// ── Lista por recencia ────────────────────────────────────────────────────────

// RecentReceipts devuelve las n entradas más recientes ordenadas por fecha
// de entrega con fallback al timestamp de creación, descendente. Orden
// estable para empates; devuelve min(n, total) elementos.
func RecentReceipts(s *domsnapshot.Snapshot, n int) []entity.GoodsReceipt {
	sorted := make([]entity.GoodsReceipt, len(s.GoodsReceipts))
	copy(sorted, s.GoodsReceipts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return receiptSortKey(sorted[i]) > receiptSortKey(sorted[j])
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// receiptSortKey fecha preferida de una entrada: lieferdatum y si falta, el
// createdat del registro. Los timestamps ISO ordenan lexicográficamente.
func receiptSortKey(r entity.GoodsReceipt) string {
	if r.DeliveryDate != "" {
		return r.DeliveryDate
	}
	return r.CreatedAt
}
