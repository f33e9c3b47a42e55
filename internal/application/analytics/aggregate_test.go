package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lagerhub/internal/application/analytics"
	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/record"
	domsnapshot "github.com/jhoicas/lagerhub/internal/domain/snapshot"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	idProductA  = "aaaaaaaaaaaaaaaaaaaaaaa1"
	idProductB  = "aaaaaaaaaaaaaaaaaaaaaaa2"
	idProductC  = "aaaaaaaaaaaaaaaaaaaaaaa3"
	idSupplierX = "bbbbbbbbbbbbbbbbbbbbbbb1"
	idSupplierY = "bbbbbbbbbbbbbbbbbbbbbbb2"
	idUnknown   = "ffffffffffffffffffffffff"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// refTo construye una referencia applookup como la entrega LivingApps:
// URL completa terminada en el record id.
func refTo(id string) record.Ref {
	return record.Ref("https://my.living-apps.de/rest/apps/xyz/records/" + id)
}

func buildSnapshot(
	products []entity.Product,
	stocks []entity.StockLevel,
	orders []entity.Order,
	receipts []entity.GoodsReceipt,
	suppliers []entity.Supplier,
) *domsnapshot.Snapshot {
	return domsnapshot.New(products, stocks, orders, receipts, suppliers, time.Now())
}

func fixtureProducts() []entity.Product {
	return []entity.Product{
		{RecordID: idProductA, Name: "Schraube M8", Category: entity.CategoryWerkzeuge,
			PurchasePrice: dp("2.50"), MinStock: dp("100")},
		{RecordID: idProductB, Name: "Gehäuse", Category: entity.CategoryElektronik,
			PurchasePrice: dp("40"), MinStock: dp("10")},
		{RecordID: idProductC, Name: "Etikett", Category: entity.CategoryBuero,
			PurchasePrice: nil, MinStock: nil}, // sin precio ni mínimo
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Valor total de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalInventoryValue_SumaSoloProductosResolubles(t *testing.T) {
	snap := buildSnapshot(fixtureProducts(), []entity.StockLevel{
		{RecordID: "s1", ProductRef: refTo(idProductA), OnHand: d("50")},  // 125
		{RecordID: "s2", ProductRef: refTo(idProductB), OnHand: d("3")},   // 120
		{RecordID: "s3", ProductRef: refTo(idProductC), OnHand: d("999")}, // sin precio → 0
		{RecordID: "s4", ProductRef: refTo(idUnknown), OnHand: d("10")},   // no resuelve → 0
		{RecordID: "s5", ProductRef: "", OnHand: d("10")},                 // ref vacía → 0
	}, nil, nil, nil)

	assert.True(t, analytics.TotalInventoryValue(snap).Equal(d("245")),
		"solo posiciones con producto resoluble y precio deben contribuir")
}

func TestTotalInventoryValue_SnapshotVacio(t *testing.T) {
	snap := buildSnapshot(nil, nil, nil, nil, nil)
	assert.True(t, analytics.TotalInventoryValue(snap).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes abiertas
// ──────────────────────────────────────────────────────────────────────────────

func TestOpenOrders_ExcluyeTerminalesIncluyeBorradores(t *testing.T) {
	snap := buildSnapshot(nil, nil, []entity.Order{
		{RecordID: "o1", CreatedAt: "2025-03-01T10:00", Status: entity.OrderStatusBestellt, TotalPrice: dp("100")},
		{RecordID: "o2", CreatedAt: "2025-03-02T10:00", Status: entity.OrderStatusGeliefert, TotalPrice: dp("999")},
		{RecordID: "o3", CreatedAt: "2025-03-03T10:00", Status: entity.OrderStatusStorniert, TotalPrice: dp("999")},
		{RecordID: "o4", CreatedAt: "2025-03-04T10:00", Status: entity.OrderStatusEntwurf, TotalPrice: dp("50")},
		{RecordID: "o5", CreatedAt: "2025-03-05T10:00", Status: entity.OrderStatusTeilweiseGeliefert, TotalPrice: nil},
	}, nil, nil)

	open := analytics.OpenOrders(snap)
	require.Len(t, open, 3, "gelieferte y stornierte quedan fuera; entwurf cuenta como abierta")
	// más reciente primero
	assert.Equal(t, "o5", open[0].RecordID)
	assert.Equal(t, "o4", open[1].RecordID)
	assert.Equal(t, "o1", open[2].RecordID)

	// órdenes sin gesamtpreis contribuyen cero al valor
	assert.True(t, analytics.OpenOrderValue(open).Equal(d("150")))
}

func TestOpenOrders_DesempatePorRecordID(t *testing.T) {
	snap := buildSnapshot(nil, nil, []entity.Order{
		{RecordID: "o2", CreatedAt: "2025-03-01T10:00", Status: entity.OrderStatusBestellt},
		{RecordID: "o1", CreatedAt: "2025-03-01T10:00", Status: entity.OrderStatusBestellt},
	}, nil, nil)

	open := analytics.OpenOrders(snap)
	require.Len(t, open, 2)
	assert.Equal(t, "o1", open[0].RecordID)
	assert.Equal(t, "o2", open[1].RecordID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas del día
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptsOn_IgualdadLiteralDeFecha(t *testing.T) {
	snap := buildSnapshot(nil, nil, nil, []entity.GoodsReceipt{
		{RecordID: "r1", DeliveryDate: "2025-03-14"},
		{RecordID: "r2", DeliveryDate: "2025-03-14T09:30"}, // fecha-hora: cuenta la parte de fecha
		{RecordID: "r3", DeliveryDate: "2025-03-13"},
		{RecordID: "r4", DeliveryDate: ""},
	}, nil)

	got := analytics.ReceiptsOn(snap, "2025-03-14")
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].RecordID)
	assert.Equal(t, "r2", got[1].RecordID)
}

func TestReceiptsOn_FechaVaciaNoCoincideConNada(t *testing.T) {
	snap := buildSnapshot(nil, nil, nil, []entity.GoodsReceipt{
		{RecordID: "r1", DeliveryDate: ""},
	}, nil)
	assert.Empty(t, analytics.ReceiptsOn(snap, ""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Lieferzeit media
// ──────────────────────────────────────────────────────────────────────────────

func TestAverageLeadTime_SoloProveedoresConDato(t *testing.T) {
	snap := buildSnapshot(nil, nil, nil, nil, []entity.Supplier{
		{RecordID: idSupplierX, LeadTimeDays: dp("3")},
		{RecordID: idSupplierY, LeadTimeDays: dp("7")},
		{RecordID: "sup3", LeadTimeDays: nil}, // sin dato: no entra en la media
	})
	assert.True(t, analytics.AverageLeadTime(snap).Equal(d("5")))
}

func TestAverageLeadTime_SinDatosEsCero(t *testing.T) {
	snap := buildSnapshot(nil, nil, nil, nil, []entity.Supplier{
		{RecordID: idSupplierX, LeadTimeDays: nil},
	})
	assert.True(t, analytics.AverageLeadTime(snap).IsZero(),
		"sin lieferzeit declarada la media es cero, nunca división por cero")

	empty := buildSnapshot(nil, nil, nil, nil, nil)
	assert.True(t, analytics.AverageLeadTime(empty).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock crítico
// ──────────────────────────────────────────────────────────────────────────────

func TestBelowMinimum_ReglaEstricta(t *testing.T) {
	snap := buildSnapshot(fixtureProducts(), []entity.StockLevel{
		// disponible 95 < min 100 → crítica, faltante 5
		{RecordID: "s1", ProductRef: refTo(idProductA), OnHand: d("95")},
		// disponible == min → NO crítica (estrictamente menor)
		{RecordID: "s2", ProductRef: refTo(idProductB), OnHand: d("10")},
		// producto sin mindestbestand → nunca crítica
		{RecordID: "s3", ProductRef: refTo(idProductC), OnHand: d("0")},
		// referencia no resoluble → fuera
		{RecordID: "s4", ProductRef: refTo(idUnknown), OnHand: d("0")},
	}, nil, nil, nil)

	got := analytics.BelowMinimum(snap)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].Stock.RecordID)
	assert.True(t, got[0].Shortfall.Equal(d("5")))
}

func TestBelowMinimum_VerfuegbarTienePrioridadSobreMenge(t *testing.T) {
	snap := buildSnapshot(fixtureProducts(), []entity.StockLevel{
		// en mano 200 pero disponible 90 → crítica por el disponible
		{RecordID: "s1", ProductRef: refTo(idProductA), OnHand: d("200"), Available: dp("90")},
		// en mano 80, disponible no declarado → fallback a menge, crítica
		{RecordID: "s2", ProductRef: refTo(idProductA), OnHand: d("80")},
	}, nil, nil, nil)

	got := analytics.BelowMinimum(snap)
	require.Len(t, got, 2)
	// orden por faltante descendente: s2 (20) antes que s1 (10)
	assert.Equal(t, "s2", got[0].Stock.RecordID)
	assert.True(t, got[0].Shortfall.Equal(d("20")))
	assert.Equal(t, "s1", got[1].Stock.RecordID)
	assert.True(t, got[1].Shortfall.Equal(d("10")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrupaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestGroupByCategory_ParticionYSumas(t *testing.T) {
	stocks := []entity.StockLevel{
		{RecordID: "s1", ProductRef: refTo(idProductA), OnHand: d("10")}, // rohstoffe, 25
		{RecordID: "s2", ProductRef: refTo(idProductA), OnHand: d("5")},  // rohstoffe, 12.5
		{RecordID: "s3", ProductRef: refTo(idProductB), OnHand: d("2")},  // fertigwaren, 80
		{RecordID: "s4", ProductRef: refTo(idUnknown), OnHand: d("50")},  // no resuelve: fuera
	}
	snap := buildSnapshot(fixtureProducts(), stocks, nil, nil, nil)

	groups := analytics.GroupByCategory(snap)
	require.Len(t, groups, 2)

	// valor descendente: elektronik (80) antes que werkzeuge (37.5)
	assert.Equal(t, string(entity.CategoryElektronik), groups[0].Key)
	assert.True(t, groups[0].Value.Equal(d("80")))
	assert.Equal(t, 1, groups[0].Count)

	assert.Equal(t, string(entity.CategoryWerkzeuge), groups[1].Key)
	assert.True(t, groups[1].Value.Equal(d("37.5")))
	assert.Equal(t, 2, groups[1].Count)
	assert.True(t, groups[1].Quantity.Equal(d("15")))

	// propiedad de partición: cada posición contribuyente aparece exactamente
	// una vez, así que los conteos suman las posiciones resolubles
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	assert.Equal(t, 3, total)
}

func TestGroupByLocation_SaltaUbicacionVaciaYNoResoluble(t *testing.T) {
	stocks := []entity.StockLevel{
		{RecordID: "s1", ProductRef: refTo(idProductA), OnHand: d("4"), Location: entity.LocationRegalA1},
		{RecordID: "s2", ProductRef: refTo(idProductB), OnHand: d("1"), Location: entity.LocationRegalA1},
		{RecordID: "s3", ProductRef: refTo(idProductA), OnHand: d("2"), Location: ""},
		{RecordID: "s4", ProductRef: refTo(idUnknown), OnHand: d("9"), Location: entity.LocationAussenlager},
	}
	snap := buildSnapshot(fixtureProducts(), stocks, nil, nil, nil)

	groups := analytics.GroupByLocation(snap)
	require.Len(t, groups, 1)
	assert.Equal(t, string(entity.LocationRegalA1), groups[0].Key)
	assert.Equal(t, 2, groups[0].Count)
	assert.True(t, groups[0].Value.Equal(d("50"))) // 4×2.50 + 1×40
}

// ──────────────────────────────────────────────────────────────────────────────
// Distribución de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderStatusDistribution_OrdenCanonicoMasDesconocidos(t *testing.T) {
	snap := buildSnapshot(nil, nil, []entity.Order{
		{RecordID: "o1", Status: entity.OrderStatusGeliefert},
		{RecordID: "o2", Status: entity.OrderStatusEntwurf},
		{RecordID: "o3", Status: entity.OrderStatusEntwurf},
		{RecordID: "o4", Status: entity.OrderStatus("zzz_custom")}, // fuera del dominio
	}, nil, nil)

	dist := analytics.OrderStatusDistribution(snap)
	require.Len(t, dist, 3)
	assert.Equal(t, entity.OrderStatusEntwurf, dist[0].Status)
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, entity.OrderStatusGeliefert, dist[1].Status)
	// el valor desconocido va al final, con su valor crudo como etiqueta
	assert.Equal(t, entity.OrderStatus("zzz_custom"), dist[2].Status)
	assert.Equal(t, "zzz_custom", dist[2].Label)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recencia
// ──────────────────────────────────────────────────────────────────────────────

func TestRecentReceipts_FallbackACreatedAtYTruncado(t *testing.T) {
	receipts := []entity.GoodsReceipt{
		{RecordID: "r1", CreatedAt: "2025-03-10T08:00", DeliveryDate: "2025-03-12"},
		{RecordID: "r2", CreatedAt: "2025-03-13T08:00", DeliveryDate: ""}, // usa createdat
		{RecordID: "r3", CreatedAt: "2025-03-01T08:00", DeliveryDate: "2025-03-14"},
	}
	snap := buildSnapshot(nil, nil, nil, receipts, nil)

	got := analytics.RecentReceipts(snap, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "r3", got[0].RecordID) // 2025-03-14
	assert.Equal(t, "r2", got[1].RecordID) // 2025-03-13 (createdat)

	// pedir más de lo que hay devuelve todo
	assert.Len(t, analytics.RecentReceipts(snap, 50), 3)
	assert.Empty(t, analytics.RecentReceipts(snap, 0))
}

func TestRecentReceipts_NoMutaElSnapshot(t *testing.T) {
	receipts := []entity.GoodsReceipt{
		{RecordID: "r1", DeliveryDate: "2025-03-01"},
		{RecordID: "r2", DeliveryDate: "2025-03-05"},
	}
	snap := buildSnapshot(nil, nil, nil, receipts, nil)
	_ = analytics.RecentReceipts(snap, 2)

	assert.Equal(t, "r1", snap.GoodsReceipts[0].RecordID,
		"el orden original de la colección no debe cambiar")
}
