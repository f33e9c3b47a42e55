// Package snapshot define la vista inmutable de las cinco colecciones
// LivingApps sobre la que trabaja todo el agregador.
//
// Un snapshot se construye completo tras una carga exitosa y se reemplaza
// entero tras una recarga; nunca se actualiza parcialmente. La resolución de
// referencias applookup se hace contra índices por record id construidos una
// vez aquí, en lugar de búsquedas lineales por consulta.
package snapshot

import (
	"time"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/record"
)

// Snapshot vista de solo lectura de las cinco colecciones más los índices
// de resolución. Los slices y mapas no deben mutarse después de New.
type Snapshot struct {
	Products      []entity.Product
	StockLevels   []entity.StockLevel
	Orders        []entity.Order
	GoodsReceipts []entity.GoodsReceipt
	Suppliers     []entity.Supplier

	LoadedAt time.Time

	productsByID  map[string]*entity.Product
	suppliersByID map[string]*entity.Supplier
	ordersByID    map[string]*entity.Order
}

// New construye el snapshot e indexa las colecciones referenciadas por
// applookup (productos, proveedores y órdenes).
func New(
	products []entity.Product,
	stockLevels []entity.StockLevel,
	orders []entity.Order,
	receipts []entity.GoodsReceipt,
	suppliers []entity.Supplier,
	loadedAt time.Time,
) *Snapshot {
	s := &Snapshot{
		Products:      products,
		StockLevels:   stockLevels,
		Orders:        orders,
		GoodsReceipts: receipts,
		Suppliers:     suppliers,
		LoadedAt:      loadedAt,
		productsByID:  make(map[string]*entity.Product, len(products)),
		suppliersByID: make(map[string]*entity.Supplier, len(suppliers)),
		ordersByID:    make(map[string]*entity.Order, len(orders)),
	}
	for i := range products {
		s.productsByID[products[i].RecordID] = &products[i]
	}
	for i := range suppliers {
		s.suppliersByID[suppliers[i].RecordID] = &suppliers[i]
	}
	for i := range orders {
		s.ordersByID[orders[i].RecordID] = &orders[i]
	}
	return s
}

// ProductByRef resuelve una referencia applookup contra el catálogo de
// productos. Devuelve nil para referencias vacías, malformadas o que apuntan
// a un registro inexistente; el caller muestra "desconocido", nunca falla.
func (s *Snapshot) ProductByRef(ref record.Ref) *entity.Product {
	id := ref.ID()
	if id == "" {
		return nil
	}
	return s.productsByID[id]
}

// SupplierByRef resuelve una referencia contra los proveedores; nil = desconocido.
func (s *Snapshot) SupplierByRef(ref record.Ref) *entity.Supplier {
	id := ref.ID()
	if id == "" {
		return nil
	}
	return s.suppliersByID[id]
}

// OrderByRef resuelve una referencia contra las órdenes; nil = desconocido.
func (s *Snapshot) OrderByRef(ref record.Ref) *entity.Order {
	id := ref.ID()
	if id == "" {
		return nil
	}
	return s.ordersByID[id]
}

// ProductByID resuelve por record id directo (ej. validación de formularios).
func (s *Snapshot) ProductByID(id string) *entity.Product {
	if id == "" {
		return nil
	}
	return s.productsByID[id]
}
