// Package snapshot contiene el ciclo de vida del snapshot en memoria: carga
// concurrente de las cinco colecciones, almacenamiento con reemplazo total y
// recarga bajo demanda. No hay caché parcial ni actualización incremental:
// o hay un snapshot completo o hay un estado de error con reintento.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/repository"
	domsnapshot "github.com/jhoicas/lagerhub/internal/domain/snapshot"
)

// Loader ejecuta el fetch-all de las cinco colecciones.
type Loader struct {
	products  repository.ProductRepository
	stocks    repository.StockLevelRepository
	orders    repository.OrderRepository
	receipts  repository.GoodsReceiptRepository
	suppliers repository.SupplierRepository
}

// NewLoader construye el loader con los cinco puertos de lectura.
func NewLoader(
	products repository.ProductRepository,
	stocks repository.StockLevelRepository,
	orders repository.OrderRepository,
	receipts repository.GoodsReceiptRepository,
	suppliers repository.SupplierRepository,
) *Loader {
	return &Loader{
		products:  products,
		stocks:    stocks,
		orders:    orders,
		receipts:  receipts,
		suppliers: suppliers,
	}
}

// Load lanza las cinco cargas en paralelo y las une. Todo-o-nada: si
// cualquiera falla, la carga completa falla y no se entrega snapshot
// parcial.
func (l *Loader) Load(ctx context.Context) (*domsnapshot.Snapshot, error) {
	type productsResult struct {
		items []entity.Product
		err   error
	}
	type stocksResult struct {
		items []entity.StockLevel
		err   error
	}
	type ordersResult struct {
		items []entity.Order
		err   error
	}
	type receiptsResult struct {
		items []entity.GoodsReceipt
		err   error
	}
	type suppliersResult struct {
		items []entity.Supplier
		err   error
	}

	productsCh := make(chan productsResult, 1)
	stocksCh := make(chan stocksResult, 1)
	ordersCh := make(chan ordersResult, 1)
	receiptsCh := make(chan receiptsResult, 1)
	suppliersCh := make(chan suppliersResult, 1)

	go func() {
		items, err := l.products.ListAll(ctx)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := l.stocks.ListAll(ctx)
		stocksCh <- stocksResult{items, err}
	}()
	go func() {
		items, err := l.orders.ListAll(ctx)
		ordersCh <- ordersResult{items, err}
	}()
	go func() {
		items, err := l.receipts.ListAll(ctx)
		receiptsCh <- receiptsResult{items, err}
	}()
	go func() {
		items, err := l.suppliers.ListAll(ctx)
		suppliersCh <- suppliersResult{items, err}
	}()

	products := <-productsCh
	stocks := <-stocksCh
	orders := <-ordersCh
	receipts := <-receiptsCh
	suppliers := <-suppliersCh

	if products.err != nil {
		return nil, fmt.Errorf("snapshot: productos: %w", products.err)
	}
	if stocks.err != nil {
		return nil, fmt.Errorf("snapshot: stock: %w", stocks.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("snapshot: órdenes: %w", orders.err)
	}
	if receipts.err != nil {
		return nil, fmt.Errorf("snapshot: entradas: %w", receipts.err)
	}
	if suppliers.err != nil {
		return nil, fmt.Errorf("snapshot: proveedores: %w", suppliers.err)
	}

	return domsnapshot.New(
		products.items, stocks.items, orders.items, receipts.items, suppliers.items,
		time.Now(),
	), nil
}
