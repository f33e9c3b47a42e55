// Package repository define los puertos de acceso a las colecciones remotas
// LivingApps (DIP). Cada puerto es un fetch-all: el servicio trabaja sobre
// snapshots completos, no hay paginación ni consultas parciales.
package repository

import (
	"context"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
)

// ProductRepository puerto de lectura de la app "Produkte".
type ProductRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
}

// StockLevelRepository puerto de lectura de la app "Lagerbestand".
type StockLevelRepository interface {
	ListAll(ctx context.Context) ([]entity.StockLevel, error)
}

// OrderRepository puerto de lectura de la app "Bestellungen".
type OrderRepository interface {
	ListAll(ctx context.Context) ([]entity.Order, error)
}

// SupplierRepository puerto de lectura de la app "Lieferanten".
type SupplierRepository interface {
	ListAll(ctx context.Context) ([]entity.Supplier, error)
}

// GoodsReceiptRepository puerto de la app "Wareneingang"; es la única
// colección con escritura. Create devuelve el error crudo del servidor tal
// cual para que el caller lo muestre sin reintentar.
type GoodsReceiptRepository interface {
	ListAll(ctx context.Context) ([]entity.GoodsReceipt, error)
	Create(ctx context.Context, draft entity.GoodsReceiptDraft) (*entity.GoodsReceipt, error)
}
