package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lagerhub/internal/application/usecase"
)

// CatalogHandler maneja los listados de referencia para formularios.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts devuelve los productos para selects.
// GET /api/catalog/products
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	items, err := h.uc.ListProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// ListSuppliers devuelve los proveedores para selects.
// GET /api/catalog/suppliers
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	items, err := h.uc.ListSuppliers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// ListOpenOrders devuelve las órdenes abiertas para vincular entradas.
// GET /api/catalog/orders
func (h *CatalogHandler) ListOpenOrders(c *fiber.Ctx) error {
	items, err := h.uc.ListOpenOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// FormOptions devuelve los dominios cerrados (ubicaciones, resultados
// de calidad). GET /api/catalog/form-options
func (h *CatalogHandler) FormOptions(c *fiber.Ctx) error {
	return c.JSON(h.uc.FormOptions())
}
