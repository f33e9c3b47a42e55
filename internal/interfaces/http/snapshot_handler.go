package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lagerhub/internal/application/dto"
	"github.com/jhoicas/lagerhub/internal/application/snapshot"
)

// SnapshotHandler expone el ciclo de vida del snapshot: recarga manual
// y estado para diagnóstico.
type SnapshotHandler struct {
	svc *snapshot.Service
}

// NewSnapshotHandler construye el handler de snapshot.
func NewSnapshotHandler(svc *snapshot.Service) *SnapshotHandler {
	return &SnapshotHandler{svc: svc}
}

// Refresh recarga las cinco colecciones desde LivingApps (todo o nada).
// POST /api/snapshot/refresh
func (h *SnapshotHandler) Refresh(c *fiber.Ctx) error {
	if _, err := h.svc.Refresh(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStatusDTO(h.svc.Status()))
}

// Status devuelve el estado del snapshot en memoria.
// GET /api/snapshot/status
func (h *SnapshotHandler) Status(c *fiber.Ctx) error {
	return c.JSON(toStatusDTO(h.svc.Status()))
}

func toStatusDTO(st snapshot.Status) dto.SnapshotStatusDTO {
	out := dto.SnapshotStatusDTO{
		Loaded:        st.Loaded,
		LastError:     st.LastError,
		Products:      st.Products,
		StockLevels:   st.StockLevels,
		Orders:        st.Orders,
		GoodsReceipts: st.GoodsReceipts,
		Suppliers:     st.Suppliers,
	}
	if !st.LoadedAt.IsZero() {
		out.LoadedAt = st.LoadedAt.Format(time.RFC3339)
	}
	if !st.LastAttempt.IsZero() {
		out.LastAttempt = st.LastAttempt.Format(time.RFC3339)
	}
	return out
}
