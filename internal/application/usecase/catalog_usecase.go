package usecase

import (
	"sort"
	"strings"

	"github.com/jhoicas/lagerhub/internal/application/dto"
	"github.com/jhoicas/lagerhub/internal/application/snapshot"
	"github.com/jhoicas/lagerhub/internal/domain/entity"
)

// CatalogUseCase expone los listados de referencia que consumen los
// formularios del dashboard: productos, proveedores, órdenes abiertas y
// los dominios cerrados (ubicaciones, resultados de calidad). Todo sale
// del snapshot en memoria; no hay llamadas al API por petición.
type CatalogUseCase struct {
	snapshots *snapshot.Service
}

// NewCatalogUseCase construye el caso de uso de catálogo.
func NewCatalogUseCase(snapshots *snapshot.Service) *CatalogUseCase {
	return &CatalogUseCase{snapshots: snapshots}
}

// ListProducts devuelve los productos ordenados por nombre de
// presentación (desempate por record id).
func (uc *CatalogUseCase) ListProducts() ([]dto.ProductOptionDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductOptionDTO, 0, len(snap.Products))
	for _, p := range snap.Products {
		out = append(out, dto.ProductOptionDTO{
			RecordID:      p.RecordID,
			Name:          p.DisplayName(),
			ArticleNumber: p.ArticleNumber,
			Category:      string(p.Category),
			CategoryLabel: p.Category.Label(),
			Active:        string(p.Active),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := strings.Compare(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].RecordID < out[j].RecordID
	})
	return out, nil
}

// ListSuppliers devuelve los proveedores ordenados por nombre.
func (uc *CatalogUseCase) ListSuppliers() ([]dto.SupplierOptionDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierOptionDTO, 0, len(snap.Suppliers))
	for _, s := range snap.Suppliers {
		out = append(out, dto.SupplierOptionDTO{
			RecordID:       s.RecordID,
			Name:           s.DisplayName(),
			SupplierNumber: s.SupplierNumber,
			Rating:         string(s.Rating),
			LeadTimeDays:   s.LeadTimeDays,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := strings.Compare(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].RecordID < out[j].RecordID
	})
	return out, nil
}

// ListOpenOrders devuelve las órdenes no terminales (para vincular una
// entrada de mercancía con su orden), más recientes primero.
func (uc *CatalogUseCase) ListOpenOrders() ([]dto.OrderOptionDTO, error) {
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	open := make([]entity.Order, 0, len(snap.Orders))
	for _, o := range snap.Orders {
		if !o.Status.IsTerminal() {
			open = append(open, o)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		if open[i].CreatedAt != open[j].CreatedAt {
			return open[i].CreatedAt > open[j].CreatedAt
		}
		return open[i].RecordID < open[j].RecordID
	})
	out := make([]dto.OrderOptionDTO, 0, len(open))
	for _, o := range open {
		out = append(out, dto.OrderOptionDTO{
			RecordID:    o.RecordID,
			OrderNumber: o.DisplayNumber(),
			Status:      string(o.Status),
			StatusLabel: o.Status.Label(),
		})
	}
	return out, nil
}

// FormOptions devuelve los dominios cerrados que consumen los selects
// del formulario de entrada de mercancía. No depende del snapshot.
func (uc *CatalogUseCase) FormOptions() dto.FormOptionsDTO {
	locations := entity.StorageLocations()
	qualities := entity.QualityResults()
	out := dto.FormOptionsDTO{
		Locations:      make([]dto.EnumOptionDTO, 0, len(locations)),
		QualityResults: make([]dto.EnumOptionDTO, 0, len(qualities)),
	}
	for _, l := range locations {
		out.Locations = append(out.Locations, dto.EnumOptionDTO{Value: string(l), Label: l.Label()})
	}
	for _, q := range qualities {
		out.QualityResults = append(out.QualityResults, dto.EnumOptionDTO{Value: string(q), Label: q.Label()})
	}
	return out
}
