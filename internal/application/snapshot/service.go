package snapshot

import (
	"context"
	"time"

	domsnapshot "github.com/jhoicas/lagerhub/internal/domain/snapshot"
	"github.com/jhoicas/lagerhub/pkg/logger"
)

// Service combina loader y store: carga inicial, recarga bajo demanda
// (acción de reintento del dashboard y recarga tras cada escritura exitosa)
// y recarga periódica opcional.
type Service struct {
	loader *Loader
	store  *Store
	log    *logger.Logger
}

// NewService construye el servicio.
func NewService(loader *Loader, store *Store, log *logger.Logger) *Service {
	return &Service{loader: loader, store: store, log: log}
}

// Refresh ejecuta una carga completa y reemplaza el snapshot si tuvo éxito.
// Si falla, conserva el snapshot anterior (si lo hay) y registra el error.
func (s *Service) Refresh(ctx context.Context) (*domsnapshot.Snapshot, error) {
	started := time.Now()
	snap, err := s.loader.Load(ctx)
	if err != nil {
		s.store.RecordFailure(err)
		s.log.Error().Err(err).Msg("recarga de snapshot fallida")
		return nil, err
	}
	s.store.Replace(snap)
	s.log.Info().
		Dur("elapsed", time.Since(started)).
		Int("products", len(snap.Products)).
		Int("stock_levels", len(snap.StockLevels)).
		Int("orders", len(snap.Orders)).
		Int("goods_receipts", len(snap.GoodsReceipts)).
		Int("suppliers", len(snap.Suppliers)).
		Msg("snapshot recargado")
	return snap, nil
}

// Current devuelve el snapshot vigente (o ErrSnapshotNotLoaded).
func (s *Service) Current() (*domsnapshot.Snapshot, error) {
	return s.store.Current()
}

// Status devuelve el estado del store.
func (s *Service) Status() Status {
	return s.store.Status()
}

// RunPeriodic recarga el snapshot cada interval hasta que el contexto se
// cancele. Pensado para lanzarse en una goroutine desde main; interval <= 0
// desactiva la recarga periódica.
func (s *Service) RunPeriodic(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				// el error ya quedó registrado en el store; el snapshot
				// anterior sigue sirviéndose
				continue
			}
		}
	}
}
