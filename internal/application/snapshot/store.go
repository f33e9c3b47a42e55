package snapshot

import (
	"sync"
	"time"

	"github.com/jhoicas/lagerhub/internal/domain"
	domsnapshot "github.com/jhoicas/lagerhub/internal/domain/snapshot"
)

// Store guarda el snapshot vigente. El único recurso mutable compartido del
// servicio: se reemplaza entero tras una carga exitosa, nunca se parchea.
type Store struct {
	mu          sync.RWMutex
	current     *domsnapshot.Snapshot
	lastErr     error
	lastAttempt time.Time
}

// NewStore construye un store vacío (estado inicial: no cargado).
func NewStore() *Store { return &Store{} }

// Current devuelve el snapshot vigente, o ErrSnapshotNotLoaded si la carga
// inicial nunca tuvo éxito. Un snapshot viejo sigue siendo válido aunque el
// último reintento haya fallado.
func (s *Store) Current() (*domsnapshot.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, domain.ErrSnapshotNotLoaded
	}
	return s.current, nil
}

// Replace instala un snapshot nuevo y limpia el error de carga.
func (s *Store) Replace(snap *domsnapshot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snap
	s.lastErr = nil
	s.lastAttempt = time.Now()
}

// RecordFailure registra un intento de carga fallido sin tocar el snapshot
// vigente.
func (s *Store) RecordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	s.lastAttempt = time.Now()
}

// Status estado observable del store para diagnóstico.
type Status struct {
	Loaded      bool
	LoadedAt    time.Time
	LastAttempt time.Time
	LastError   string

	Products      int
	StockLevels   int
	Orders        int
	GoodsReceipts int
	Suppliers     int
}

// Status devuelve el estado actual (cargado/no, conteos y último error).
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{LastAttempt: s.lastAttempt}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	if s.current != nil {
		st.Loaded = true
		st.LoadedAt = s.current.LoadedAt
		st.Products = len(s.current.Products)
		st.StockLevels = len(s.current.StockLevels)
		st.Orders = len(s.current.Orders)
		st.GoodsReceipts = len(s.current.GoodsReceipts)
		st.Suppliers = len(s.current.Suppliers)
	}
	return st
}
