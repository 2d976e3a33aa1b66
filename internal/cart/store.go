package cart

import (
	"context"
	"sync"

	"github.com/nataliebakery/storefront/pkg/logger"
	"github.com/nataliebakery/storefront/pkg/metrics"
)

// Store owns the per-session cart state. Mutations are synchronous and
// atomic over the in-memory representation; every mutation is followed by a
// best-effort write to the storage port. A failed write is logged and
// swallowed — the in-memory cart stays authoritative for the session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Lines

	storage Storage
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
}

// NewStore builds a cart store over the given storage port.
func NewStore(storage Storage, logg *logger.Logger, m *metrics.StorefrontMetrics) *Store {
	return &Store{
		sessions: make(map[string]Lines),
		storage:  storage,
		logg:     logg,
		metrics:  m,
	}
}

// AddItem merges into an existing line with the same identity or appends a
// new line, and returns the resulting cart.
func (s *Store) AddItem(ctx context.Context, sessionID string, snap Snapshot, quantity int, selected map[string]string) Lines {
	s.ensureLoaded(ctx, sessionID)

	s.mu.Lock()
	lines := s.sessions[sessionID].Add(snap, quantity, selected)
	s.sessions[sessionID] = lines
	s.mu.Unlock()

	s.metrics.IncCartOp("add_item")
	s.persist(ctx, sessionID, lines)
	return lines
}

// UpdateQuantity clamps and applies a new quantity for the line. Unknown
// line ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) Lines {
	s.ensureLoaded(ctx, sessionID)

	s.mu.Lock()
	lines := s.sessions[sessionID].UpdateQuantity(lineID, quantity)
	s.sessions[sessionID] = lines
	s.mu.Unlock()

	s.metrics.IncCartOp("update_quantity")
	s.persist(ctx, sessionID, lines)
	return lines
}

// RemoveItem drops the line if present.
func (s *Store) RemoveItem(ctx context.Context, sessionID, lineID string) Lines {
	s.ensureLoaded(ctx, sessionID)

	s.mu.Lock()
	lines := s.sessions[sessionID].Remove(lineID)
	s.sessions[sessionID] = lines
	s.mu.Unlock()

	s.metrics.IncCartOp("remove_item")
	s.persist(ctx, sessionID, lines)
	return lines
}

// ClearCart empties the session's cart and deletes the persisted copy.
func (s *Store) ClearCart(ctx context.Context, sessionID string) {
	s.mu.Lock()
	s.sessions[sessionID] = Lines{}
	s.mu.Unlock()

	s.metrics.IncCartOp("clear_cart")
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, sessionID); err != nil {
		s.warnPersist(ctx, sessionID, err)
	}
}

// Lines returns the current cart for the session, loading the persisted copy
// on first access.
func (s *Store) Lines(ctx context.Context, sessionID string) Lines {
	s.ensureLoaded(ctx, sessionID)

	s.mu.RLock()
	lines := s.sessions[sessionID]
	s.mu.RUnlock()

	copied := make(Lines, len(lines))
	copy(copied, lines)
	return copied
}

// TotalPrice recomputes the session total on every call.
func (s *Store) TotalPrice(ctx context.Context, sessionID string) float64 {
	return s.Lines(ctx, sessionID).TotalPrice()
}

// ensureLoaded restores the session from storage on first access. The
// restore runs outside the store lock so one slow read cannot stall other
// sessions; a mutation racing the restore wins the double-check.
func (s *Store) ensureLoaded(ctx context.Context, sessionID string) {
	s.mu.RLock()
	_, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return
	}

	loaded := s.restore(ctx, sessionID)

	s.mu.Lock()
	if _, ok := s.sessions[sessionID]; !ok {
		s.sessions[sessionID] = loaded
	}
	s.mu.Unlock()
}

func (s *Store) restore(ctx context.Context, sessionID string) Lines {
	if s.storage == nil {
		return Lines{}
	}
	lines, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		if s.logg != nil {
			lctx := s.logg.WithSessionID(ctx, sessionID)
			s.logg.Warn(lctx, "cart restore failed, starting empty")
		}
		return Lines{}
	}
	if lines == nil {
		lines = Lines{}
	}
	return lines
}

func (s *Store) persist(ctx context.Context, sessionID string, lines Lines) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(ctx, sessionID, lines); err != nil {
		s.warnPersist(ctx, sessionID, err)
	}
}

func (s *Store) warnPersist(ctx context.Context, sessionID string, err error) {
	if s.logg == nil {
		return
	}
	lctx := s.logg.WithSessionID(ctx, sessionID)
	lctx = s.logg.WithField(lctx, "error", err.Error())
	s.logg.Warn(lctx, "cart persistence write failed")
}
