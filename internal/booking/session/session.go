// Package session hosts wizard instances server-side, one per booking flow.
// A session pins the tour context chosen on the product page and owns the
// wizard's lifecycle; all wizard access goes through the session lock.
package session

import (
	"sync"
	"time"

	bookingerrors "tourvis/internal/booking/errors"
	"tourvis/internal/booking/wizard"
	"tourvis/pkg/model"
)

type Session struct {
	ID   string
	Tour model.TourContext

	mu        sync.Mutex
	wizard    *wizard.Wizard
	closed    bool
	createdAt time.Time
}

// With runs fn with the session's wizard under the session lock. A closed
// session refuses further access instead of racing its own disposal.
func (s *Session) With(fn func(w *wizard.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return bookingerrors.ErrSessionClosed
	}
	return fn(s.wizard)
}

// Defer schedules fn after d. The timer always fires but the work is
// dropped when the session has been closed in the meantime; a flow that is
// gone must not receive late results.
func (s *Session) Defer(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()

		if closed {
			return
		}
		fn()
	})
}

func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.createdAt) > ttl
}
