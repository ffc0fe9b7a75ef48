package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	bookingerrors "tourvis/internal/booking/errors"
	"tourvis/internal/booking/validator"
	"tourvis/internal/booking/wizard"
	"tourvis/pkg/logger"
	"tourvis/pkg/model"
)

const cleanupInterval = 1 * time.Minute

// Manager owns every live booking session. Sessions expire on a fixed TTL
// from creation; an abandoned flow is garbage, not state worth keeping.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	rules    *validator.StepValidator
	ttl      time.Duration
	stopCh   chan struct{}
	logger   *logger.Logger
}

func NewManager(rules *validator.StepValidator, ttl time.Duration, log *logger.Logger) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		rules:    rules,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
		logger:   log,
	}

	go m.cleanup()

	log.Info("Booking session manager initialized", "ttl", ttl.String())

	return m
}

// Create opens a new session with a fresh wizard pinned to the given tour
// context.
func (m *Manager) Create(tour model.TourContext) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Tour:      tour,
		wizard:    wizard.New(m.rules),
		createdAt: time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Debug("Booking session created", "session_id", s.ID, "tour", tour.Tour)

	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, exists := m.sessions[id]
	m.mu.RUnlock()

	if !exists {
		return nil, bookingerrors.ErrSessionNotFound
	}

	if s.expired(m.ttl, time.Now()) {
		m.Close(id)
		return nil, bookingerrors.ErrSessionNotFound
	}

	return s, nil
}

// Close marks the session closed and forgets it. Closing an unknown id is a
// no-op so disposal can race expiry safely.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, exists := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if exists {
		s.close()
		m.logger.Debug("Booking session closed", "session_id", id)
	}
}

func (m *Manager) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()

			m.mu.Lock()
			var expired []*Session
			for id, s := range m.sessions {
				if s.expired(m.ttl, now) {
					expired = append(expired, s)
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()

			for _, s := range expired {
				s.close()
			}
			if len(expired) > 0 {
				m.logger.Info("Expired booking sessions removed", "count", len(expired))
			}
		case <-m.stopCh:
			return
		}
	}
}

func (m *Manager) Stop() {
	close(m.stopCh)
}
