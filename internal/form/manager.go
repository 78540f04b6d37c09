package form

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

var (
	// ErrSessionNotFound is returned for unknown or closed session ids
	ErrSessionNotFound = errors.New("form session not found")
	// ErrTooManySessions is returned when the session limit is reached
	ErrTooManySessions = errors.New("too many open form sessions")
)

// Manager manages the lifecycle of form sessions
type Manager struct {
	evaluator   *calc.Evaluator
	maxSessions int
	logger      *slog.Logger

	mu    sync.RWMutex
	forms map[string]*Form
}

// NewManager creates a new session manager.
// A maxSessions of zero or less means no limit.
func NewManager(evaluator *calc.Evaluator, maxSessions int, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		evaluator:   evaluator,
		maxSessions: maxSessions,
		logger:      logger.With("component", "form.Manager"),
		forms:       make(map[string]*Form),
	}
}

// Open creates a new form and returns its session id
func (m *Manager) Open() (string, *Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.forms) >= m.maxSessions {
		return "", nil, errors.Wrapf(ErrTooManySessions, "limit is %d", m.maxSessions)
	}

	id := uuid.NewString()
	f := New(m.evaluator)
	m.forms[id] = f

	m.logger.Debug("form session opened", "session_id", id, "open_sessions", len(m.forms))
	return id, f, nil
}

// Get returns the form for a session id
func (m *Manager) Get(id string) (*Form, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.forms[id]
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "session %q", id)
	}
	return f, nil
}

// Close discards a session
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.forms[id]; !ok {
		return errors.Wrapf(ErrSessionNotFound, "session %q", id)
	}
	delete(m.forms, id)

	m.logger.Debug("form session closed", "session_id", id, "open_sessions", len(m.forms))
	return nil
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.forms)
}
