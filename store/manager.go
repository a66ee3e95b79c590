package store

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Manager hands out one Container per guest session, hydrating it from
// the session's directory on first use. Containers are single-threaded,
// so the manager serializes all access through its lock.
type Manager struct {
	mu       sync.Mutex
	dir      string
	sessions map[string]*Container
}

func NewManager(dir string) *Manager {
	return &Manager{
		dir:      dir,
		sessions: make(map[string]*Container),
	}
}

// With runs fn against the session's container while holding the lock.
func (m *Manager) With(guestID string, fn func(*Container)) error {
	if !validGuestID(guestID) {
		return fmt.Errorf("invalid guest id %q", guestID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	container, ok := m.sessions[guestID]
	if !ok {
		kv, err := NewFileStore(filepath.Join(m.dir, guestID))
		if err != nil {
			return fmt.Errorf("failed to open session storage: %w", err)
		}
		container = NewContainer(kv)
		m.sessions[guestID] = container
	}
	fn(container)
	return nil
}

// validGuestID keeps session ids safe to use as directory names.
func validGuestID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
