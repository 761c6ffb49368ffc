package storagefakes

import (
	"sync"

	"github.com/abimaelfv/titulacion-cli/session"
)

var _ session.Storage = (*Memory)(nil)

// Memory is an in-memory session storage for tests.
type Memory struct {
	mu      sync.Mutex
	current session.Session
	found   bool

	SaveCalls  int
	ClearCalls int
	SaveErr    error
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load() (session.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.found, nil
}

func (m *Memory) Save(s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	m.current = s
	m.found = true
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	m.current = session.Session{}
	m.found = false
	return nil
}
