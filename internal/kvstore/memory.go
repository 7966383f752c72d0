package kvstore

import "sync"

// MemoryStore is an in-memory Store used by tests and as a last-resort
// fallback when the durable store cannot be opened.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string

	// FailWrites makes every Set/SetMany return err for testing the
	// availability-over-durability path.
	FailWrites error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = value
	return nil
}

func (m *MemoryStore) SetMany(pairs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	for key, value := range pairs {
		m.data[key] = value
	}
	return nil
}

func (m *MemoryStore) Close() error { return nil }
