package scenariocache

import "sync"

// Manager hands out named caches. Every scenario opens its own cache and closes
// it when it ends, so no value leaks into the next scenario.
type Manager struct {
	prefix string
	mu     sync.Mutex
	caches map[string]*Cache
}

func NewManager(prefix string) *Manager {
	return &Manager{
		prefix: prefix,
		caches: make(map[string]*Cache),
	}
}

func (m *Manager) qualify(name string) string {
	if m.prefix == "" {
		return name
	}
	return m.prefix + "/" + name
}

// Open returns the cache called name, creating it if needed.
func (m *Manager) Open(name string) *Cache {
	m.mu.Lock()
	defer m.mu.Unlock()
	qualified := m.qualify(name)
	if c, ok := m.caches[qualified]; ok {
		return c
	}
	c := newCache(qualified)
	m.caches[qualified] = c
	return c
}

// Close empties and forgets the cache called name.
func (m *Manager) Close(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qualified := m.qualify(name)
	if c, ok := m.caches[qualified]; ok {
		c.clear()
		delete(m.caches, qualified)
	}
}

// Names returns the qualified names of the open caches.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.caches))
	for name := range m.caches {
		names = append(names, name)
	}
	return names
}
