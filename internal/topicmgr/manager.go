package topicmgr

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Manager holds the registered topics.
type Manager struct {
	mu        sync.RWMutex
	entries   map[string]Entry
	validator *Validator
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		entries:   make(map[string]Entry),
		validator: NewValidator(),
	}
}

// Register validates and adds a topic. Registering a name twice fails.
func (m *Manager) Register(topic Topic) error {
	if err := m.validator.ValidateDefinition(topic); err != nil {
		name, module := "", ""
		if topic != nil {
			name, module = topic.Name(), topic.Module()
		}
		return &TopicError{
			Type:    ErrorValidationFailed,
			Topic:   name,
			Module:  module,
			Message: "topic validation failed",
			Cause:   err,
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[topic.Name()]; exists {
		return &TopicError{
			Type:    ErrorDuplicateRegistration,
			Topic:   topic.Name(),
			Module:  topic.Module(),
			Message: fmt.Sprintf("topic already registered: %s", topic.Name()),
		}
	}
	m.entries[topic.Name()] = Entry{Topic: topic, RegisteredAt: time.Now()}
	return nil
}

// MustRegister registers a topic and panics on error. Meant for package-level
// topic definitions.
func (m *Manager) MustRegister(topic Topic) Topic {
	if err := m.Register(topic); err != nil {
		panic(fmt.Sprintf("failed to register topic %s: %v", topic.Name(), err))
	}
	return topic
}

// Get looks a topic up by name.
func (m *Manager) Get(name string) (Topic, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[name]
	if !ok {
		return nil, false
	}
	return entry.Topic, true
}

// List returns every topic sorted by name.
func (m *Manager) List() []Topic {
	return m.filter(func(Topic) bool { return true })
}

// ListByModule returns the topics owned by module.
func (m *Manager) ListByModule(module string) []Topic {
	return m.filter(func(t Topic) bool { return t.Module() == module })
}

// ListByScope returns the topics of one scope.
func (m *Manager) ListByScope(scope TopicScope) []Topic {
	return m.filter(func(t Topic) bool { return t.Scope() == scope })
}

// ListByPrefix returns the topics whose name starts with prefix.
func (m *Manager) ListByPrefix(prefix string) []Topic {
	return m.filter(func(t Topic) bool { return strings.HasPrefix(t.Name(), prefix) })
}

// Count returns the number of registered topics.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Reset removes every topic. Used by tests.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]Entry)
}

func (m *Manager) filter(keep func(Topic) bool) []Topic {
	m.mu.RLock()
	defer m.mu.RUnlock()

	topics := make([]Topic, 0, len(m.entries))
	for _, entry := range m.entries {
		if keep(entry.Topic) {
			topics = append(topics, entry.Topic)
		}
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name() < topics[j].Name() })
	return topics
}

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// Default returns the process-wide manager used by package-level topic definitions.
func Default() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}
