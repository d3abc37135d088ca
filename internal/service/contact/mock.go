package contact

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MockRepository implements Repository in memory for unit tests.
type MockRepository struct {
	mu       sync.RWMutex
	contacts map[int64]*Contact
	nextID   int64

	// FailWith, when set, makes every operation return this error.
	FailWith error
}

// NewMockRepository creates an empty in-memory repository.
func NewMockRepository() *MockRepository {
	return &MockRepository{
		contacts: make(map[int64]*Contact),
		nextID:   1,
	}
}

func (m *MockRepository) FindByID(_ context.Context, id int64) (*Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	c, exists := m.contacts[id]
	if !exists {
		return nil, ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (m *MockRepository) FindPage(_ context.Context, offset, limit int) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	ids := make([]int64, 0, len(m.contacts))
	for id := range m.contacts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	page := &Page{Contacts: []Contact{}, Total: int64(len(ids))}
	// A negative offset addresses no window; report it empty.
	if offset < 0 {
		return page, nil
	}
	for i := offset; i < len(ids) && len(page.Contacts) < limit; i++ {
		page.Contacts = append(page.Contacts, *m.contacts[ids[i]])
	}
	return page, nil
}

func (m *MockRepository) Create(_ context.Context, params CreateParams) (*Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	now := time.Now().UTC()
	c := &Contact{
		ID:        m.nextID,
		Name:      params.Name,
		Phone:     params.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.contacts[c.ID] = c
	m.nextID++

	clone := *c
	return &clone, nil
}

func (m *MockRepository) Update(_ context.Context, id int64, params UpdateParams) (*Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	c, exists := m.contacts[id]
	if !exists {
		return nil, ErrNotFound
	}

	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.Phone != nil {
		c.Phone = *params.Phone
	}
	c.UpdatedAt = time.Now().UTC()

	clone := *c
	return &clone, nil
}

func (m *MockRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	if _, exists := m.contacts[id]; !exists {
		return ErrNotFound
	}
	delete(m.contacts, id)
	return nil
}

// Clear removes all contacts and resets the ID sequence.
func (m *MockRepository) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = make(map[int64]*Contact)
	m.nextID = 1
}

// Compile-time interface check
var _ Repository = (*MockRepository)(nil)
