package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
)

type memCollection struct {
	docs  map[string][]byte
	order []string
}

// MemoryStore keeps documents in process memory. Used for local runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memCollection)}
}

func (m *MemoryStore) collection(name string) *memCollection {
	c, ok := m.collections[name]
	if !ok {
		c = &memCollection{docs: make(map[string][]byte)}
		m.collections[name] = c
	}
	return c
}

func (m *MemoryStore) Insert(_ context.Context, collection, id string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.collection(collection)
	if _, ok := c.docs[id]; ok {
		return ErrDuplicate
	}
	c.docs[id] = clone(doc)
	c.order = append(c.order, id)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, collection, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(doc), nil
}

func (m *MemoryStore) Find(_ context.Context, collection string, filter Filter) ([][]byte, error) {
	want, err := normalize(filter)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return [][]byte{}, nil
	}

	out := make([][]byte, 0)
	for _, id := range c.order {
		doc := c.docs[id]
		ok, err := matches(doc, want)
		if err != nil {
			return nil, fmt.Errorf("failed to match document %s: %w", id, err)
		}
		if ok {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

func (m *MemoryStore) Update(_ context.Context, collection, id string, fn Mutator) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}

	next, err := fn(clone(doc))
	if err != nil {
		return nil, err
	}
	c.docs[id] = clone(next)
	return clone(next), nil
}

func (m *MemoryStore) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.docs, id)
	for i, docID := range c.order {
		if docID == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// normalize passes filter values through JSON so they compare equal to
// decoded document fields (numbers become float64 and so on).
func normalize(filter Filter) (map[string]any, error) {
	if len(filter) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return out, nil
}

func matches(doc []byte, want map[string]any) (bool, error) {
	if len(want) == 0 {
		return true, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return false, err
	}
	for k, v := range want {
		if !reflect.DeepEqual(fields[k], v) {
			return false, nil
		}
	}
	return true, nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
