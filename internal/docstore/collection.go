package docstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection is a typed view over one collection of a Store.
type Collection[T any] struct {
	store Store
	name  string
}

func NewCollection[T any](store Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) Insert(ctx context.Context, id string, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", c.name, err)
	}
	return c.store.Insert(ctx, c.name, id, data)
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var doc T
	data, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to decode %s document: %w", c.name, err)
	}
	return doc, nil
}

func (c *Collection[T]) Find(ctx context.Context, filter Filter) ([]T, error) {
	rows, err := c.store.Find(ctx, c.name, filter)
	if err != nil {
		return nil, err
	}
	docs := make([]T, 0, len(rows))
	for _, data := range rows {
		var doc T
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", c.name, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Update loads the document, lets fn modify it in place and stores the result
// atomically. An error from fn is returned unchanged.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(doc *T) error) (T, error) {
	var updated T
	_, err := c.store.Update(ctx, c.name, id, func(data []byte) ([]byte, error) {
		var doc T
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", c.name, err)
		}
		if err := fn(&doc); err != nil {
			return nil, err
		}
		next, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s document: %w", c.name, err)
		}
		updated = doc
		return next, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}
