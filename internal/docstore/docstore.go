// Package docstore is a minimal document store: named collections of JSON
// documents addressed by id, with equality-filtered queries and atomic
// read-modify-write updates. Callers own the document shape.
package docstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("document already exists")
)

// Filter matches documents whose top-level fields are equal to the given values.
type Filter map[string]any

// Mutator receives the current document and returns its replacement. Returning
// an error aborts the update and leaves the stored document untouched.
// A mutator must not call back into the store.
type Mutator func(doc []byte) ([]byte, error)

type Store interface {
	Insert(ctx context.Context, collection, id string, doc []byte) error
	Get(ctx context.Context, collection, id string) ([]byte, error)
	// Find returns matching documents in insertion order.
	Find(ctx context.Context, collection string, filter Filter) ([][]byte, error)
	// Update applies fn atomically: no other write to the same document can
	// interleave between the read handed to fn and the write of its result.
	Update(ctx context.Context, collection, id string, fn Mutator) ([]byte, error)
	Delete(ctx context.Context, collection, id string) error
}
