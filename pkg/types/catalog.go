package types

import (
	"context"
	"errors"
)

// Catalog defines the read and write surface of the in-memory recipe
// collection. Load and Insert are the only write paths; Filter is pure and
// idempotent given an unchanged catalog.
type Catalog interface {
	// Load normalizes every raw record and replaces the collection,
	// preserving source order. Records that fail normalization entirely are
	// dropped and logged; the rest of the batch is still processed.
	Load(raws []RawEnvelope)

	// Insert prepends a single normalized record, replacing any existing
	// record with the same ID.
	Insert(r Recipe)

	// Refresh fetches the full listing from the source and loads it. On a
	// transport or parse failure the collection is left in its last-known
	// state and the error is returned.
	Refresh(ctx context.Context, src Source) error

	// Filter returns the records satisfying every criterion, in catalog
	// order. Empty criteria returns the full catalog.
	Filter(c Criteria) []Recipe

	// PublishCreated records a same-session creation: the record is
	// journaled, inserted, and broadcast to subscribers. Fire-and-forget;
	// the caller is responsible for normalizing before calling.
	PublishCreated(r Recipe)

	// Subscribe registers fn for creation events. Delivery is synchronous,
	// in registration order. The returned function unregisters fn.
	Subscribe(fn func(Recipe)) (unsubscribe func())

	// Get returns the record with the given ID, or ErrNotFound.
	Get(id string) (Recipe, error)

	// Len reports the number of records in the catalog.
	Len() int
}

// Source fetches raw records from the content service. Implementations own
// transport concerns (timeouts, retries); the catalog performs none.
type Source interface {
	// ListPosts returns the full listing. Transport and parse failures are
	// returned as errors; the caller leaves its state untouched.
	ListPosts(ctx context.Context) ([]RawEnvelope, error)

	// GetPost returns a single post by identifier.
	GetPost(ctx context.Context, id string) (RawEnvelope, error)
}

// ErrClosed is returned by stores and journals after Close.
var ErrClosed = errors.New("store is closed")
