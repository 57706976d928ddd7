// Package catalog holds the normalized recipe collection and executes
// multi-facet search over it. The store exclusively owns the collection;
// the resolver and predicate packages are stateless tables it consults.
package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cookpedia/pantry/internal/metrics"
	"github.com/cookpedia/pantry/internal/resolver"
	"github.com/cookpedia/pantry/pkg/types"
)

// Journal is the append-only log of same-session creations. The store
// appends on PublishCreated and replays on Hydrate; this is the single
// fallback path for a just-created record, replacing any side cache.
type Journal interface {
	Append(r types.Recipe) error
	Recent() ([]types.Recipe, error)
}

// Store is the in-memory recipe catalog. Load and Insert are the only
// write paths; both replace rather than mutate records.
type Store struct {
	mu          sync.RWMutex
	recipes     []types.Recipe
	journal     Journal
	subscribers []*subscriber
}

type subscriber struct {
	fn func(types.Recipe)
}

// Option configures a Store.
type Option func(*Store)

// WithJournal attaches a creation journal to the store.
func WithJournal(j Journal) Option {
	return func(s *Store) { s.journal = j }
}

// NewStore creates an empty catalog store.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load normalizes every raw record and replaces the collection, preserving
// the source order. Records that fail normalization entirely are dropped
// and logged; the rest of the batch is still processed.
func (s *Store) Load(raws []types.RawEnvelope) {
	recipes := make([]types.Recipe, 0, len(raws))
	for _, raw := range raws {
		r, err := resolver.Normalize(raw)
		if err != nil {
			metrics.Default.RecordsDropped.Inc()
			slog.Warn("dropping malformed record from batch", "error", err)
			continue
		}
		recipes = append(recipes, r)
		metrics.Default.RecordsLoaded.Inc()
	}

	s.mu.Lock()
	s.recipes = recipes
	metrics.Default.CatalogSize.Set(float64(len(s.recipes)))
	s.mu.Unlock()
}

// Refresh fetches the full listing from the source and loads it. On a
// transport or parse failure the collection is left in its last-known
// state, so a transient failure does not blank an already-populated view.
// Cancellation is advisory: the check runs after the fetch returns, before
// any state is touched.
func (s *Store) Refresh(ctx context.Context, src types.Source) error {
	raws, err := src.ListPosts(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Load(raws)
	return nil
}

// Insert prepends a single normalized record. An existing record with the
// same ID is removed first, so a record arriving through both the live
// channel and journal hydration cannot duplicate.
func (s *Store) Insert(r types.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]types.Recipe, 0, len(s.recipes)+1)
	kept = append(kept, r)
	for _, existing := range s.recipes {
		if existing.ID != r.ID {
			kept = append(kept, existing)
		}
	}
	s.recipes = kept
	metrics.Default.CatalogSize.Set(float64(len(s.recipes)))
}

// PublishCreated records a same-session creation: the record is journaled,
// inserted, and broadcast to subscribers in registration order.
// Fire-and-forget; a journal failure is logged, not returned, because the
// record is already live in the catalog.
func (s *Store) PublishCreated(r types.Recipe) {
	if s.journal != nil {
		if err := s.journal.Append(r); err != nil {
			slog.Error("journal append failed", "id", r.ID, "error", err)
		}
	}
	s.Insert(r)

	s.mu.RLock()
	subs := make([]*subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	// Delivery walks a snapshot: a subscriber that unregisters during its
	// own callback still receives the in-flight event.
	for _, sub := range subs {
		sub.fn(r)
	}
}

// Subscribe registers fn for creation events. The returned function
// unregisters it; calling it more than once is harmless.
func (s *Store) Subscribe(fn func(types.Recipe)) (unsubscribe func()) {
	sub := &subscriber{fn: fn}

	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, candidate := range s.subscribers {
			if candidate == sub {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Hydrate replays the creation journal through Insert, newest entry ending
// up at the front. Called once at startup so a record created while no
// listing view was mounted still appears.
func (s *Store) Hydrate() error {
	if s.journal == nil {
		return nil
	}
	recent, err := s.journal.Recent()
	if err != nil {
		return err
	}
	// Recent returns newest first; insert oldest first so order holds.
	for i := len(recent) - 1; i >= 0; i-- {
		s.Insert(recent[i])
	}
	return nil
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (types.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return types.Recipe{}, types.ErrNotFound
}

// Len reports the number of records in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// All returns a copy of the collection in catalog order.
func (s *Store) All() []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}
