// Package session owns the client-side lifecycle of a per-entity collection
// synchronized with the store server. A Session is an explicit state
// machine (idle, loading-fetch, loading-mutate, ready, errored) with a
// subscription mechanism, decoupled from any UI framework: presentation
// code subscribes and renders from snapshots.
package session

import (
	"context"
	"errors"
	"sync"
)

// State identifies the session's position in its lifecycle.
type State int

const (
	// StateIdle is the initial state before the first fetch settles.
	StateIdle State = iota
	// StateLoadingFetch means a fetch-all call is in flight.
	StateLoadingFetch
	// StateLoadingMutate means a create/update/delete call is in flight.
	StateLoadingMutate
	// StateReady means the last operation succeeded and items are current.
	StateReady
	// StateErrored means the last operation failed; items are whatever the
	// last successful operation left behind.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingFetch:
		return "loading-fetch"
	case StateLoadingMutate:
		return "loading-mutate"
	case StateReady:
		return "ready"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

var (
	// ErrClosed is returned by operations invoked after Close.
	ErrClosed = errors.New("session is closed")
	// ErrUnsupported is returned when the session has no binding for the
	// requested operation, such as mutating a read-only collection.
	ErrUnsupported = errors.New("operation not supported by this session")
)

// Snapshot is the render-ready view of a session: the state triple plus the
// state machine position it derives from.
type Snapshot[T any] struct {
	State   State
	Items   []T
	Loading bool
	Err     string
}

// Funcs binds a session to its collection's service operations. IDOf
// extracts the record id used to reconcile update/delete results.
type Funcs[T any] struct {
	FetchAll func(ctx context.Context) ([]T, error)
	Create   func(ctx context.Context, item T) (T, error)
	Update   func(ctx context.Context, id int64, item T) (T, error)
	Delete   func(ctx context.Context, id int64) error
	IDOf     func(T) int64
}

// Session tracks the latest fetched items, loading flag and error message
// for one collection. Operations block until the underlying call resolves;
// overlapping calls on the same session are allowed and the session settles
// on whichever resolution lands last. Close tears the session down: late
// resolutions are dropped, never written.
type Session[T any] struct {
	mu      sync.Mutex
	funcs   Funcs[T]
	state   State
	items   []T
	err     string
	closed  bool
	subs    map[int]func(Snapshot[T])
	nextSub int
}

// New creates a session and triggers the initial fetch exactly once, in the
// background. Subsequent fetches only happen on explicit Refetch.
func New[T any](ctx context.Context, funcs Funcs[T]) *Session[T] {
	s := &Session[T]{
		funcs: funcs,
		state: StateIdle,
		items: []T{},
		subs:  make(map[int]func(Snapshot[T])),
	}
	go func() { _ = s.Refetch(ctx) }()
	return s
}

// Snapshot returns the current view of the session.
func (s *Session[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called on every settled transition, invokes
// it once with the current snapshot, and returns an unsubscribe func.
func (s *Session[T]) Subscribe(fn func(Snapshot[T])) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	snap := s.snapshotLocked()
	s.mu.Unlock()

	fn(snap)
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close tears the session down. In-flight calls are not aborted; their
// resolutions are silently discarded.
func (s *Session[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.subs = make(map[int]func(Snapshot[T]))
	s.mu.Unlock()
}

// Refetch replaces the items wholesale from the server, in server order.
func (s *Session[T]) Refetch(ctx context.Context) error {
	return s.FetchWith(ctx, s.funcs.FetchAll)
}

// FetchWith runs the fetch lifecycle with a custom loader, such as a
// filtered variant of the collection. The loaded items replace the session's
// items wholesale.
func (s *Session[T]) FetchWith(ctx context.Context, load func(ctx context.Context) ([]T, error)) error {
	if err := s.begin(StateLoadingFetch); err != nil {
		return err
	}
	items, err := load(ctx)
	s.settle(err, func() {
		s.items = items
		if items == nil {
			s.items = []T{}
		}
	})
	return err
}

// Create adds an item; on success the created item (with its server-assigned
// id) is appended to the session. On failure the error is both recorded in
// the session and returned, so callers can branch on the outcome.
func (s *Session[T]) Create(ctx context.Context, item T) (T, error) {
	var created T
	if s.funcs.Create == nil {
		return created, ErrUnsupported
	}
	if err := s.begin(StateLoadingMutate); err != nil {
		return created, err
	}
	created, err := s.funcs.Create(ctx, item)
	s.settle(err, func() {
		s.items = append(s.items, created)
	})
	return created, err
}

// Update replaces the item with the given id; on success the matching
// session item is swapped in place.
func (s *Session[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	var updated T
	if s.funcs.Update == nil {
		return updated, ErrUnsupported
	}
	if err := s.begin(StateLoadingMutate); err != nil {
		return updated, err
	}
	updated, err := s.funcs.Update(ctx, id, item)
	s.settle(err, func() {
		for i := range s.items {
			if s.funcs.IDOf(s.items[i]) == id {
				s.items[i] = updated
			}
		}
	})
	return updated, err
}

// Delete removes the item with the given id; on success the matching session
// item is dropped.
func (s *Session[T]) Delete(ctx context.Context, id int64) error {
	if s.funcs.Delete == nil {
		return ErrUnsupported
	}
	if err := s.begin(StateLoadingMutate); err != nil {
		return err
	}
	err := s.funcs.Delete(ctx, id)
	s.settle(err, func() {
		kept := s.items[:0:0]
		for _, item := range s.items {
			if s.funcs.IDOf(item) != id {
				kept = append(kept, item)
			}
		}
		s.items = kept
	})
	return err
}

// begin moves the session into a loading state and clears the error.
// Overlapping operations are deliberately not serialized; the session
// reflects whichever resolution lands last.
func (s *Session[T]) begin(loading State) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.state = loading
	s.err = ""
	snap := s.snapshotLocked()
	subs := s.subsLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return nil
}

// settle applies a resolution: on success apply mutates the items and the
// session becomes ready; on failure the items stay untouched and the error
// message is recorded. Resolutions arriving after Close are dropped.
func (s *Session[T]) settle(err error, apply func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state = StateErrored
		s.err = err.Error()
	} else {
		apply()
		s.state = StateReady
		s.err = ""
	}
	snap := s.snapshotLocked()
	subs := s.subsLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

func (s *Session[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Snapshot[T]{
		State:   s.state,
		Items:   items,
		Loading: s.state == StateLoadingFetch || s.state == StateLoadingMutate,
		Err:     s.err,
	}
}

func (s *Session[T]) subsLocked() []func(Snapshot[T]) {
	subs := make([]func(Snapshot[T]), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify[T any](subs []func(Snapshot[T]), snap Snapshot[T]) {
	for _, fn := range subs {
		fn(snap)
	}
}
