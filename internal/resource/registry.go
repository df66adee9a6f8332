// Package resource keeps the native objects handed to the host behind opaque
// references. Every entry is reference counted and guarded by one exclusive lock
// that is held for the whole of a boundary call.
package resource

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"kbridge/internal/failure"
	"kbridge/internal/logging"
)

// Ref is the opaque token the host stores and passes back.
type Ref string

// Native is any object owned by a handle.
type Native interface {
	Close() error
}

type entry struct {
	ref   Ref
	kind  string
	value Native
	lock  *semaphore.Weighted
	refs  int64 // guarded by Registry.mu
}

// Hooks observe handle lifetimes.
type Hooks struct {
	Opened func(kind string)
	Closed func(kind string)
}

type Registry struct {
	hooks Hooks

	mu      sync.Mutex
	entries map[Ref]*entry
	closed  bool
}

func NewRegistry(h Hooks) *Registry {
	return &Registry{hooks: h, entries: make(map[Ref]*entry)}
}

// Register stores v under a fresh reference held once by the caller.
func (r *Registry) Register(kind string, v Native) (Ref, error) {
	e := &entry{
		ref:   Ref(uuid.NewString()),
		kind:  kind,
		value: v,
		lock:  semaphore.NewWeighted(1),
		refs:  1,
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		_ = v.Close()
		return "", failure.New(failure.Internal, "registry closed")
	}
	r.entries[e.ref] = e
	r.mu.Unlock()

	if r.hooks.Opened != nil {
		r.hooks.Opened(kind)
	}
	logging.L().Debug("handle opened", "handle", e.ref, "kind", kind)
	return e.ref, nil
}

// Retain adds a host reference.
func (r *Registry) Retain(ref Ref) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[ref]
	if !ok {
		return unknown(ref)
	}
	e.refs++
	return nil
}

// Release drops a host reference. The native object is closed once nothing holds
// the entry; closing runs in the background so Release never blocks on I/O.
func (r *Registry) Release(ref Ref) error {
	r.mu.Lock()
	e, ok := r.entries[ref]
	if !ok {
		r.mu.Unlock()
		return unknown(ref)
	}
	last := r.dropLocked(e)
	r.mu.Unlock()
	if last {
		go r.finalize(e)
	}
	return nil
}

// Len reports the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close finalizes every remaining handle synchronously.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	rest := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		rest = append(rest, e)
	}
	r.entries = make(map[Ref]*entry)
	r.mu.Unlock()

	for _, e := range rest {
		r.finalize(e)
	}
}

// must be called with r.mu held
func (r *Registry) dropLocked(e *entry) bool {
	e.refs--
	if e.refs > 0 {
		return false
	}
	delete(r.entries, e.ref)
	return true
}

func (r *Registry) finalize(e *entry) {
	if err := e.value.Close(); err != nil {
		logging.L().Warn("handle close failed", "handle", e.ref, "kind", e.kind, "err", err)
	} else {
		logging.L().Debug("handle closed", "handle", e.ref, "kind", e.kind)
	}
	if r.hooks.Closed != nil {
		r.hooks.Closed(e.kind)
	}
}

func (r *Registry) acquire(ref Ref) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[ref]
	if !ok {
		return nil, unknown(ref)
	}
	e.refs++
	return e, nil
}

func (r *Registry) put(e *entry) {
	r.mu.Lock()
	_, live := r.entries[e.ref]
	last := live && r.dropLocked(e)
	r.mu.Unlock()
	if last {
		go r.finalize(e)
	}
}

func unknown(ref Ref) error {
	return failure.New(failure.InvalidArgument, "unknown or released handle %q", string(ref))
}

// With runs fn against the object behind ref while holding the handle's exclusive
// lock. The entry stays alive until fn returns even if the host releases it.
func With[T Native](ctx context.Context, r *Registry, ref Ref, fn func(T) error) error {
	e, err := r.acquire(ref)
	if err != nil {
		return err
	}
	defer r.put(e)

	v, ok := e.value.(T)
	if !ok {
		var zero T
		return failure.New(failure.InvalidArgument, "handle %q is a %s, not a %s", string(ref), e.kind, typeName(zero))
	}
	if err := e.lock.Acquire(ctx, 1); err != nil {
		return failure.Wrap(failure.Timeout, err, "waiting for handle %q", string(ref))
	}
	defer e.lock.Release(1)
	return fn(v)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
