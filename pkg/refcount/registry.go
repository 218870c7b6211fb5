package refcount

import (
	"github.com/google/uuid"
	liberr "github.com/konveyor/linkedlist/pkg/error"
	"github.com/konveyor/linkedlist/pkg/list"
	"go.uber.org/multierr"
)

//
// Closes a resource.
type Closer[K comparable] func(key K) error

//
// Registry entry.
type Entry[K comparable] struct {
	// Correlation ID.
	ID string
	// Resource key.
	Key K
	// Number of references.
	Refs int
}

//
// Registry of referenced resources.
// Not safe for concurrent use.
type Registry[K comparable] struct {
	// Entries in registration order.
	entries list.List[*Entry[K]]
	// Resource closer.
	closer Closer[K]
}

//
// New registry.
func New[K comparable](closer Closer[K]) *Registry[K] {
	return &Registry[K]{
		closer: closer,
	}
}

//
// Add a reference.
func (r *Registry[K]) Ref(key K) (entry *Entry[K]) {
	entry = r.find(key)
	if entry != nil {
		entry.Refs++
		Log.V(3).Info(
			"reference added.",
			"id",
			entry.ID,
			"refs",
			entry.Refs)
		return
	}
	entry = &Entry[K]{
		ID:   uuid.New().String(),
		Key:  key,
		Refs: 1,
	}
	err := r.entries.Add(entry)
	if err != nil {
		Log.Trace(err)
	}
	Log.V(3).Info(
		"reference created.",
		"id",
		entry.ID)

	return
}

//
// Release a reference.
// The resource is closed when the last reference is
// released. Untracked keys are closed directly.
func (r *Registry[K]) Release(key K) (err error) {
	itr := r.entries.Iter()
	for itr.HasNext() {
		entry, nErr := itr.Next()
		if nErr != nil {
			err = nErr
			return
		}
		if entry.Key != key {
			continue
		}
		entry.Refs--
		if entry.Refs > 0 {
			Log.V(3).Info(
				"reference released.",
				"id",
				entry.ID,
				"refs",
				entry.Refs)
			return
		}
		err = itr.Remove()
		if err != nil {
			return
		}
		Log.V(3).Info(
			"last reference released.",
			"id",
			entry.ID)
		break
	}

	err = r.close(key)
	return
}

//
// Number of references to the key.
func (r *Registry[K]) Refs(key K) (n int) {
	entry := r.find(key)
	if entry != nil {
		n = entry.Refs
	}

	return
}

//
// Number of referenced resources.
func (r *Registry[K]) Len() int {
	return r.entries.Size()
}

//
// Entries ordered by references (descending).
// Ties are kept in registration order.
func (r *Registry[K]) Entries() (entries []*Entry[K]) {
	sorted := list.List[*Entry[K]]{}
	defer sorted.Destroy()
	itr := r.entries.Iter()
	for itr.HasNext() {
		entry, err := itr.Next()
		if err != nil {
			break
		}
		_ = sorted.Add(entry)
	}
	_ = sorted.Sort(
		list.CompareFunc[*Entry[K]](
			func(a, b *Entry[K]) int {
				return b.Refs - a.Refs
			}))
	entries = sorted.Values()
	return
}

//
// Close all referenced resources.
// The registry is empty afterwards; closer errors are
// combined.
func (r *Registry[K]) Close() (err error) {
	itr := r.entries.Iter()
	for itr.HasNext() {
		entry, nErr := itr.Next()
		if nErr != nil {
			err = multierr.Append(err, nErr)
			break
		}
		err = multierr.Append(err, r.close(entry.Key))
	}
	r.entries.Clear()
	Log.V(3).Info(
		"registry closed.",
		"errors",
		len(multierr.Errors(err)))

	return
}

//
// Find the entry by key.
func (r *Registry[K]) find(key K) (entry *Entry[K]) {
	itr := r.entries.Iter()
	for itr.HasNext() {
		next, err := itr.Next()
		if err != nil {
			break
		}
		if next.Key == key {
			entry = next
			break
		}
	}

	return
}

//
// Close the resource.
func (r *Registry[K]) close(key K) (err error) {
	if r.closer == nil {
		return
	}
	err = r.closer(key)
	if err != nil {
		err = liberr.Wrap(err, "close failed", "key", key)
		Log.Trace(err)
	}

	return
}
