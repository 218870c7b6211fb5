package list

import (
	liberr "github.com/konveyor/linkedlist/pkg/error"
)

//
// Errors.
var (
	// Index outside the valid range for the current length.
	OutOfRange = liberr.New("index out of range")
	// Operation not valid in the current state.
	IllegalState = liberr.New("illegal state")
	// Traversal past the end.
	NoSuchElement = liberr.New("no such element")
)

//
// Sentinel node (index).
// Links are indexes into the node arena and the sentinel
// closes the ring: sentinel.next is the head, sentinel.prev
// is the tail. Zero also terminates the free list.
const sentinel = 0

//
// List node.
type node[T comparable] struct {
	// Value (handle).
	value T
	// Previous node.
	prev int
	// Next node.
	next int
}

//
// Linked list.
// The zero value is an empty list ready to use.
// Structural changes made through the List invalidate live
// iterators; they report IllegalState until restarted.
type List[T comparable] struct {
	// Node arena. Slot 0 is the sentinel.
	nodes []node[T]
	// Free list (head).
	free int
	// Number of values.
	length int
	// Structural version.
	version uint64
	// Destroyed.
	destroyed bool
}

//
// New list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

//
// Append a value.
func (l *List[T]) Add(value T) (err error) {
	if l.destroyed {
		err = l.failed(IllegalState, "add: list destroyed")
		return
	}
	l.insertBefore(sentinel, value)
	return
}

//
// Insert a value at the index.
// The value becomes position `index` and values at or
// after it shift by one. Index == Size() appends.
func (l *List[T]) AddAt(index int, value T) (err error) {
	if l.destroyed {
		err = l.failed(IllegalState, "add: list destroyed")
		return
	}
	if index < 0 || index > l.length {
		err = l.failed(
			OutOfRange,
			"add",
			"index",
			index,
			"length",
			l.length)
		return
	}
	at := sentinel
	if index < l.length {
		at = l.find(index)
	}
	l.insertBefore(at, value)
	return
}

//
// Insert a value in order.
// The value is inserted before the first value ordered
// after it, which is after all equal values. Placement is
// only meaningful when the list is ordered by `cmp`.
func (l *List[T]) AddSorted(value T, cmp Comparator[T]) (err error) {
	if l.destroyed {
		err = l.failed(IllegalState, "add: list destroyed")
		return
	}
	at := sentinel
	for n := l.first(); n != sentinel; n = l.nodes[n].next {
		if cmp.Compare(l.nodes[n].value, value) > 0 {
			at = n
			break
		}
	}
	l.insertBefore(at, value)
	return
}

//
// Get the value at the index.
func (l *List[T]) Get(index int) (value T, err error) {
	if l.destroyed {
		err = l.failed(IllegalState, "get: list destroyed")
		return
	}
	if index < 0 || index >= l.length {
		err = l.failed(
			OutOfRange,
			"get",
			"index",
			index,
			"length",
			l.length)
		return
	}
	value = l.nodes[l.find(index)].value
	return
}

//
// Index of the first matching value.
// Returns (-1, false) when not found.
func (l *List[T]) IndexOf(value T) (index int, found bool) {
	index = -1
	i := 0
	for n := l.first(); n != sentinel; n = l.nodes[n].next {
		if l.nodes[n].value == value {
			index = i
			found = true
			return
		}
		i++
	}

	return
}

//
// The list contains the value.
func (l *List[T]) Contains(value T) bool {
	_, found := l.IndexOf(value)
	return found
}

//
// Remove the first matching value.
// Returns false when not found.
func (l *List[T]) Remove(value T) (removed bool) {
	for n := l.first(); n != sentinel; n = l.nodes[n].next {
		if l.nodes[n].value == value {
			l.unlink(n)
			removed = true
			return
		}
	}

	return
}

//
// Remove the value at the index.
// Values after it shift down by one.
func (l *List[T]) RemoveAt(index int) (value T, err error) {
	if l.destroyed {
		err = l.failed(IllegalState, "remove: list destroyed")
		return
	}
	if index < 0 || index >= l.length {
		err = l.failed(
			OutOfRange,
			"remove",
			"index",
			index,
			"length",
			l.length)
		return
	}
	n := l.find(index)
	value = l.nodes[n].value
	l.unlink(n)
	return
}

//
// Number of values.
func (l *List[T]) Size() int {
	return l.length
}

//
// Remove all values.
// The nodes are released; values are not.
func (l *List[T]) Clear() {
	if l.destroyed {
		return
	}
	l.nodes = nil
	l.free = sentinel
	l.length = 0
	l.version++
}

//
// Destroy the list.
// Terminal: afterwards, operations fail with IllegalState.
func (l *List[T]) Destroy() {
	if l.destroyed {
		return
	}
	l.Clear()
	l.destroyed = true
}

//
// Values in order.
func (l *List[T]) Values() (values []T) {
	values = make([]T, 0, l.length)
	for n := l.first(); n != sentinel; n = l.nodes[n].next {
		values = append(values, l.nodes[n].value)
	}

	return
}

//
// Get an iterator.
// Positioned before the first value.
func (l *List[T]) Iter() (itr *Iterator[T]) {
	itr = &Iterator[T]{list: l}
	itr.Restart()
	return
}

//
// First node.
func (l *List[T]) first() int {
	if len(l.nodes) == 0 {
		return sentinel
	}

	return l.nodes[sentinel].next
}

//
// Find the node at the index.
// Walks from the nearer end.
func (l *List[T]) find(index int) (n int) {
	if index < l.length/2 {
		n = l.nodes[sentinel].next
		for i := 0; i < index; i++ {
			n = l.nodes[n].next
		}
	} else {
		n = l.nodes[sentinel].prev
		for i := l.length - 1; i > index; i-- {
			n = l.nodes[n].prev
		}
	}

	return
}

//
// Insert a new node before `at`.
func (l *List[T]) insertBefore(at int, value T) {
	n := l.alloc(value)
	prev := l.nodes[at].prev
	l.nodes[n].prev = prev
	l.nodes[n].next = at
	l.nodes[prev].next = n
	l.nodes[at].prev = n
	l.length++
	l.version++
}

//
// Unlink and release a node.
func (l *List[T]) unlink(n int) {
	prev := l.nodes[n].prev
	next := l.nodes[n].next
	l.nodes[prev].next = next
	l.nodes[next].prev = prev
	l.release(n)
	l.length--
	l.version++
}

//
// Allocate a node.
// Recycles from the free list.
func (l *List[T]) alloc(value T) (n int) {
	if len(l.nodes) == 0 {
		l.nodes = append(l.nodes, node[T]{})
	}
	if l.free != sentinel {
		n = l.free
		l.free = l.nodes[n].next
		l.nodes[n] = node[T]{value: value}
		return
	}
	n = len(l.nodes)
	l.nodes = append(l.nodes, node[T]{value: value})
	return
}

//
// Release a node to the free list.
// The value is zeroed so the handle is not retained.
func (l *List[T]) release(n int) {
	l.nodes[n] = node[T]{next: l.free}
	l.free = n
}

//
// Build and log a failure.
func (l *List[T]) failed(kind error, kvpair ...interface{}) (err error) {
	err = liberr.Wrap(kind, kvpair...)
	Log.V(4).Info(
		"precondition failed.",
		"reason",
		err.Error())
	return
}
