package list

//
// Iterator state.
type State int

//
// States.
const (
	// Before the first Next() since bound or restarted.
	Fresh State = iota
	// Last call was Next(); Remove() is legal.
	Positioned
	// Last call was Remove().
	Removed
)

//
// String.
func (s State) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Positioned:
		return "Positioned"
	case Removed:
		return "Removed"
	default:
		return "Unknown"
	}
}

//
// List iterator.
// Bound to one list. Any structural change to the list not
// made through this iterator (including Remove() through
// another iterator) invalidates it: Next() and Remove()
// fail with IllegalState until Restart().
type Iterator[T comparable] struct {
	// Bound list.
	list *List[T]
	// Node returned by the next Next().
	next int
	// Node last returned by Next().
	last int
	// List version observed.
	version uint64
	// State.
	state State
}

//
// A next value exists.
func (r *Iterator[T]) HasNext() bool {
	return !r.list.destroyed && r.next != sentinel
}

//
// Next value.
func (r *Iterator[T]) Next() (value T, err error) {
	err = r.valid()
	if err != nil {
		return
	}
	if r.next == sentinel {
		err = r.list.failed(NoSuchElement, "next")
		return
	}
	r.last = r.next
	n := &r.list.nodes[r.last]
	value = n.value
	r.next = n.next
	r.state = Positioned
	return
}

//
// Remove the value last returned by Next().
// The following Next() returns the value that followed it.
func (r *Iterator[T]) Remove() (err error) {
	err = r.valid()
	if err != nil {
		return
	}
	if r.state != Positioned {
		err = r.list.failed(
			IllegalState,
			"remove: no current value",
			"state",
			r.state.String())
		return
	}
	r.list.unlink(r.last)
	r.version = r.list.version
	r.last = sentinel
	r.state = Removed
	return
}

//
// Restart.
// Positioned before the first value of the same list.
func (r *Iterator[T]) Restart() {
	r.next = r.list.first()
	r.last = sentinel
	r.version = r.list.version
	r.state = Fresh
}

//
// State.
func (r *Iterator[T]) State() State {
	return r.state
}

//
// Validate the binding.
func (r *Iterator[T]) valid() (err error) {
	if r.list.destroyed {
		err = r.list.failed(IllegalState, "list destroyed")
		return
	}
	if r.version != r.list.version {
		err = r.list.failed(
			IllegalState,
			"iterator invalidated",
			"observed",
			r.version,
			"version",
			r.list.version)
	}

	return
}
