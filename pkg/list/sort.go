package list

//
// Three-way comparator.
// Compare returns negative, zero or positive when `a` is
// ordered before, with or after `b`. Only the sign is used
// and the argument order is not guaranteed.
type Comparator[T any] interface {
	Compare(a, b T) int
}

//
// Comparator function.
type CompareFunc[T any] func(a, b T) int

//
// Compare.
func (f CompareFunc[T]) Compare(a, b T) int {
	return f(a, b)
}

//
// Comparator with a context.
// The context is passed through to the function untouched.
func WithContext[C any, T any](context C, fn func(context C, a, b T) int) Comparator[T] {
	return &contextComparator[C, T]{
		context: context,
		fn:      fn,
	}
}

type contextComparator[C any, T any] struct {
	context C
	fn      func(C, T, T) int
}

func (c *contextComparator[C, T]) Compare(a, b T) int {
	return c.fn(c.context, a, b)
}

//
// Sort the list (stable).
// Values comparing equal keep their relative order.
// Bottom-up merge sort over the links: O(n log n)
// comparisons and no allocation.
func (l *List[T]) Sort(cmp Comparator[T]) (err error) {
	if l.destroyed {
		err = l.failed(IllegalState, "sort: list destroyed")
		return
	}
	if l.length < 2 {
		l.version++
		return
	}
	// The last node links to the sentinel, which
	// terminates the chain during the merge passes.
	head := l.nodes[sentinel].next
	for width := 1; ; width *= 2 {
		p := head
		head = sentinel
		tail := sentinel
		merges := 0
		for p != sentinel {
			merges++
			// Split off run `p` (psize) and run `q` (qsize).
			q := p
			psize := 0
			for psize < width && q != sentinel {
				psize++
				q = l.nodes[q].next
			}
			qsize := width
			for psize > 0 || (qsize > 0 && q != sentinel) {
				var n int
				switch {
				case psize == 0:
					n = q
					q = l.nodes[q].next
					qsize--
				case qsize == 0 || q == sentinel:
					n = p
					p = l.nodes[p].next
					psize--
				case cmp.Compare(l.nodes[p].value, l.nodes[q].value) <= 0:
					n = p
					p = l.nodes[p].next
					psize--
				default:
					n = q
					q = l.nodes[q].next
					qsize--
				}
				if tail == sentinel {
					head = n
				} else {
					l.nodes[tail].next = n
				}
				tail = n
			}
			p = q
		}
		l.nodes[tail].next = sentinel
		if merges < 2 {
			break
		}
	}
	// Rebuild the back links.
	prev := sentinel
	for n := head; n != sentinel; n = l.nodes[n].next {
		l.nodes[n].prev = prev
		prev = n
	}
	l.nodes[sentinel].next = head
	l.nodes[sentinel].prev = prev
	l.version++

	return
}
