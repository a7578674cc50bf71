package vector

// iterFrame represents a position in the tree traversal.
type iterFrame[T any] struct {
	node *node[T]
	pos  int // Next child (internal) or item (leaf) to visit
}

// Iterator walks a vector's elements in order.
type Iterator[T any] struct {
	root    *node[T]
	stack   []iterFrame[T]
	started bool
	index   int
	value   T
}

// Iter returns an iterator positioned before the first element.
func (v Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		root:  v.root,
		stack: make([]iterFrame[T], 0, 8),
		index: -1,
	}
}

// Next advances to the next element.
// Returns true if there is an element, false if iteration is complete.
func (it *Iterator[T]) Next() bool {
	if !it.started {
		it.started = true
		if it.root == nil || it.root.size == 0 {
			return false
		}
		it.stack = append(it.stack, iterFrame[T]{node: it.root})
	}

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.node.isLeaf() {
			if top.pos < len(top.node.items) {
				it.value = top.node.items[top.pos]
				top.pos++
				it.index++
				return true
			}
		} else if top.pos < len(top.node.children) {
			child := top.node.children[top.pos]
			top.pos++
			it.stack = append(it.stack, iterFrame[T]{node: child})
			continue
		}

		// Exhausted, pop
		it.stack = it.stack[:len(it.stack)-1]
	}
	return false
}

// Index returns the index of the current element, or -1 before the first Next.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.value
}
