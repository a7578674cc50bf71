package vector

// Builder provides efficient incremental construction of a vector.
// It fills leaves as elements arrive and builds the tree when Build is called.
type Builder[T any] struct {
	leaves  []*node[T]
	pending []T
	total   int
}

// NewBuilder creates a builder sized for roughly capacity elements.
func NewBuilder[T any](capacity int) *Builder[T] {
	leaves := 0
	if capacity > 0 {
		leaves = (capacity + LeafSize - 1) / LeafSize
	}
	return &Builder[T]{
		leaves:  make([]*node[T], 0, leaves),
		pending: make([]T, 0, LeafSize),
	}
}

// Append adds elements to the end of the vector under construction.
func (b *Builder[T]) Append(items ...T) {
	for _, item := range items {
		b.pending = append(b.pending, item)
		if len(b.pending) == LeafSize {
			b.flush()
		}
	}
	b.total += len(items)
}

// flush turns the pending elements into a leaf.
func (b *Builder[T]) flush() {
	if len(b.pending) == 0 {
		return
	}
	b.leaves = append(b.leaves, newLeaf(b.pending))
	b.pending = make([]T, 0, LeafSize)
}

// Len returns the number of elements appended so far.
func (b *Builder[T]) Len() int {
	return b.total
}

// Reset clears the builder for reuse.
func (b *Builder[T]) Reset() {
	b.leaves = b.leaves[:0]
	b.pending = make([]T, 0, LeafSize)
	b.total = 0
}

// Build creates the vector from accumulated elements.
// After calling Build, the builder is reset.
func (b *Builder[T]) Build() Vector[T] {
	b.flush()
	leaves := b.leaves
	b.leaves = nil
	b.Reset()
	return buildFromLeaves(leaves)
}

// FromSlice creates a vector holding a copy of items.
func FromSlice[T any](items []T) Vector[T] {
	b := NewBuilder[T](len(items))
	b.Append(items...)
	return b.Build()
}

// Repeat creates a vector of n copies of value.
// All full leaves are the same node, and so are identical full subtrees
// at every level above them, so only O(log n) distinct nodes are allocated.
func Repeat[T any](value T, n int) Vector[T] {
	if n <= 0 {
		return New[T]()
	}

	fullCount := n / LeafSize
	rest := n % LeafSize

	leaves := make([]*node[T], 0, fullCount+1)
	if fullCount > 0 {
		full := newLeaf(filled(value, LeafSize))
		for i := 0; i < fullCount; i++ {
			leaves = append(leaves, full)
		}
	}
	if rest > 0 {
		leaves = append(leaves, newLeaf(filled(value, rest)))
	}

	return buildFromLeaves(leaves)
}

func filled[T any](value T, n int) []T {
	items := make([]T, n)
	for i := range items {
		items[i] = value
	}
	return items
}

// buildFromLeaves builds the tree bottom-up.
// A group of children identical to the previous group reuses that group's parent.
func buildFromLeaves[T any](leaves []*node[T]) Vector[T] {
	if len(leaves) == 0 {
		return New[T]()
	}

	nodes := leaves
	for len(nodes) > 1 {
		parents := make([]*node[T], 0, (len(nodes)+MaxChildren-1)/MaxChildren)

		var prevGroup []*node[T]
		var prevParent *node[T]
		for i := 0; i < len(nodes); i += MaxChildren {
			end := min(i+MaxChildren, len(nodes))
			group := nodes[i:end]

			if prevParent != nil && sameNodes(prevGroup, group) {
				parents = append(parents, prevParent)
				continue
			}

			children := make([]*node[T], len(group))
			copy(children, group)
			prevGroup = group
			prevParent = newInternal(children)
			parents = append(parents, prevParent)
		}
		nodes = parents
	}

	return Vector[T]{root: nodes[0]}
}

func sameNodes[T any](a, b []*node[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
