package vector

// Tree structure constants
const (
	// LeafSize is the maximum number of elements in a leaf node.
	LeafSize = 32

	// MaxChildren is the maximum number of children per internal node.
	MaxChildren = 32
)

// node is a node in the vector B+ tree.
// Leaf nodes (height == 0) hold elements.
// Internal nodes (height > 0) hold child node references.
type node[T any] struct {
	height uint8 // 0 for leaves, >0 for internal
	size   int   // Element count of the entire subtree

	// Internal node fields (height > 0)
	children   []*node[T]
	childSizes []int // Per-child element counts for seeking

	// Leaf node fields (height == 0)
	items []T
}

// newLeaf creates a leaf node owning the given items.
func newLeaf[T any](items []T) *node[T] {
	return &node[T]{
		height: 0,
		size:   len(items),
		items:  items,
	}
}

// newInternal creates an internal node with the given children.
func newInternal[T any](children []*node[T]) *node[T] {
	sizes := make([]int, len(children))
	total := 0
	for i, child := range children {
		sizes[i] = child.size
		total += child.size
	}

	return &node[T]{
		height:     children[0].height + 1,
		size:       total,
		children:   children,
		childSizes: sizes,
	}
}

func (n *node[T]) isLeaf() bool {
	return n.height == 0
}

// clone creates a shallow copy of the node.
// Children are shared; only the node's own slices are duplicated.
func (n *node[T]) clone() *node[T] {
	if n.isLeaf() {
		items := make([]T, len(n.items))
		copy(items, n.items)
		return &node[T]{
			height: 0,
			size:   n.size,
			items:  items,
		}
	}

	children := make([]*node[T], len(n.children))
	copy(children, n.children)
	sizes := make([]int, len(n.childSizes))
	copy(sizes, n.childSizes)

	return &node[T]{
		height:     n.height,
		size:       n.size,
		children:   children,
		childSizes: sizes,
	}
}

// findChild finds the child containing the given index.
// Returns the child position and the index within that child.
func (n *node[T]) findChild(index int) (int, int) {
	for i, size := range n.childSizes {
		if index < size {
			return i, index
		}
		index -= size
	}
	return -1, 0
}

// get returns the element at index within this subtree.
// The caller guarantees 0 <= index < n.size.
func (n *node[T]) get(index int) T {
	cur := n
	for !cur.isLeaf() {
		i, childIndex := cur.findChild(index)
		cur = cur.children[i]
		index = childIndex
	}
	return cur.items[index]
}

// set returns a copy of this subtree with the element at index replaced.
// Only the nodes along the root-to-leaf path are copied.
func (n *node[T]) set(index int, value T) *node[T] {
	c := n.clone()
	if c.isLeaf() {
		c.items[index] = value
		return c
	}

	i, childIndex := c.findChild(index)
	c.children[i] = c.children[i].set(childIndex, value)
	return c
}

// each visits elements in order starting at base until fn returns false.
// Returns false if iteration was stopped.
func (n *node[T]) each(base int, fn func(int, T) bool) bool {
	if n.isLeaf() {
		for i, item := range n.items {
			if !fn(base+i, item) {
				return false
			}
		}
		return true
	}

	for i, child := range n.children {
		if !child.each(base, fn) {
			return false
		}
		base += n.childSizes[i]
	}
	return true
}

// countNodes returns the number of distinct nodes reachable from n.
func countNodes[T any](n *node[T], seen map[*node[T]]struct{}) int {
	if _, ok := seen[n]; ok {
		return 0
	}
	seen[n] = struct{}{}

	count := 1
	for _, child := range n.children {
		count += countNodes(child, seen)
	}
	return count
}
