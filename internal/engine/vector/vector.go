package vector

// Vector is an immutable, fixed-length sequence backed by a B+ tree.
// Operations return new Vector values; the original is never modified.
// This enables cheap snapshots and thread-safe concurrent read access.
type Vector[T any] struct {
	root *node[T]
}

// New creates an empty vector.
func New[T any]() Vector[T] {
	return Vector[T]{}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	if v.root == nil {
		return 0
	}
	return v.root.size
}

// IsEmpty returns true if the vector holds no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Get returns the element at index.
// Returns the zero value and false if index is out of range.
func (v Vector[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.Len() {
		var zero T
		return zero, false
	}
	return v.root.get(index), true
}

// Set replaces the element at index.
// Returns a new vector that shares every node off the updated path with v;
// v is unchanged. Returns v and false if index is out of range.
func (v Vector[T]) Set(index int, value T) (Vector[T], bool) {
	if index < 0 || index >= v.Len() {
		return v, false
	}
	return Vector[T]{root: v.root.set(index, value)}, true
}

// Each calls fn for every element in order until fn returns false.
func (v Vector[T]) Each(fn func(index int, value T) bool) {
	if v.root == nil {
		return
	}
	v.root.each(0, fn)
}

// Slice returns the elements as a newly allocated slice.
// Use sparingly for large vectors.
func (v Vector[T]) Slice() []T {
	out := make([]T, 0, v.Len())
	v.Each(func(_ int, value T) bool {
		out = append(out, value)
		return true
	})
	return out
}

// Height returns the height of the tree.
// Useful for debugging and testing balance.
func (v Vector[T]) Height() int {
	if v.root == nil {
		return 0
	}
	return int(v.root.height) + 1
}

// NodeCount returns the number of distinct nodes in the tree.
// Shared subtrees are counted once. Useful for debugging.
func (v Vector[T]) NodeCount() int {
	if v.root == nil {
		return 0
	}
	return countNodes(v.root, make(map[*node[T]]struct{}))
}

// Equals returns true if both vectors hold equal elements in the same order.
// Note: This compares content, not structure.
func (v Vector[T]) Equals(other Vector[T], eq func(a, b T) bool) bool {
	if v.Len() != other.Len() {
		return false
	}
	if v.root == other.root {
		return true
	}

	it1 := v.Iter()
	it2 := other.Iter()
	for it1.Next() {
		if !it2.Next() {
			return false
		}
		if !eq(it1.Value(), it2.Value()) {
			return false
		}
	}
	return !it2.Next()
}
