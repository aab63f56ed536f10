package hamt

// HashTrie is a handle on one version of the set: a reference-counted
// root plus the element count. Clones share all structure; Add swaps this
// handle's root without other handles noticing.
//
// A HashTrie value is not safe for concurrent use; share versions through
// SharedHashTrie instead.
type HashTrie[T any] struct {
	hasher Hasher[T]
	root   *branchNode[T]
	size   uint64
}

// New returns an empty set using hasher for value hashing and equality.
func New[T any](hasher Hasher[T]) HashTrie[T] {
	return HashTrie[T]{hasher: hasher, root: newEmptyBranch[T]()}
}

func newFromData[T any](hasher Hasher[T], data *trieData[T]) HashTrie[T] {
	addref(&data.root.head)
	return HashTrie[T]{hasher: hasher, root: data.root, size: data.size}
}

// Clone returns a handle sharing every node with t.
func (t *HashTrie[T]) Clone() HashTrie[T] {
	addref(&t.root.head)
	return HashTrie[T]{hasher: t.hasher, root: t.root, size: t.size}
}

// Release drops the handle's reference. The handle must not be used
// afterwards.
func (t *HashTrie[T]) Release() {
	if t.root != nil {
		release(&t.root.head)
		t.root = nil
		t.size = 0
	}
}

// Len returns the number of values in the set.
func (t *HashTrie[T]) Len() uint64 {
	return t.size
}

func (t *HashTrie[T]) Empty() bool {
	return t.size == 0
}

// Has reports whether value is in the set.
func (t *HashTrie[T]) Has(value T) bool {
	p := newPath(t.hasher.Hash(value), t.root)
	return p.leaf != nil && p.leaf.contains(value, t.hasher)
}

// Add inserts value, reporting whether the set grew. Adding a value that
// is already present leaves the handle untouched, root included.
func (t *HashTrie[T]) Add(value T) bool {
	root := inserted(t.root, value, t.hasher)
	if root == nil {
		return false
	}
	release(&t.root.head)
	t.root = root
	t.size++
	return true
}

// Iterator returns an iterator positioned before the first value.
func (t *HashTrie[T]) Iterator() *Iterator[T] {
	return newIterator(t.root)
}

// Iter calls handle for every value until it returns false.
func (t *HashTrie[T]) Iter(handle func(value T) bool) {
	for it := t.Iterator(); it.Next(); {
		if !handle(it.Value()) {
			return
		}
	}
}
