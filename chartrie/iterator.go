package chartrie

import "github.com/forestrie/go-chartrie/chars"

// level is one entry of an iterator path. toChild means the next advance
// tries this node's child chain before its next sibling.
type level struct {
	ref     Ref
	toChild bool
}

// Iterator is a forward cursor over the stored keys of a Trie, in ascending
// comparator order.
//
// It keeps the whole root-to-current path instead of parent links. An
// iterator with an empty path is the end iterator. Any mutation of the trie
// invalidates all of its iterators.
type Iterator[V any] struct {
	t    *Trie[V]
	path []level

	key      chars.Chars
	keyValid bool
}

// newIterator positions an iterator at the last entry of path. Only the
// last entry descends into its children on the next advance: the subtrees
// of the ancestors are already being walked.
func newIterator[V any](t *Trie[V], path []Ref) *Iterator[V] {
	it := &Iterator[V]{t: t, path: make([]level, len(path), len(path)+1)}
	for i, ref := range path {
		it.path[i] = level{ref: ref}
	}
	if len(it.path) > 0 {
		it.path[len(it.path)-1].toChild = true
	}
	return it
}

// End reports whether the iterator is past the last key.
func (it *Iterator[V]) End() bool {
	return it == nil || len(it.path) == 0
}

// Next advances to the next stored key in pre-order: the current node's
// children, then its next sibling, then the siblings of its ancestors.
// Nodes without a value are passed over. Next on the end iterator does
// nothing.
func (it *Iterator[V]) Next() {
	if it.End() {
		return
	}
	it.keyValid = false
	it.key = chars.Chars{}

	nodes := it.t.nodes
	for len(it.path) > 0 {
		top := len(it.path) - 1
		cur := &it.path[top]
		n := nodes[cur.ref]

		if cur.toChild {
			cur.toChild = false
			if n.child != NoRef {
				it.path = append(it.path, level{ref: n.child, toChild: true})
				if nodes[n.child].hasValue {
					return
				}
				continue
			}
		}
		if n.next != NoRef {
			it.path[top] = level{ref: n.next, toChild: true}
			if nodes[n.next].hasValue {
				return
			}
			continue
		}
		// Ascend. The parent was visited before its children, so carry on
		// with its sibling search rather than stopping on it again.
		it.path = it.path[:top]
	}
}

// Key returns the key of the current node, or "" at the end. The key is
// rebuilt from the path once per position.
func (it *Iterator[V]) Key() string {
	return it.KeyChars().String()
}

// KeyChars returns the key of the current node as a character buffer. The
// buffer is shared with later KeyChars calls at the same position.
func (it *Iterator[V]) KeyChars() chars.Chars {
	if it.End() {
		return chars.Chars{}
	}
	if !it.keyValid {
		it.key = chars.New(len(it.path))
		for _, l := range it.path {
			it.key.Append(it.t.nodes[l.ref].keyChar)
		}
		it.keyValid = true
	}
	return it.key
}

// Value returns the value at the current node, or the zero value at the end.
func (it *Iterator[V]) Value() V {
	if it.End() {
		var zero V
		return zero
	}
	return it.t.nodes[it.path[len(it.path)-1].ref].value
}

// Node returns the current node. At the end the view is not Valid.
func (it *Iterator[V]) Node() NodeView[V] {
	if it.End() {
		return NodeView[V]{ref: NoRef}
	}
	return NodeView[V]{t: it.t, ref: it.path[len(it.path)-1].ref}
}

// Depth returns the length of the current key.
func (it *Iterator[V]) Depth() int {
	if it.End() {
		return 0
	}
	return len(it.path)
}

// Equal reports whether both iterators address the same node through the
// same path. Node identity is compared, not content. All end iterators are
// equal.
func (it *Iterator[V]) Equal(other *Iterator[V]) bool {
	if it.End() || other.End() {
		return it.End() && other.End()
	}
	if it.t != other.t || len(it.path) != len(other.path) {
		return false
	}
	for i := range it.path {
		if it.path[i].ref != other.path[i].ref {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the iterator.
func (it *Iterator[V]) Clone() *Iterator[V] {
	if it == nil {
		return nil
	}
	c := &Iterator[V]{t: it.t, path: make([]level, len(it.path), cap(it.path))}
	copy(c.path, it.path)
	return c
}
