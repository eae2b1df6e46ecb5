package chartrie

import (
	"fmt"

	"github.com/forestrie/go-chartrie/chars"
)

// Trie is an ordered, prefix sharing map from character sequences to values.
//
// Keys are stored one character per level. Each level is a sibling chain
// sorted by the configured comparator, and characters the comparator treats
// as equal always share a node.
//
// A Trie is not safe for concurrent use, and iterators are invalidated by
// any mutation.
type Trie[V any] struct {
	opts  Options
	nodes []node[V]
	free  []Ref
	root  Ref
	count int
}

// New returns an empty trie.
func New[V any](opts ...Option) *Trie[V] {
	t := &Trie[V]{opts: newOptions(opts...)}
	t.nodes = make([]node[V], 0, t.opts.Capacity)
	t.root = t.alloc(0)
	return t
}

// Len returns the number of stored keys, which is the number of pairs All
// yields. A value stored under the empty key is not counted.
func (t *Trie[V]) Len() int { return t.count }

// NodeCount returns the number of live nodes, including the root.
func (t *Trie[V]) NodeCount() int { return len(t.nodes) - len(t.free) }

// Clear discards every key and replaces the root.
func (t *Trie[V]) Clear() {
	t.debugf("chartrie: clear: keys=%d, nodes=%d", t.count, t.NodeCount())
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.count = 0
	t.root = t.alloc(0)
}

// AddKeyValue stores value under key, replacing any previous value, and
// returns the terminal node. An empty key addresses the root, which
// iteration never visits and Len does not count.
func (t *Trie[V]) AddKeyValue(key string, value V) NodeView[V] {
	return t.AddKeyValueSeq(chars.ViewString(key), value)
}

// Add is AddKeyValue without the result.
func (t *Trie[V]) Add(key string, value V) {
	t.AddKeyValueSeq(chars.ViewString(key), value)
}

// AddKeyValueSeq is AddKeyValue for any character sequence.
func (t *Trie[V]) AddKeyValueSeq(key chars.Sequence, value V) NodeView[V] {
	ref := t.root
	if path := t.pathCreate(key); len(path) > 0 {
		ref = path[len(path)-1]
	} else if key.Len() != 0 {
		panic(fmt.Errorf("%w: key=%q", ErrPathCreate, chars.ToString(key)))
	}

	n := &t.nodes[ref]
	if !n.hasValue && ref != t.root {
		t.count++
	}
	n.value = value
	n.hasValue = true
	return NodeView[V]{t: t, ref: ref}
}

// Find returns an iterator positioned at key. It returns the end iterator
// unless key is stored: a node that only exists as the prefix of longer keys
// is not found.
func (t *Trie[V]) Find(key string) *Iterator[V] {
	return t.FindSeq(chars.ViewString(key))
}

// FindSeq is Find for any character sequence.
func (t *Trie[V]) FindSeq(key chars.Sequence) *Iterator[V] {
	path := t.pathSimple(key)
	if len(path) == 0 || !t.nodes[path[len(path)-1]].hasValue {
		return t.End()
	}
	return newIterator(t, path)
}

// Get returns the value stored under key.
func (t *Trie[V]) Get(key string) (V, bool) {
	return t.GetSeq(chars.ViewString(key))
}

// GetSeq is Get for any character sequence.
func (t *Trie[V]) GetSeq(key chars.Sequence) (V, bool) {
	path := t.pathSimple(key)
	if len(path) == 0 {
		var zero V
		return zero, false
	}
	n := t.nodes[path[len(path)-1]]
	return n.value, n.hasValue
}

// RemoveKey removes key together with every longer key that starts with
// it. It reports false, changing nothing, when key is not stored. The empty
// key clears the whole trie.
func (t *Trie[V]) RemoveKey(key string) bool {
	return t.RemoveKeySeq(chars.ViewString(key))
}

// RemoveKeySeq is RemoveKey for any character sequence.
func (t *Trie[V]) RemoveKeySeq(key chars.Sequence) bool {
	return t.remove(key, true)
}

// RemovePrefix removes the subtree addressed by prefix whether or not
// prefix itself is a stored key. It reports false when no stored or prefix
// node matches. The empty prefix clears the whole trie.
func (t *Trie[V]) RemovePrefix(prefix string) bool {
	return t.RemovePrefixSeq(chars.ViewString(prefix))
}

// RemovePrefixSeq is RemovePrefix for any character sequence.
func (t *Trie[V]) RemovePrefixSeq(prefix chars.Sequence) bool {
	return t.remove(prefix, false)
}

func (t *Trie[V]) remove(key chars.Sequence, mustHaveValue bool) bool {
	if key.Len() == 0 {
		t.Clear()
		return true
	}

	// Resolve the full path before touching anything.
	path := t.pathSimple(key)
	if len(path) == 0 {
		return false
	}
	target := path[len(path)-1]
	if mustHaveValue && !t.nodes[target].hasValue {
		return false
	}
	parent := t.root
	if len(path) > 1 {
		parent = path[len(path)-2]
	}

	if !t.unlink(parent, target) {
		// The path was resolved through parent's chain, so this cannot
		// happen unless the arena is corrupt.
		panic(fmt.Errorf("%w: target=%d not in chain of parent=%d", ErrBadRef, target, parent))
	}

	nodes, values := t.release(target)
	t.count -= values
	t.debugf("chartrie: prune: key=%q, nodes=%d, values=%d", chars.ToString(key), nodes, values)
	return true
}

// unlink detaches target from parent's child chain, leaving target with no
// next sibling.
func (t *Trie[V]) unlink(parent, target Ref) bool {
	p := &t.nodes[parent]
	if p.child == target {
		p.child = t.nodes[target].next
		t.nodes[target].next = NoRef
		return true
	}
	for cur := p.child; cur != NoRef; cur = t.nodes[cur].next {
		if t.nodes[cur].next == target {
			t.nodes[cur].next = t.nodes[target].next
			t.nodes[target].next = NoRef
			return true
		}
	}
	return false
}

func (t *Trie[V]) debugf(format string, args ...any) {
	if t.opts.Log == nil {
		return
	}
	t.opts.Log.Debugf(format, args...)
}

// NodeView is a read only handle on one trie node.
type NodeView[V any] struct {
	t   *Trie[V]
	ref Ref
}

// Ref returns the arena index of the node.
func (n NodeView[V]) Ref() Ref { return n.ref }

// Valid reports whether the view addresses a node.
func (n NodeView[V]) Valid() bool {
	return n.t != nil && n.ref != NoRef && int(n.ref) < len(n.t.nodes)
}

// KeyChar returns the character the node stands for. The root's is 0.
func (n NodeView[V]) KeyChar() rune { return n.t.nodes[n.ref].keyChar }

// HasValue reports whether a key ends at the node.
func (n NodeView[V]) HasValue() bool { return n.t.nodes[n.ref].hasValue }

// Value returns the stored value, the zero value when HasValue is false.
func (n NodeView[V]) Value() V { return n.t.nodes[n.ref].value }
