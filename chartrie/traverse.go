package chartrie

import (
	"iter"

	"github.com/forestrie/go-chartrie/chars"
)

// Begin returns an iterator at the smallest stored key, or the end iterator
// when the trie is empty.
func (t *Trie[V]) Begin() *Iterator[V] {
	first := t.nodes[t.root].child
	if first == NoRef {
		return t.End()
	}
	return t.seek(newIterator(t, []Ref{first}))
}

// End returns the end iterator.
func (t *Trie[V]) End() *Iterator[V] {
	return &Iterator[V]{t: t}
}

// LowerBound returns an iterator at the first stored key not less than key,
// or the end iterator when there is none. LowerBound("") is Begin().
func (t *Trie[V]) LowerBound(key string) *Iterator[V] {
	return t.LowerBoundSeq(chars.ViewString(key))
}

// LowerBoundSeq is LowerBound for any character sequence.
func (t *Trie[V]) LowerBoundSeq(key chars.Sequence) *Iterator[V] {
	if key.Len() == 0 {
		return t.Begin()
	}

	path, _, exhausted := t.pathGreaterOrEqual(key)
	if len(path) == 0 {
		return t.End()
	}
	it := newIterator(t, path)
	if exhausted {
		// The resolved node is a strict prefix of key: it and its
		// subtree sort before key.
		it.path[len(it.path)-1].toChild = false
		it.Next()
		return it
	}
	return t.seek(it)
}

// seek leaves it in place when it already addresses a value, and otherwise
// advances to the next stored key.
func (t *Trie[V]) seek(it *Iterator[V]) *Iterator[V] {
	if !it.End() && !t.nodes[it.path[len(it.path)-1].ref].hasValue {
		it.Next()
	}
	return it
}

// All yields every stored key and value in ascending order.
func (t *Trie[V]) All() iter.Seq2[string, V] {
	return t.walk(t.Begin)
}

// Ascend yields the stored keys not less than from, in ascending order.
func (t *Trie[V]) Ascend(from string) iter.Seq2[string, V] {
	return t.walk(func() *Iterator[V] { return t.LowerBound(from) })
}

// Keys yields every stored key in ascending order.
func (t *Trie[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it := t.Begin(); !it.End(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

func (t *Trie[V]) walk(start func() *Iterator[V]) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for it := start(); !it.End(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
