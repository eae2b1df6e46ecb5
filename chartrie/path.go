package chartrie

import "github.com/forestrie/go-chartrie/chars"

// Path resolution walks one level per key character: step into the current
// node's child chain, then search that chain for the character. The result
// is the node path, one Ref per consumed character from the top level down.
// Nodes keep no parent links; a node's parent is the previous path entry,
// or the root for the first.

// pathSimple resolves key without changing the trie. It returns nil when
// any character has no matching node.
func (t *Trie[V]) pathSimple(key chars.Sequence) []Ref {
	n := key.Len()
	if n == 0 {
		return nil
	}
	path := make([]Ref, 0, n)
	cur := t.root
	for i := 0; i < n; i++ {
		first, _ := t.child(cur, false)
		if first == NoRef {
			return nil
		}
		cur, _ = t.brother(first, key.At(i), ModeSimple)
		if cur == NoRef {
			return nil
		}
		path = append(path, cur)
	}
	return path
}

// pathCreate resolves key, creating every missing node on the way.
func (t *Trie[V]) pathCreate(key chars.Sequence) []Ref {
	n := key.Len()
	if n == 0 {
		return nil
	}
	path := make([]Ref, 0, n)
	cur := t.root
	for i := 0; i < n; i++ {
		ch := key.At(i)
		first, created := t.child(cur, true)
		if created {
			t.nodes[first].keyChar = ch
			cur = first
		} else {
			cur, _ = t.brother(first, ch, ModeCreate)
		}
		if cur == NoRef {
			return nil
		}
		path = append(path, cur)
	}
	return path
}

// pathGreaterOrEqual resolves the smallest node path not less than key.
//
// Each level takes the first sibling not less than the key character. Once
// that sibling is strictly greater the rest of the key is irrelevant and
// resolution stops there, with exact reporting false.
//
// If some level has no such sibling (or no child chain at all) the returned
// path ends at the last matched ancestor, which sorts before key along with
// its whole subtree, and exhausted is true. The caller resumes traversal
// after that subtree.
func (t *Trie[V]) pathGreaterOrEqual(key chars.Sequence) (path []Ref, exact, exhausted bool) {
	n := key.Len()
	path = make([]Ref, 0, n)
	cur := t.root
	for i := 0; i < n; i++ {
		ch := key.At(i)
		first, _ := t.child(cur, false)
		if first == NoRef {
			return path, false, true
		}
		next, _ := t.brother(first, ch, ModeGreaterOrEqual)
		if next == NoRef {
			return path, false, true
		}
		path = append(path, next)
		if !isEqual(t.opts.Less, ch, t.nodes[next].keyChar) {
			return path, false, false
		}
		cur = next
	}
	return path, true, false
}
