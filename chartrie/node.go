package chartrie

import "fmt"

// node is one position of a key at one depth. A node holding a value marks
// the end of a stored key; it may still have children.
type node[V any] struct {
	keyChar  rune
	hasValue bool
	value    V
	next     Ref // next sibling, strictly greater under the comparator
	child    Ref // head of the next deeper sibling chain
}

// alloc returns a fresh node holding keyChar, reusing a freed slot when one
// is available.
func (t *Trie[V]) alloc(keyChar rune) Ref {
	n := node[V]{keyChar: keyChar, next: NoRef, child: NoRef}
	if last := len(t.free) - 1; last >= 0 {
		ref := t.free[last]
		t.free = t.free[:last]
		t.nodes[ref] = n
		return ref
	}
	if uint64(len(t.nodes)) >= uint64(NoRef) {
		panic(fmt.Errorf("%w: nodes=%d", ErrArenaFull, len(t.nodes)))
	}
	t.nodes = append(t.nodes, n)
	return Ref(len(t.nodes) - 1)
}

// clone copies ref (key char, value, next and child links) into a new node.
func (t *Trie[V]) clone(ref Ref) Ref {
	c := t.alloc(0)
	t.nodes[c] = t.nodes[ref]
	return c
}

// release returns ref and everything it owns, in both the sibling and the
// child direction, to the free list. Callers detach ref first and cut its
// next link if the siblings must survive. It reports how many nodes and how
// many values were discarded.
func (t *Trie[V]) release(ref Ref) (nodes, values int) {
	stack := []Ref{ref}
	for len(stack) > 0 {
		last := len(stack) - 1
		r := stack[last]
		stack = stack[:last]

		n := t.nodes[r]
		if n.child != NoRef {
			stack = append(stack, n.child)
		}
		if n.next != NoRef {
			stack = append(stack, n.next)
		}
		if n.hasValue {
			values++
		}
		nodes++

		t.nodes[r] = node[V]{next: NoRef, child: NoRef}
		t.free = append(t.free, r)
	}
	return nodes, values
}

// child returns the head of ref's child chain. With create set, an empty
// placeholder is made when there is none; its key char is assigned by the
// caller once the resolving character is known.
func (t *Trie[V]) child(ref Ref, create bool) (Ref, bool) {
	if c := t.nodes[ref].child; c != NoRef || !create {
		return c, false
	}
	c := t.alloc(0)
	t.nodes[ref].child = c
	return c, true
}

// brother searches the sibling chain starting at from for ch.
//
// In ModeCreate, when ch sorts before from, from cannot be moved: its parent
// (or an iterator path) addresses the chain through it. Instead from is
// cloned into its own next slot and then overwritten in place with ch, no
// value and no child, leaving from as the new chain head.
func (t *Trie[V]) brother(from Ref, ch rune, mode Mode) (Ref, bool) {
	less := t.opts.Less
	head := t.nodes[from].keyChar

	switch mode {
	case ModeSimple:
		if isLess(less, ch, head) {
			return NoRef, false
		}
		if isEqual(less, ch, head) {
			return from, false
		}
		cur := t.nodes[from].next
		for cur != NoRef && isLess(less, t.nodes[cur].keyChar, ch) {
			cur = t.nodes[cur].next
		}
		if cur != NoRef && isEqual(less, t.nodes[cur].keyChar, ch) {
			return cur, false
		}
		return NoRef, false

	case ModeGreaterOrEqual:
		if !isLess(less, head, ch) {
			return from, false
		}
		cur := t.nodes[from].next
		for cur != NoRef && isLess(less, t.nodes[cur].keyChar, ch) {
			cur = t.nodes[cur].next
		}
		return cur, false

	case ModeCreate:
		if isLess(less, ch, head) {
			moved := t.clone(from)
			t.nodes[from] = node[V]{keyChar: ch, next: moved, child: NoRef}
			t.debugf("chartrie: head clone: ch=%q, head=%q, ref=%d, moved=%d", ch, head, from, moved)
			return from, true
		}
		if isEqual(less, ch, head) {
			return from, false
		}
		prev := from
		cur := t.nodes[from].next
		for cur != NoRef && isLess(less, t.nodes[cur].keyChar, ch) {
			prev = cur
			cur = t.nodes[cur].next
		}
		if cur != NoRef && isEqual(less, t.nodes[cur].keyChar, ch) {
			return cur, false
		}
		n := t.alloc(ch)
		t.nodes[n].next = cur
		t.nodes[prev].next = n
		return n, true
	}
	return NoRef, false
}
