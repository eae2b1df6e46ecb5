/*
# Character tries with ordered sibling chains

This package provides an ordered map from character sequences to values,
stored as a digital search trie where each level is a sorted, singly linked
sibling chain rather than a fixed fan-out array.

## Layout

Every node holds one key character, an optional value and two links:

- next: the following sibling at the same depth
- child: the head of the chain one level deeper

The root is synthetic. It holds no character and no value and exists only to
own the top-level chain through its child link.

Nodes live in a per-trie arena and links are arena indices (Ref), with NoRef
for "absent". Removing a subtree walks it with an explicit stack and returns
the slots to a free list, so deep or wide tries never recurse.

## Core invariants

1. within a chain, nodes are strictly ascending under the comparator
2. comparator-equal characters always resolve to the same node
3. a node holds a value iff a stored key ends there; prefix nodes may not

Equality is derived from the single Less predicate: a == b iff neither
less(a, b) nor less(b, a). The default comparator (FoldLess) folds case, so
"Alfa" and "alfa" are one key and the first spelling inserted is the one
reported by iteration.

## Head of chain insertion

A parent addresses its chain through the Ref of the first node. When a new
character sorts before the head, the head is copied into a new slot that
becomes its next sibling, and the head slot is then overwritten with the
new character. The chain's first Ref never changes, so nothing above it
needs relinking.

## Iteration

An Iterator keeps the node path from the top level to the current node, one
(ref, toChild) entry per level, in place of parent pointers. Advancing is a
pre-order walk:

	if toChild: clear it, and step into the child chain if there is one
	else if there is a next sibling: replace the top entry with it
	else: pop, and continue the parent's sibling search

stopping at the first node entered that holds a value. Keys are rebuilt
from the path on demand.

## Removal semantics

RemoveKey(k) requires k to be a stored key and prunes it along with every
longer key that starts with k. RemovePrefix(p) prunes the subtree under p
whenever the path resolves, whether or not p itself is stored. Both resolve
the full path before any change, and both treat the empty key as "clear".
*/
package chartrie
