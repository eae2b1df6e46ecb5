/*
Package chars provides the character sequences consumed by chartrie.

There is one owning type, Chars, a growable rune buffer, and one borrowed
type, View, for keys that are only read during a lookup. Both satisfy
Sequence, which is all the trie ever reads a key through:

	At(i)  // zero-based indexed access
	Len()  // explicit length

The trie only appends when it rebuilds a matched key from an iterator path,
one rune at a time, so Chars is tuned for Append and Reserve.

Explicit-length and terminator-delimited construction are both supported:

	FromBuffer(buf, n)        // first n runes of buf
	FromTerminated(buf, 0)    // runes of buf up to the first 0
*/
package chars
