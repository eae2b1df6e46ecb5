package chars

import "fmt"

// Chars is a growable, owning rune buffer.
//
// The zero value is an empty sequence ready for Append.
type Chars struct {
	runes []rune
}

// New returns an empty buffer with room for capacity runes.
func New(capacity int) Chars {
	if capacity < 0 {
		capacity = 0
	}
	return Chars{runes: make([]rune, 0, capacity)}
}

// FromString decodes s (UTF-8) into a new buffer.
func FromString(s string) Chars {
	return Chars{runes: []rune(s)}
}

// FromBuffer copies the first n runes of buf.
func FromBuffer(buf []rune, n int) (Chars, error) {
	if n < 0 || n > len(buf) {
		return Chars{}, fmt.Errorf("%w: n=%d, len=%d", ErrLengthOutOfRange, n, len(buf))
	}
	c := New(n)
	c.runes = append(c.runes, buf[:n]...)
	return c, nil
}

// FromTerminated copies the runes of buf preceding the first occurrence of
// term. The terminator itself is not part of the result.
func FromTerminated(buf []rune, term rune) (Chars, error) {
	for i, r := range buf {
		if r == term {
			return FromBuffer(buf, i)
		}
	}
	return Chars{}, fmt.Errorf("%w: terminator=%U", ErrNoTerminator, term)
}

// At returns the rune at index i. It panics if i is out of range.
func (c Chars) At(i int) rune {
	if i < 0 || i >= len(c.runes) {
		panic(fmt.Errorf("%w: i=%d, len=%d", ErrIndexOutOfRange, i, len(c.runes)))
	}
	return c.runes[i]
}

func (c Chars) Len() int    { return len(c.runes) }
func (c Chars) Empty() bool { return len(c.runes) == 0 }

// Append adds one rune to the end of the buffer.
func (c *Chars) Append(r rune) {
	c.runes = append(c.runes, r)
}

// Reserve grows the buffer capacity so that n more runes can be appended
// without reallocating.
func (c *Chars) Reserve(n int) {
	if n <= cap(c.runes)-len(c.runes) {
		return
	}
	grown := make([]rune, len(c.runes), len(c.runes)+n)
	copy(grown, c.runes)
	c.runes = grown
}

// Reset empties the buffer, keeping its storage.
func (c *Chars) Reset() {
	c.runes = c.runes[:0]
}

// Runes returns a copy of the buffer contents.
func (c Chars) Runes() []rune {
	out := make([]rune, len(c.runes))
	copy(out, c.runes)
	return out
}

// View borrows the buffer contents. The view is invalidated by any later
// Append that reallocates.
func (c Chars) View() View {
	return View{runes: c.runes}
}

func (c Chars) String() string {
	return string(c.runes)
}
