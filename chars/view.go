package chars

import "fmt"

// View is a non-owning, fixed-length window onto runes owned elsewhere.
// Use it for keys that are only read, never stored.
type View struct {
	runes []rune
}

// ViewOf borrows runes. The caller must not modify runes while the view is
// in use.
func ViewOf(runes []rune) View {
	return View{runes: runes}
}

// ViewString decodes s into a view. The decoded runes are owned by the view.
func ViewString(s string) View {
	return View{runes: []rune(s)}
}

// At returns the rune at index i. It panics if i is out of range.
func (v View) At(i int) rune {
	if i < 0 || i >= len(v.runes) {
		panic(fmt.Errorf("%w: i=%d, len=%d", ErrIndexOutOfRange, i, len(v.runes)))
	}
	return v.runes[i]
}

func (v View) Len() int    { return len(v.runes) }
func (v View) Empty() bool { return len(v.runes) == 0 }

func (v View) String() string {
	return string(v.runes)
}
