package chars

// Sequence is the read-only view of a key: indexed access bounded by an
// explicit length.
type Sequence interface {
	At(i int) rune
	Len() int
}

// Empty reports whether s has no characters.
func Empty(s Sequence) bool {
	return s == nil || s.Len() == 0
}

// ToString renders any sequence as a string.
func ToString(s Sequence) string {
	if s == nil {
		return ""
	}
	switch v := s.(type) {
	case Chars:
		return v.String()
	case *Chars:
		return v.String()
	case View:
		return v.String()
	}
	n := s.Len()
	rs := make([]rune, n)
	for i := 0; i < n; i++ {
		rs[i] = s.At(i)
	}
	return string(rs)
}
