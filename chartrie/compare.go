package chartrie

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Less is a strict weak order over single characters. Both "less" and
// "equal" are derived from it: a and b are equal when neither is less than
// the other.
type Less func(a, b rune) bool

// FoldLess orders characters by their lower case forms. It is the default
// comparator, so "Alfa" and "alfa" address the same key.
func FoldLess(a, b rune) bool {
	return unicode.ToLower(a) < unicode.ToLower(b)
}

// ExactLess orders characters by code point.
func ExactLess(a, b rune) bool {
	return a < b
}

// CollatorLess orders characters by the collation rules of tag, ignoring
// case. With language.Russian for example 'ё' sorts between 'е' and 'ж'
// rather than after 'я' as it does by code point.
//
// The returned comparator holds a collator and is not safe for concurrent
// use.
func CollatorLess(tag language.Tag, opts ...collate.Option) Less {
	if len(opts) == 0 {
		opts = []collate.Option{collate.IgnoreCase}
	}
	c := collate.New(tag, opts...)
	var ab, bb [4]byte
	return func(a, b rune) bool {
		if a == b {
			return false
		}
		return c.Compare(utf8.AppendRune(ab[:0], a), utf8.AppendRune(bb[:0], b)) < 0
	}
}

func isLess(less Less, a, b rune) bool {
	if a == b {
		return false
	}
	return less(a, b)
}

func isEqual(less Less, a, b rune) bool {
	if a == b {
		return true
	}
	return !less(a, b) && !less(b, a)
}
