package trietesting

import (
	"sort"
	"unicode"
)

// Entry is one stored key and its value.
type Entry[V any] struct {
	Key   string
	Value V
}

// Model is a deliberately simple sorted slice map with the same key
// equivalence and ordering as a trie using the comparator less. It is the
// reference that trie behaviour is checked against.
type Model[V any] struct {
	less    func(a, b rune) bool
	entries []Entry[V]
}

func NewModel[V any](less func(a, b rune) bool) *Model[V] {
	return &Model[V]{less: less}
}

// Compare orders a and b character by character, a strict prefix first.
func (m *Model[V]) Compare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] == rb[i] {
			continue
		}
		if m.less(ra[i], rb[i]) {
			return -1
		}
		if m.less(rb[i], ra[i]) {
			return 1
		}
	}
	switch {
	case len(ra) < len(rb):
		return -1
	case len(ra) > len(rb):
		return 1
	}
	return 0
}

func (m *Model[V]) search(key string) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.Compare(m.entries[i].Key, key) >= 0
	})
}

// Put stores value under key. Spelling follows the trie rule: each prefix
// keeps the characters of the first key stored through it, so an equivalent
// key already present keeps its original spelling.
func (m *Model[V]) Put(key string, value V) {
	if key == "" {
		return
	}
	key = m.canonical(key)
	i := m.search(key)
	if i < len(m.entries) && m.Compare(m.entries[i].Key, key) == 0 {
		m.entries[i].Value = value
		return
	}
	m.entries = append(m.entries, Entry[V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = Entry[V]{Key: key, Value: value}
}

func (m *Model[V]) canonical(key string) string {
	rk := []rune(key)
	var best []rune
	for _, e := range m.entries {
		re := []rune(e.Key)
		l := 0
		for l < len(re) && l < len(rk) && m.equal(re[l], rk[l]) {
			l++
		}
		if l > len(best) {
			best = re[:l]
		}
	}
	copy(rk, best)
	return string(rk)
}

func (m *Model[V]) equal(a, b rune) bool {
	return a == b || (!m.less(a, b) && !m.less(b, a))
}

func (m *Model[V]) Get(key string) (V, bool) {
	i := m.search(key)
	if i < len(m.entries) && m.Compare(m.entries[i].Key, key) == 0 {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// HasPrefix reports whether key starts with prefix under the comparator.
func (m *Model[V]) HasPrefix(key, prefix string) bool {
	rk, rp := []rune(key), []rune(prefix)
	if len(rp) > len(rk) {
		return false
	}
	return m.Compare(string(rk[:len(rp)]), prefix) == 0
}

// DeletePrefix removes every key starting with prefix and reports how many
// were removed.
func (m *Model[V]) DeletePrefix(prefix string) int {
	kept := m.entries[:0]
	removed := 0
	for _, e := range m.entries {
		if m.HasPrefix(e.Key, prefix) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return removed
}

// LowerBound returns the first entry not less than key.
func (m *Model[V]) LowerBound(key string) (Entry[V], bool) {
	i := m.search(key)
	if i < len(m.entries) {
		return m.entries[i], true
	}
	return Entry[V]{}, false
}

// Entries returns the stored entries in ascending order, nil when the
// model is empty.
func (m *Model[V]) Entries() []Entry[V] {
	if len(m.entries) == 0 {
		return nil
	}
	out := make([]Entry[V], len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Model[V]) Len() int { return len(m.entries) }

func upper(r rune) rune { return unicode.ToUpper(r) }
