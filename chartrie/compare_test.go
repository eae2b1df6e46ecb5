package chartrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFoldLess(t *testing.T) {
	assert.True(t, FoldLess('a', 'B'))
	assert.True(t, FoldLess('A', 'b'))
	assert.False(t, FoldLess('a', 'A'))
	assert.False(t, FoldLess('A', 'a'))
	assert.True(t, FoldLess('а', 'Б'))
	assert.True(t, isEqual(FoldLess, 'Я', 'я'))
	assert.False(t, isLess(FoldLess, 'x', 'x'))
}

func TestExactLess(t *testing.T) {
	assert.True(t, ExactLess('A', 'a'))
	assert.False(t, isEqual(ExactLess, 'A', 'a'))
}

func TestCollatorLessRussian(t *testing.T) {
	less := CollatorLess(language.Russian)

	// By code point 'ё' (U+0451) follows 'я' (U+044F).
	require.True(t, FoldLess('я', 'ё'))
	require.True(t, less('е', 'ё'))
	require.True(t, less('ё', 'ж'))
	require.True(t, isEqual(less, 'Ё', 'ё'))
	require.False(t, less('a', 'a'))

	tr := New[int](WithComparator(less))
	for i, k := range []string{"ёж", "жук", "ель", "Ёлка"} {
		tr.Add(k, i)
	}
	var got []string
	for k := range tr.Keys() {
		got = append(got, k)
	}
	require.Equal(t, []string{"ель", "ёж", "ёлка", "жук"}, got)
}
