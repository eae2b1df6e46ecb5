package trietesting

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func foldLess(a, b rune) bool { return unicode.ToLower(a) < unicode.ToLower(b) }

func TestModelOrderingAndFold(t *testing.T) {
	m := NewModel[int](foldLess)
	m.Put("beta", 3)
	m.Put("alfa", 1)
	m.Put("Alfa", 2)
	m.Put("al", 5)
	m.Put("gamma", 4)

	require.Equal(t, []Entry[int]{
		{Key: "al", Value: 5},
		{Key: "alfa", Value: 2},
		{Key: "beta", Value: 3},
		{Key: "gamma", Value: 4},
	}, m.Entries())

	v, ok := m.Get("ALFA")
	require.True(t, ok)
	require.Equal(t, 2, v)

	e, ok := m.LowerBound("b")
	require.True(t, ok)
	require.Equal(t, "beta", e.Key)

	_, ok = m.LowerBound("h")
	require.False(t, ok)

	require.Equal(t, 2, m.DeletePrefix("AL"))
	require.Equal(t, 2, m.Len())
}

func TestKeysDeterministic(t *testing.T) {
	cfg := TestConfig{Seed: 42, TestLabelPrefix: "keys"}
	a := NewTestContext(t, cfg)
	b := NewTestContext(t, cfg)

	kc := KeyConfig{MinLen: 1, MaxLen: 6, MixCase: true}
	ka := a.Keys(64, kc)
	require.Equal(t, ka, b.Keys(64, kc))
	for _, k := range ka {
		n := len([]rune(k))
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 6)
	}
	require.NotNil(t, a.GetLog())
}

func TestModelEntriesEmpty(t *testing.T) {
	m := NewModel[int](foldLess)
	require.Nil(t, m.Entries())

	m.Put("alfa", 1)
	require.Equal(t, 1, m.DeletePrefix("al"))
	require.Nil(t, m.Entries())
	require.Zero(t, m.Len())
}
