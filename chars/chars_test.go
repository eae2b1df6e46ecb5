package chars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBuffer(t *testing.T) {
	buf := []rune("альфа")

	tests := []struct {
		name    string
		n       int
		want    string
		wantErr error
	}{
		{name: "whole buffer", n: 5, want: "альфа"},
		{name: "prefix", n: 2, want: "ал"},
		{name: "empty", n: 0, want: ""},
		{name: "too long", n: 6, wantErr: ErrLengthOutOfRange},
		{name: "negative", n: -1, wantErr: ErrLengthOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromBuffer(buf, tt.n)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
			assert.Equal(t, tt.n, c.Len())
			assert.Equal(t, tt.n == 0, c.Empty())
		})
	}
}

func TestFromBufferCopies(t *testing.T) {
	buf := []rune("beta")
	c, err := FromBuffer(buf, len(buf))
	require.NoError(t, err)

	buf[0] = 'z'
	require.Equal(t, "beta", c.String())
}

func TestFromTerminated(t *testing.T) {
	c, err := FromTerminated([]rune{'g', 'a', 'm', 0, 'x'}, 0)
	require.NoError(t, err)
	require.Equal(t, "gam", c.String())

	c, err = FromTerminated([]rune{0}, 0)
	require.NoError(t, err)
	require.True(t, c.Empty())

	_, err = FromTerminated([]rune("gamma"), 0)
	require.ErrorIs(t, err, ErrNoTerminator)
}

func TestAppendAndReserve(t *testing.T) {
	c := New(0)
	require.True(t, c.Empty())

	c.Reserve(4)
	for _, r := range "бета" {
		c.Append(r)
	}
	require.Equal(t, 4, c.Len())
	require.Equal(t, 'б', c.At(0))
	require.Equal(t, 'а', c.At(3))
	require.Equal(t, "бета", c.String())

	c.Reset()
	require.True(t, c.Empty())
	require.Equal(t, "", c.String())
}

func TestAtPanicsOutOfRange(t *testing.T) {
	c := FromString("ab")
	require.Panics(t, func() { c.At(2) })
	require.Panics(t, func() { c.At(-1) })

	v := ViewString("ab")
	require.Panics(t, func() { v.At(2) })
	require.Panics(t, func() { v.At(-1) })
	require.Panics(t, func() { View{}.At(0) })
}

func TestRunesIsACopy(t *testing.T) {
	c := FromString("delta")
	rs := c.Runes()
	rs[0] = 'X'
	require.Equal(t, "delta", c.String())
}

func TestViewAndSequence(t *testing.T) {
	src := []rune("epsilon")
	v := ViewOf(src[:3])
	require.Equal(t, 3, v.Len())
	require.Equal(t, "eps", v.String())

	// Views borrow the underlying storage.
	src[0] = 'E'
	require.Equal(t, 'E', v.At(0))

	var seqs = []Sequence{FromString("eta"), ViewString("eta"), ptr(FromString("eta"))}
	for _, s := range seqs {
		assert.Equal(t, "eta", ToString(s))
		assert.False(t, Empty(s))
	}
	require.True(t, Empty(nil))
	require.True(t, Empty(View{}))
	require.Equal(t, "", ToString(nil))
}

type upper struct{ s []rune }

func (u upper) At(i int) rune { return u.s[i] - 'a' + 'A' }
func (u upper) Len() int      { return len(u.s) }

func TestToStringGenericSequence(t *testing.T) {
	require.Equal(t, "ZETA", ToString(upper{s: []rune("zeta")}))
}

func ptr(c Chars) *Chars { return &c }
