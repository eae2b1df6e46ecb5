package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"chartrie", "--log-level", "NOOP"}, args...))
	return out.String(), err
}

func TestListOrdersAndFoldsKeys(t *testing.T) {
	out, err := run(t, "ls", "beta=3", "alfa=1", "Alfa=2", "gamma=4")
	require.NoError(t, err)

	ia := strings.Index(out, "alfa")
	ib := strings.Index(out, "beta")
	ig := strings.Index(out, "gamma")
	require.True(t, ia >= 0 && ia < ib && ib < ig, out)
	assert.NotContains(t, out, "Alfa")
	assert.Contains(t, out, "3 keys")
}

func TestListCaseSensitive(t *testing.T) {
	out, err := run(t, "--case-sensitive", "ls", "alfa=1", "Alfa=2")
	require.NoError(t, err)
	require.Contains(t, out, "Alfa")
	require.Contains(t, out, "2 keys")
}

func TestListRejectsBadPair(t *testing.T) {
	_, err := run(t, "ls", "alfa")
	require.ErrorIs(t, err, ErrBadPair)
}

func TestGreaterOrEqual(t *testing.T) {
	out, err := run(t, "ge", "b", "alfa=1", "beta=2", "gamma=3")
	require.NoError(t, err)
	assert.NotContains(t, out, "alfa")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "gamma")
}

func TestRemove(t *testing.T) {
	out, err := run(t, "rm", "al", "alfa=1", "beta=2")
	require.NoError(t, err)
	assert.Contains(t, out, "not done")
	assert.Contains(t, out, "alfa")

	out, err = run(t, "rm", "--prefix", "al", "alfa=1", "beta=2")
	require.NoError(t, err)
	assert.NotContains(t, out, "alfa")
	assert.Contains(t, out, "beta")
}

func TestBadLocale(t *testing.T) {
	_, err := run(t, "--locale", "not a tag!", "ls")
	require.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, err := run(t, "--locale", "ru", "demo")
	require.NoError(t, err)

	for _, want := range []string{"альфа", "амьфа", "бета", "эпсилон", "keys not less than", "done", "not done"} {
		assert.Contains(t, strings.ToLower(out), want)
	}
}

func TestComparator(t *testing.T) {
	less, err := comparator("", false)
	require.NoError(t, err)
	require.False(t, less('a', 'A'))

	less, err = comparator("", true)
	require.NoError(t, err)
	require.True(t, less('A', 'a'))

	less, err = comparator("ru", false)
	require.NoError(t, err)
	require.True(t, less('е', 'ё'))
}
