package wordfreq

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	counts, err := Count(strings.NewReader("the quick the\nfox\tthe quick"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"the": 3, "quick": 2, "fox": 1}, counts)
}

func TestCountUnicodeWhitespace(t *testing.T) {
	// words split on any unicode space, and keep their non-ASCII letters
	counts, err := Count(strings.NewReader("héllo\u00a0wörld héllo"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"héllo": 2, "wörld": 1}, counts)
}

func TestCountEmpty(t *testing.T) {
	counts, err := Count(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestCountReaderError(t *testing.T) {
	readErr := errors.New("disk detached")
	_, err := Count(iotest.ErrReader(readErr))
	require.ErrorIs(t, err, readErr)
}

func TestSortedOrder(t *testing.T) {
	entries := Sorted(map[string]int{"ab": 1, "b": 2, "aa": 1, "x": 2})

	// count descending, ties by word descending
	assert.Equal(t, []Entry{
		{Word: "x", Count: 2},
		{Word: "b", Count: 2},
		{Word: "ab", Count: 1},
		{Word: "aa", Count: 1},
	}, entries)
}

func TestSortedEmpty(t *testing.T) {
	assert.Empty(t, Sorted(nil))
}
