package book_test

import (
	"strings"
	"testing"

	"github.com/hx233/xiangqi/internal/xq/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookFromLinesQuery(t *testing.T) {
	lines := []string{
		"# comment",
		"",
		"1 2 h2e2",
		"3 4 c3c4 5",
	}
	b, err := book.NewBookFromLines(lines)
	require.NoError(t, err)

	mv, ok := b.Query(1, 2)
	assert.True(t, ok)
	assert.Equal(t, "h2e2", mv)

	mv, ok = b.Query(3, 4)
	assert.True(t, ok)
	assert.Equal(t, "c3c4", mv)
}

func TestQueryMissOnUnknownZob(t *testing.T) {
	b, err := book.NewBookFromLines([]string{"1 2 h2e2"})
	require.NoError(t, err)

	_, ok := b.Query(99, 99)
	assert.False(t, ok)
}

func TestQueryMissOnLockMismatch(t *testing.T) {
	b, err := book.NewBookFromLines([]string{"1 2 h2e2"})
	require.NoError(t, err)

	_, ok := b.Query(1, 999)
	assert.False(t, ok, "a matching Zob with a different ZobLock must not count as a hit")
}

func TestQueryExcludesEntrySharingZobWithDifferentLock(t *testing.T) {
	b, err := book.NewBookFromLines([]string{
		"10 1 a0a1 1",
		"10 2 b0b1 1",
	})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		mv, ok := b.Query(10, 1)
		require.True(t, ok)
		seen[mv] = true
	}
	assert.True(t, seen["a0a1"])
	assert.False(t, seen["b0b1"], "a ZobLock mismatch must exclude the other entry even when Zob collides")
}

func TestNewBookFromLinesRejectsMalformedLine(t *testing.T) {
	_, err := book.NewBookFromLines([]string{"not enough fields"})
	assert.Error(t, err)

	_, err = book.NewBookFromLines([]string{"zz 2 h2e2"})
	assert.Error(t, err)
}

func TestNewBookFromReader(t *testing.T) {
	r := strings.NewReader("1 2 h2e2\n3 4 c3c4\n")
	b, err := book.NewBookFromReader(r)
	require.NoError(t, err)

	mv, ok := b.Query(3, 4)
	assert.True(t, ok)
	assert.Equal(t, "c3c4", mv)
}
