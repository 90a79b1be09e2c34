package search

import (
	"context"
	"testing"

	"github.com/hx233/xiangqi/internal/xq/board"
	"github.com/hx233/xiangqi/internal/xq/eval"
	"github.com/hx233/xiangqi/internal/xq/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiescenceStandsPatWhenEveryCaptureLoses(t *testing.T) {
	primary, lock := zobrist.NewTables(1), zobrist.NewTables(2)
	pos := board.NewInitialPosition(primary, lock)

	s := NewSearcher()
	score := s.Quiescence(context.Background(), pos, MateMin, Mate, 0)
	assert.Equal(t, eval.Evaluate(pos), score, "both opening cannon-takes-knight captures lose the cannon to a rook recapture, so quiescence returns the static evaluation")
}

func TestQuiescenceResolvesAFreeCapture(t *testing.T) {
	primary, lock := zobrist.NewTables(1), zobrist.NewTables(2)
	const fen = "5k3/9/9/9/9/1r1R5/9/9/9/4K4 b"
	pos, err := board.DecodeFEN(primary, lock, fen)
	require.NoError(t, err)

	s := NewSearcher()
	standPat := eval.Evaluate(pos)
	score := s.Quiescence(context.Background(), pos, MateMin, Mate, 0)
	assert.Greater(t, score, standPat, "capturing the undefended rook must beat standing pat")
}

func TestQuiescenceRespectsBetaCutoff(t *testing.T) {
	primary, lock := zobrist.NewTables(1), zobrist.NewTables(2)
	pos := board.NewInitialPosition(primary, lock)

	s := NewSearcher()
	standPat := eval.Evaluate(pos)
	score := s.Quiescence(context.Background(), pos, MateMin, standPat-1, 0)
	assert.Equal(t, standPat-1, score, "a stand-pat score at or above beta returns beta")
}
