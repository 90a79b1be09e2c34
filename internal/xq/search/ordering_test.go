package search

import (
	"testing"

	"github.com/hx233/xiangqi/internal/xq/board"
	"github.com/stretchr/testify/assert"
)

func TestMvvLVAPrefersValuableVictimsAndCheapAttackers(t *testing.T) {
	cheapAttackerBigVictim := board.Move{Moved: board.Pawn, Captured: board.Rook}
	bigAttackerBigVictim := board.Move{Moved: board.Rook, Captured: board.Rook}
	quiet := board.Move{Moved: board.Rook}

	assert.Greater(t, mvvLVA(cheapAttackerBigVictim), mvvLVA(bigAttackerBigVictim))
	assert.Zero(t, mvvLVA(quiet))
}

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	s := NewSearcher()
	tt := board.Move{From: board.NewSquare(9, 4), To: board.NewSquare(8, 4), Moved: board.King}
	other := board.Move{From: board.NewSquare(9, 0), To: board.NewSquare(8, 0), Moved: board.Rook}
	capture := board.Move{From: board.NewSquare(7, 1), To: board.NewSquare(3, 1), Moved: board.Cannon, Captured: board.Pawn}

	moves := []board.Move{other, capture, tt}
	s.orderMoves(moves, tt)
	assert.Equal(t, tt, moves[0])
}

func TestOrderMovesPutsKillersBeforeQuietMoves(t *testing.T) {
	s := NewSearcher()
	killer := board.Move{From: board.NewSquare(9, 8), To: board.NewSquare(8, 8), Moved: board.Rook}
	other := board.Move{From: board.NewSquare(9, 0), To: board.NewSquare(8, 0), Moved: board.Rook}
	s.recordKiller(killer)

	moves := []board.Move{other, killer}
	s.orderMoves(moves, board.Move{})
	assert.Equal(t, killer, moves[0])
}

func TestOrderCapturesSortsPurelyByMvvLVA(t *testing.T) {
	low := board.Move{Moved: board.Rook, Captured: board.Pawn}
	high := board.Move{Moved: board.Pawn, Captured: board.Rook}

	moves := []board.Move{low, high}
	orderCaptures(moves)
	assert.Equal(t, high, moves[0])
}
