package board_test

import (
	"testing"

	"github.com/hx233/xiangqi/internal/xq/board"
	"github.com/hx233/xiangqi/internal/xq/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTables() (*zobrist.Tables, *zobrist.Tables) {
	return zobrist.NewTables(11), zobrist.NewTables(22)
}

// recompute independently re-derives Zob/ZobLock/VLRed/VLBlack from pos's
// grid and turn, without using any of Position's own incremental bookkeeping,
// so it can check that bookkeeping for drift.
func recompute(t *testing.T, primary, lock *zobrist.Tables, pos *board.Position) (zobrist.Hash, zobrist.Hash, int, int) {
	t.Helper()

	var zob, zobLock zobrist.Hash
	var vlRed, vlBlack int
	for i := 0; i < board.NumSquares; i++ {
		sq := board.FromIndex(i)
		piece := pos.At(sq)
		if piece.IsEmpty() {
			continue
		}
		idx := pieceIndexForTest(piece.Kind, piece.Side)
		zob ^= primary.PieceKey(idx, i)
		zobLock ^= lock.PieceKey(idx, i)

		v := board.PieceValue(piece.Kind, piece.Side, sq)
		if piece.Side == board.Red {
			vlRed += v
		} else {
			vlBlack += v
		}
	}
	if pos.Turn == board.Black {
		zob ^= primary.TurnKey()
		zobLock ^= lock.TurnKey()
	}
	return zob, zobLock, vlRed, vlBlack
}

// pieceIndexForTest mirrors board's internal (kind,side)->index mapping
// using only exported facts (there are 7 real kinds), so this test file
// doesn't need an exported accessor for an internal helper.
func pieceIndexForTest(k board.Kind, s board.Side) int {
	const numPieceKinds = 7
	return (int(k) - 1) + int(s)*numPieceKinds
}

func assertConsistent(t *testing.T, primary, lock *zobrist.Tables, pos *board.Position) {
	t.Helper()
	wantZob, wantZobLock, wantRed, wantBlack := recompute(t, primary, lock, pos)
	assert.Equal(t, wantZob, pos.Zob, "Zob drifted from full recompute")
	assert.Equal(t, wantZobLock, pos.ZobLock, "ZobLock drifted from full recompute")
	assert.Equal(t, wantRed, pos.VLRed, "VLRed drifted from full recompute")
	assert.Equal(t, wantBlack, pos.VLBlack, "VLBlack drifted from full recompute")
}

func TestInitialPositionConsistent(t *testing.T) {
	primary, lock := newTestTables()
	pos := board.NewInitialPosition(primary, lock)
	assertConsistent(t, primary, lock, pos)
	assert.Equal(t, board.Red, pos.Turn)
}

func TestInitialPositionRootMoveCount(t *testing.T) {
	primary, lock := newTestTables()
	pos := board.NewInitialPosition(primary, lock)

	moves := pos.LegalMoves(board.Red)
	assert.Len(t, moves, 44)
}

func TestApplyUndoRoundTrip(t *testing.T) {
	primary, lock := newTestTables()
	pos := board.NewInitialPosition(primary, lock)

	before := *pos
	moves := pos.LegalMoves(board.Red)
	require.NotEmpty(t, moves)

	for _, m := range moves {
		pos.ApplyMove(m)
		assertConsistent(t, primary, lock, pos)
		pos.UndoMove(m)

		assert.Equal(t, before.Grid, pos.Grid)
		assert.Equal(t, before.Turn, pos.Turn)
		assert.Equal(t, before.Zob, pos.Zob)
		assert.Equal(t, before.ZobLock, pos.ZobLock)
		assert.Equal(t, before.VLRed, pos.VLRed)
		assert.Equal(t, before.VLBlack, pos.VLBlack)
	}
}

func TestRandomPlayoutStaysConsistent(t *testing.T) {
	primary, lock := newTestTables()
	pos := board.NewInitialPosition(primary, lock)

	r := newDeterministicPicker(99)
	for i := 0; i < 200; i++ {
		moves := pos.LegalMoves(pos.Turn)
		if len(moves) == 0 {
			break
		}
		m := moves[r.next(len(moves))]
		pos.ApplyMove(m)
		assertConsistent(t, primary, lock, pos)
	}
}

// deterministicPicker is a tiny linear-congruential generator so the random
// playout test is reproducible without importing math/rand for one index
// pick per ply.
type deterministicPicker struct{ state uint64 }

func newDeterministicPicker(seed uint64) *deterministicPicker {
	return &deterministicPicker{state: seed}
}

func (p *deterministicPicker) next(n int) int {
	p.state = p.state*6364136223846793005 + 1442695040888963407
	return int((p.state >> 33) % uint64(n))
}

func TestNullMoveIdempotence(t *testing.T) {
	primary, lock := newTestTables()
	pos := board.NewInitialPosition(primary, lock)

	before := *pos
	pos.DoNullMove()
	assert.NotEqual(t, before.Turn, pos.Turn)
	assert.Equal(t, before.Grid, pos.Grid)
	assert.Equal(t, before.Zob, pos.Zob, "null move must not touch Zob")
	assert.Equal(t, before.ZobLock, pos.ZobLock, "null move must not touch ZobLock")

	pos.UndoNullMove()
	assert.Equal(t, before.Turn, pos.Turn)
	assert.Equal(t, before.Grid, pos.Grid)
}

func TestFENRoundTrip(t *testing.T) {
	primary, lock := newTestTables()
	const fen = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

	pos, err := board.DecodeFEN(primary, lock, fen)
	require.NoError(t, err)
	assertConsistent(t, primary, lock, pos)
	assert.Equal(t, fen, pos.EncodeFEN())
}

func TestDecodeFENSkipsUnrecognizedPieceLetters(t *testing.T) {
	primary, lock := newTestTables()
	// 'x' and 'Q' aren't Xiangqi piece letters; the squares they occupy
	// decode as empty instead of aborting the whole rank.
	const fen = "4k4/9/9/9/9/9/4x4/9/9/3QK4 w"
	pos, err := board.DecodeFEN(primary, lock, fen)
	require.NoError(t, err)

	assert.True(t, pos.At(board.NewSquare(6, 4)).IsEmpty())
	assert.True(t, pos.At(board.NewSquare(9, 3)).IsEmpty())
	assert.Equal(t, board.King, pos.At(board.NewSquare(9, 4)).Kind)
}

func TestFlyingGeneralInitialPositionNotChecked(t *testing.T) {
	primary, lock := newTestTables()
	pos := board.NewInitialPosition(primary, lock)
	assert.False(t, pos.IsChecked(board.Red))
	assert.False(t, pos.IsChecked(board.Black))
}

func TestFlyingGeneralOpenFileIsCheck(t *testing.T) {
	primary, lock := newTestTables()
	// Both Kings on the central file with nothing between them.
	const fen = "4k4/9/9/9/9/9/9/9/9/4K4 w"
	pos, err := board.DecodeFEN(primary, lock, fen)
	require.NoError(t, err)

	assert.True(t, pos.IsChecked(board.Red))
	assert.True(t, pos.IsChecked(board.Black))
}

func TestEvaluateSideToMoveSymmetry(t *testing.T) {
	primary, lock := newTestTables()
	pos := board.NewInitialPosition(primary, lock)
	assert.Equal(t, pos.VLRed-pos.VLBlack+board.InitiativeBonus, pos.Evaluate())
}
