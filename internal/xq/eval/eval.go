// Package eval is the Evaluator component: it exposes the position's static
// score to the Searcher without either package importing the other through
// a cycle. Material values and piece-square tables live in board (so that
// Position's own incremental bookkeeping can use them directly); this
// package re-exports them as the evaluator's public surface and provides the
// free-standing Evaluate entry point the searcher calls.
package eval

import "github.com/hx233/xiangqi/internal/xq/board"

// InitiativeBonus is added to the side-to-move's score, reflecting the
// tempo advantage of having the move.
const InitiativeBonus = board.InitiativeBonus

// MaterialValue returns the nominal material value of a piece kind.
func MaterialValue(k board.Kind) int {
	return board.MaterialValue(k)
}

// Evaluate returns pos's static evaluation from the side-to-move's
// perspective: the incremental material+PST difference between sides, plus
// InitiativeBonus. It never recomputes the incremental sums from scratch;
// Position.ApplyMove/UndoMove/Set are responsible for keeping VLRed/VLBlack
// exact.
func Evaluate(pos *board.Position) int {
	return pos.Evaluate()
}
