package search

import (
	"context"

	"github.com/hx233/xiangqi/internal/xq/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// IterativeDeepening runs PVS at increasing depths from 1 through maxDepth,
// retaining the best move found at each completed depth and returning the
// last one. The transposition table, killers, and history persist across
// iterations so each deeper pass benefits from the previous one's move
// ordering. ctx is checked between iterations (never mid-node within an
// iteration beyond PVS's own per-node check), so a cancelled context
// returns the best move found so far rather than blocking to full depth.
func (s *Searcher) IterativeDeepening(ctx context.Context, pos *board.Position, maxDepth int) (Score, board.Move) {
	s.nodes = 0
	s.moveStack = s.moveStack[:0]
	s.zobStack = s.zobStack[:0]
	s.checkStack = s.checkStack[:0]

	var score Score
	var best board.Move

	for depth := 1; depth <= maxDepth; depth++ {
		if contextx.IsCancelled(ctx) {
			break
		}
		s.ply = 0
		sc, mv := s.PVS(ctx, pos, depth, MateMin, Mate, true)
		if contextx.IsCancelled(ctx) {
			break
		}
		score, best = sc, mv
		if isMateScore(score) {
			break
		}
	}
	return score, best
}
