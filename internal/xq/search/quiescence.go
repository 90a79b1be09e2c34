package search

import (
	"context"

	"github.com/hx233/xiangqi/internal/xq/board"
	"github.com/hx233/xiangqi/internal/xq/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Quiescence extends search beyond the horizon with captures only (or, if
// the side to move is in check, every pseudo-legal move needed to resolve
// it), so the static evaluation is never taken mid-exchange. qdepth is
// bounded by MaxDepth.
func (s *Searcher) Quiescence(ctx context.Context, pos *board.Position, alpha, beta Score, qdepth int) Score {
	if contextx.IsCancelled(ctx) {
		return alpha
	}
	s.nodes++

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth >= MaxDepth {
		return alpha
	}

	inCheck := pos.IsChecked(pos.Turn)
	moves := pos.GenerateMoves(pos.Turn, !inCheck)
	orderCaptures(moves)

	for _, m := range moves {
		pos.ApplyMove(m)
		if pos.IsChecked(m.Side) {
			pos.UndoMove(m)
			continue
		}
		score := -s.Quiescence(ctx, pos, -beta, -alpha, qdepth+1)
		pos.UndoMove(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
