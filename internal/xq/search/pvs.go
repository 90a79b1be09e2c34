package search

import (
	"context"

	"github.com/hx233/xiangqi/internal/xq/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// nullMoveSafe reports whether pos.Turn's own material+PST total is above
// 200 -- a cheap proxy for "has non-pawn material beyond palace pieces",
// used to gate null-move pruning against zugzwang-prone endgames.
func nullMoveSafe(pos *board.Position) bool {
	if pos.Turn == board.Red {
		return pos.VLRed > 200
	}
	return pos.VLBlack > 200
}

// applyAndPush applies m to pos and, if it leaves the mover's own King in
// check, undoes it and reports illegal. Otherwise it pushes the move onto
// the repetition-detection stacks and advances ply.
func (s *Searcher) applyAndPush(pos *board.Position, m board.Move) (inCheckAfter, legal bool) {
	preZob := uint64(pos.Zob)
	pos.ApplyMove(m)
	if pos.IsChecked(m.Side) {
		pos.UndoMove(m)
		return false, false
	}
	inCheckAfter = pos.IsChecked(pos.Turn)
	s.push(m, preZob, inCheckAfter)
	return inCheckAfter, true
}

func (s *Searcher) undoAndPop(pos *board.Position, m board.Move) {
	pos.UndoMove(m)
	s.pop()
}

// PVS is principal variation search over pos at depth with window
// (alpha, beta), from pos.Turn's perspective. allowNull permits one
// null-move pruning attempt at this node. It returns the score and, when
// one exists, the best move found.
func (s *Searcher) PVS(ctx context.Context, pos *board.Position, depth int, alpha, beta Score, allowNull bool) (Score, board.Move) {
	if contextx.IsCancelled(ctx) {
		return alpha, board.Move{}
	}
	s.nodes++

	zob, zobLock := uint64(pos.Zob), uint64(pos.ZobLock)

	var ttMove board.Move
	if score, ttDepth, flag, best, ok := s.tt.Probe(zob, zobLock, s.ply); ok {
		ttMove = best
		if ttDepth >= depth {
			switch flag {
			case Exact:
				return score, best
			case UpperBound:
				if score <= alpha {
					return score, best
				}
			case LowerBound:
				if score >= beta {
					return score, best
				}
			}
		}
	}

	if s.ply > 0 {
		if status := s.RepStatus(zob, 1); status != 0 {
			return RepValue(status, s.ply), board.Move{}
		}
	}

	if depth == 0 {
		return s.Quiescence(ctx, pos, alpha, beta, 0), board.Move{}
	}

	inCheck := pos.IsChecked(pos.Turn)

	if allowNull && depth >= 3 && !inCheck && nullMoveSafe(pos) {
		pos.DoNullMove()
		s.pushNull()
		score, _ := s.PVS(ctx, pos, depth-3, -beta, -beta+1, false)
		s.popNull()
		pos.UndoNullMove()
		if -score >= beta {
			return beta, board.Move{}
		}
	}

	var best board.Move
	raisedAlpha := false
	searchedFullWindow := false

	if ttMove.IsValidShape() && pos.IsValidMove(ttMove) {
		if inCheckAfter, legal := s.applyAndPush(pos, ttMove); legal {
			childDepth := depth - 1
			if inCheckAfter {
				childDepth = depth
			}
			score, _ := s.PVS(ctx, pos, childDepth, -beta, -alpha, true)
			score = -score
			s.undoAndPop(pos, ttMove)
			searchedFullWindow = true

			if score >= beta {
				s.recordKiller(ttMove)
				s.recordHistory(ttMove, depth)
				s.tt.Store(zob, zobLock, s.ply, depth, score, LowerBound, ttMove)
				return score, ttMove
			}
			if score > alpha {
				alpha = score
				best = ttMove
				raisedAlpha = true
			}
		}
	}

	moves := pos.GenerateMoves(pos.Turn, false)
	s.orderMoves(moves, ttMove)

	legalMoves := 0
	if searchedFullWindow {
		legalMoves = 1
	}
	firstOfLoop := !searchedFullWindow

	for _, m := range moves {
		if searchedFullWindow && m == ttMove {
			continue
		}

		inCheckAfter, legal := s.applyAndPush(pos, m)
		if !legal {
			continue
		}
		legalMoves++

		childDepth := depth - 1
		if inCheckAfter {
			childDepth = depth
		}

		var score Score
		if firstOfLoop {
			score, _ = s.PVS(ctx, pos, childDepth, -beta, -alpha, true)
			score = -score
			firstOfLoop = false
		} else {
			score, _ = s.PVS(ctx, pos, childDepth, -alpha-1, -alpha, false)
			score = -score
			if score > alpha && score < beta {
				score, _ = s.PVS(ctx, pos, childDepth, -beta, -alpha, true)
				score = -score
			}
		}

		s.undoAndPop(pos, m)

		if score >= beta {
			s.recordKiller(m)
			s.recordHistory(m, depth)
			s.tt.Store(zob, zobLock, s.ply, depth, score, LowerBound, m)
			return score, m
		}
		if score > alpha {
			alpha = score
			best = m
			raisedAlpha = true
		}
	}

	if legalMoves == 0 {
		return MateMin + Score(s.ply), board.Move{}
	}

	flag := UpperBound
	if raisedAlpha {
		flag = Exact
	}
	s.tt.Store(zob, zobLock, s.ply, depth, alpha, flag, best)
	return alpha, best
}
