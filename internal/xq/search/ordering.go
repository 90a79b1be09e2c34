package search

import (
	"sort"

	"github.com/hx233/xiangqi/internal/xq/board"
	"github.com/hx233/xiangqi/internal/xq/eval"
)

// mvvLVA scores a capturing move by "most valuable victim, least valuable
// attacker": 10x the captured piece's material value minus the mover's.
// Non-captures score 0.
func mvvLVA(m board.Move) int {
	if m.Captured == board.NoKind {
		return 0
	}
	return 10*eval.MaterialValue(m.Captured) - eval.MaterialValue(m.Moved)
}

// orderMoves sorts moves in place by composite key: the transposition-table
// move first, then this ply's two killer moves, then MVV/LVA, then the
// history counter for (from, to). The sort is not required to be stable.
func (s *Searcher) orderMoves(moves []board.Move, ttMove board.Move) {
	killers := s.killers[0][:0]
	if s.ply < len(s.killers) {
		killers = s.killers[s.ply][:]
	}

	rank := func(m board.Move) int {
		switch {
		case ttMove.IsValidShape() && m == ttMove:
			return 0
		case len(killers) > 0 && m == killers[0]:
			return 1
		case len(killers) > 1 && m == killers[1]:
			return 2
		default:
			return 3
		}
	}

	sort.Slice(moves, func(i, j int) bool {
		ri, rj := rank(moves[i]), rank(moves[j])
		if ri != rj {
			return ri < rj
		}
		if ri != 3 {
			return false
		}
		vi, vj := mvvLVA(moves[i]), mvvLVA(moves[j])
		if vi != vj {
			return vi > vj
		}
		hi := s.history[moves[i].From.Index()*board.NumSquares+moves[i].To.Index()]
		hj := s.history[moves[j].From.Index()*board.NumSquares+moves[j].To.Index()]
		return hi > hj
	})
}

// orderCaptures sorts capture-only move lists (quiescence search) purely by
// MVV/LVA.
func orderCaptures(moves []board.Move) {
	sort.Slice(moves, func(i, j int) bool {
		return mvvLVA(moves[i]) > mvvLVA(moves[j])
	})
}
