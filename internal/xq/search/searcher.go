// Package search implements iterative-deepening principal variation search
// over a board.Position: alpha-beta with null-move pruning, check
// extensions, quiescence, a transposition table, killer moves, the history
// heuristic, MVV/LVA ordering, and repetition/perpetual-check detection.
package search

import "github.com/hx233/xiangqi/internal/xq/board"

// historySize is 90*90: one history counter per (from, to) square pair.
const historySize = board.NumSquares * board.NumSquares

// Searcher holds all mutable state for a search: the transposition table
// (which survives across searches), killer moves and history counters
// (which accelerate iterative deepening within a search but are also safe
// to keep warm across searches), and the three lock-step stacks used for
// repetition detection. A Searcher must not be used by two goroutines
// concurrently.
type Searcher struct {
	tt *Table

	killers [][2]board.Move
	history [historySize]int

	moveStack  []board.Move
	zobStack   []uint64
	checkStack []bool

	ply   int
	nodes uint64
}

// NewSearcher returns a Searcher with a freshly allocated transposition
// table and per-ply killer slots sized for MaxDepth-deep searches.
func NewSearcher() *Searcher {
	return &Searcher{
		tt:      NewTable(),
		killers: make([][2]board.Move, MaxDepth+1),
	}
}

// Nodes returns the number of search nodes visited since the Searcher was
// created or last reset by a new IterativeDeepening call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// push records m as having just been applied to pos (whose Zob field holds
// the hash *after* the move), the hash that held before the move, and
// whether the side to move after m is in check. It advances ply. push must
// be paired with a pop in LIFO order.
func (s *Searcher) push(m board.Move, preZob uint64, inCheckAfter bool) {
	s.moveStack = append(s.moveStack, m)
	s.zobStack = append(s.zobStack, preZob)
	s.checkStack = append(s.checkStack, inCheckAfter)
	s.ply++
}

func (s *Searcher) pop() {
	s.moveStack = s.moveStack[:len(s.moveStack)-1]
	s.zobStack = s.zobStack[:len(s.zobStack)-1]
	s.checkStack = s.checkStack[:len(s.checkStack)-1]
	s.ply--
}

// pushNull/popNull advance/retreat ply for a null move without touching the
// move-history stacks used by repetition detection, matching the design's
// null-move semantics.
func (s *Searcher) pushNull() {
	s.ply++
}

func (s *Searcher) popNull() {
	s.ply--
}

func (s *Searcher) recordKiller(m board.Move) {
	if s.ply >= len(s.killers) {
		return
	}
	slot := &s.killers[s.ply]
	if slot[0] == m {
		return
	}
	slot[1] = slot[0]
	slot[0] = m
}

func (s *Searcher) recordHistory(m board.Move, depth int) {
	s.history[m.From.Index()*board.NumSquares+m.To.Index()] += depth * depth
}
