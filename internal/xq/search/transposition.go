package search

import "github.com/hx233/xiangqi/internal/xq/board"

// Flag records how a transposition table slot's score relates to the window
// it was computed in.
type Flag uint8

const (
	Exact Flag = iota
	UpperBound
	LowerBound
)

func (f Flag) String() string {
	switch f {
	case Exact:
		return "Exact"
	case UpperBound:
		return "Upper"
	case LowerBound:
		return "Lower"
	default:
		return "?"
	}
}

// slot is one transposition table entry. It is valid for a position iff
// zobLock matches the position's ZobLock exactly; the primary Zob hash only
// selects the slot index.
type slot struct {
	valid    bool
	zobLock  uint64
	score    int32
	depth    int16
	flag     Flag
	bestMove board.Move
}

// tableSize is the number of slots in the transposition table: 2^21, so
// Zob&mask is a cheap index.
const tableSize = 1 << 21

// Table is a fixed-size, open-addressed transposition table keyed by the
// primary Zobrist hash and verified by the lock hash. It is allocated once
// and reused across searches; entries are never invalidated by move
// application because every slot self-verifies via zobLock.
type Table struct {
	slots []slot
	mask  uint64
}

// NewTable allocates a Table with tableSize slots.
func NewTable() *Table {
	return &Table{slots: make([]slot, tableSize), mask: tableSize - 1}
}

// Probe looks up the slot for zob/zobLock. If found, the returned score has
// already been mate-normalized toward ply (the current search node's root
// distance).
func (t *Table) Probe(zob, zobLock uint64, ply int) (score Score, depth int, flag Flag, best board.Move, ok bool) {
	s := &t.slots[zob&t.mask]
	if !s.valid || s.zobLock != zobLock {
		return 0, 0, 0, board.Move{}, false
	}
	return normalizeIn(Score(s.score), ply), int(s.depth), s.flag, s.bestMove, true
}

// Store writes an entry, normalizing a mate score away from ply before
// persisting it. Replacement is depth-preferred: an existing slot whose
// stored depth exceeds the new depth is left untouched.
func (t *Table) Store(zob, zobLock uint64, ply, depth int, score Score, flag Flag, best board.Move) {
	s := &t.slots[zob&t.mask]
	if s.valid && int(s.depth) > depth {
		return
	}
	s.valid = true
	s.zobLock = zobLock
	s.score = int32(normalizeOut(score, ply))
	s.depth = int16(depth)
	s.flag = flag
	s.bestMove = best
}
