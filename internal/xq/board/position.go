package board

import "github.com/hx233/xiangqi/internal/xq/zobrist"

// InitiativeBonus is added to the side-to-move's evaluation, reflecting the
// tempo advantage of having the move.
const InitiativeBonus = 3

// Position is a mutable Xiangqi position: the 9x10 grid, side to move, two
// independent Zobrist hashes and the incremental material+PST sums for each
// side. SelectPos is UI-only state (the currently selected square in an
// interactive front end) and has no effect on search or evaluation.
type Position struct {
	primary *zobrist.Tables
	lock    *zobrist.Tables

	Grid [NumSquares]Piece
	Turn Side

	Zob     zobrist.Hash
	ZobLock zobrist.Hash

	VLRed   int
	VLBlack int

	SelectPos Square
}

// NewEmptyPosition returns an empty board with Red to move, keyed against
// two independent Zobrist tables: primary (indexes the transposition table)
// and lock (verifies it).
func NewEmptyPosition(primary, lock *zobrist.Tables) *Position {
	return &Position{primary: primary, lock: lock, Turn: Red}
}

// NewInitialPosition returns the standard Xiangqi starting position, keyed
// against primary and lock.
func NewInitialPosition(primary, lock *zobrist.Tables) *Position {
	p := NewEmptyPosition(primary, lock)
	for sq, pc := range initialLayout {
		if !pc.IsEmpty() {
			p.Set(FromIndex(sq), pc)
		}
	}
	return p
}

var initialLayout = func() [NumSquares]Piece {
	var grid [NumSquares]Piece
	back := [NumCols]Kind{Rook, Knight, Bishop, Advisor, King, Advisor, Bishop, Knight, Rook}
	for col, k := range back {
		grid[NewSquare(0, col).Index()] = Piece{Kind: k, Side: Black}
		grid[NewSquare(9, col).Index()] = Piece{Kind: k, Side: Red}
	}
	grid[NewSquare(2, 1).Index()] = Piece{Kind: Cannon, Side: Black}
	grid[NewSquare(2, 7).Index()] = Piece{Kind: Cannon, Side: Black}
	grid[NewSquare(7, 1).Index()] = Piece{Kind: Cannon, Side: Red}
	grid[NewSquare(7, 7).Index()] = Piece{Kind: Cannon, Side: Red}
	for _, col := range []int{0, 2, 4, 6, 8} {
		grid[NewSquare(3, col).Index()] = Piece{Kind: Pawn, Side: Black}
		grid[NewSquare(6, col).Index()] = Piece{Kind: Pawn, Side: Red}
	}
	return grid
}()

// At returns the piece occupying sq.
func (p *Position) At(sq Square) Piece {
	return p.Grid[sq.Index()]
}

// Set places piece (possibly Empty) on sq, unconditionally, keeping the
// hashes and material sums in sync. It performs no legality checking; it is
// the single primitive every other mutator is built from.
func (p *Position) Set(sq Square, piece Piece) {
	old := p.Grid[sq.Index()]
	if !old.IsEmpty() {
		p.unkey(sq, old)
	}
	p.Grid[sq.Index()] = piece
	if !piece.IsEmpty() {
		p.key(sq, piece)
	}
}

func (p *Position) key(sq Square, piece Piece) {
	idx := pieceIndex(piece.Kind, piece.Side)
	p.Zob ^= p.primary.PieceKey(idx, sq.Index())
	p.ZobLock ^= p.lock.PieceKey(idx, sq.Index())
	p.addValue(sq, piece)
}

func (p *Position) unkey(sq Square, piece Piece) {
	idx := pieceIndex(piece.Kind, piece.Side)
	p.Zob ^= p.primary.PieceKey(idx, sq.Index())
	p.ZobLock ^= p.lock.PieceKey(idx, sq.Index())
	p.subValue(sq, piece)
}

func (p *Position) addValue(sq Square, piece Piece) {
	v := PieceValue(piece.Kind, piece.Side, sq)
	if piece.Side == Red {
		p.VLRed += v
	} else {
		p.VLBlack += v
	}
}

func (p *Position) subValue(sq Square, piece Piece) {
	v := PieceValue(piece.Kind, piece.Side, sq)
	if piece.Side == Red {
		p.VLRed -= v
	} else {
		p.VLBlack -= v
	}
}

// ApplyMove mutates the position by playing m: moves the piece from From to
// To (capturing whatever was on To, which must match m.Captured), flips the
// side to move, and updates both hashes and material sums incrementally. It
// does not touch any search-side history stack; callers that need undo must
// record m themselves.
func (p *Position) ApplyMove(m Move) {
	moving := p.At(m.From)
	p.Set(m.From, Empty)
	p.Set(m.To, moving)
	p.Zob ^= p.primary.TurnKey()
	p.ZobLock ^= p.lock.TurnKey()
	p.Turn = p.Turn.Opponent()
}

// UndoMove is the exact inverse of ApplyMove: it restores the moved piece to
// From and the captured piece (if any) to To, and flips the side to move
// back.
func (p *Position) UndoMove(m Move) {
	p.Turn = p.Turn.Opponent()
	p.Zob ^= p.primary.TurnKey()
	p.ZobLock ^= p.lock.TurnKey()

	moving := p.At(m.To)
	p.Set(m.To, Empty)
	if m.Captured != NoKind {
		p.Set(m.To, Piece{Kind: m.Captured, Side: m.Side.Opponent()})
	}
	p.Set(m.From, moving)
}

// DoNullMove flips the side to move without making any move on the board.
// The hash is deliberately left untouched (see the null-move Zobrist design
// note); only Turn changes.
func (p *Position) DoNullMove() {
	p.Turn = p.Turn.Opponent()
}

// UndoNullMove is the exact inverse of DoNullMove.
func (p *Position) UndoNullMove() {
	p.Turn = p.Turn.Opponent()
}

// Evaluate returns the position's static evaluation from the side-to-move's
// perspective: the incremental material+PST difference plus InitiativeBonus.
func (p *Position) Evaluate() int {
	var mine, other int
	if p.Turn == Red {
		mine, other = p.VLRed, p.VLBlack
	} else {
		mine, other = p.VLBlack, p.VLRed
	}
	return mine - other + InitiativeBonus
}

// Clone returns a deep copy of the position, sharing the same Zobrist
// tables (which are immutable and safe to share).
func (p *Position) Clone() *Position {
	c := *p
	return &c
}
