package board

// This file implements the geometric movement rules for each piece kind,
// pseudo-legal move generation, and in-check detection (including the
// flying-general rule).

var orthogonal = [4]Square{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}

var knightJumps = [8]struct {
	dr, dc   int
	legRow   int
	legCol   int
}{
	{-2, -1, -1, 0}, {-2, 1, -1, 0},
	{2, -1, 1, 0}, {2, 1, 1, 0},
	{-1, -2, 0, -1}, {1, -2, 0, -1},
	{-1, 2, 0, 1}, {1, 2, 0, 1},
}

var diagonal = [4]Square{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}

// pieceTargets returns every square the piece at sq could move to, ignoring
// whether the move would leave the mover's own King in check. sq must hold a
// piece of kind k belonging to side; this is not checked.
func (p *Position) pieceTargets(sq Square, k Kind, side Side) []Square {
	switch k {
	case King:
		return p.kingTargets(sq, side)
	case Advisor:
		return p.advisorTargets(sq, side)
	case Bishop:
		return p.bishopTargets(sq, side)
	case Knight:
		return p.knightTargets(sq, side)
	case Rook:
		return p.rookTargets(sq, side)
	case Cannon:
		return p.cannonTargets(sq, side)
	case Pawn:
		return p.pawnTargets(sq, side)
	default:
		return nil
	}
}

func (p *Position) friendlyBlocked(to Square, side Side) bool {
	occ := p.At(to)
	return !occ.IsEmpty() && occ.Side == side
}

func (p *Position) kingTargets(sq Square, side Side) []Square {
	var out []Square
	for _, d := range orthogonal {
		to := NewSquare(sq.Row+d.Row, sq.Col+d.Col)
		if !to.OnBoard() || !InPalace(to, side) {
			continue
		}
		if p.friendlyBlocked(to, side) {
			continue
		}
		out = append(out, to)
	}
	return out
}

func (p *Position) advisorTargets(sq Square, side Side) []Square {
	var out []Square
	for _, d := range diagonal {
		to := NewSquare(sq.Row+d.Row, sq.Col+d.Col)
		if !to.OnBoard() || !InPalace(to, side) {
			continue
		}
		if p.friendlyBlocked(to, side) {
			continue
		}
		out = append(out, to)
	}
	return out
}

func (p *Position) bishopTargets(sq Square, side Side) []Square {
	var out []Square
	for _, d := range diagonal {
		eye := NewSquare(sq.Row+d.Row, sq.Col+d.Col)
		to := NewSquare(sq.Row+2*d.Row, sq.Col+2*d.Col)
		if !to.OnBoard() || !eye.OnBoard() {
			continue
		}
		if !InOwnHalf(to.Row, side) {
			continue
		}
		if !p.At(eye).IsEmpty() {
			continue
		}
		if p.friendlyBlocked(to, side) {
			continue
		}
		out = append(out, to)
	}
	return out
}

func (p *Position) knightTargets(sq Square, side Side) []Square {
	var out []Square
	for _, j := range knightJumps {
		leg := NewSquare(sq.Row+j.legRow, sq.Col+j.legCol)
		to := NewSquare(sq.Row+j.dr, sq.Col+j.dc)
		if !to.OnBoard() {
			continue
		}
		if !leg.OnBoard() || !p.At(leg).IsEmpty() {
			continue
		}
		if p.friendlyBlocked(to, side) {
			continue
		}
		out = append(out, to)
	}
	return out
}

func (p *Position) rookTargets(sq Square, side Side) []Square {
	var out []Square
	for _, d := range orthogonal {
		for step := 1; ; step++ {
			to := NewSquare(sq.Row+d.Row*step, sq.Col+d.Col*step)
			if !to.OnBoard() {
				break
			}
			occ := p.At(to)
			if occ.IsEmpty() {
				out = append(out, to)
				continue
			}
			if occ.Side != side {
				out = append(out, to)
			}
			break
		}
	}
	return out
}

func (p *Position) cannonTargets(sq Square, side Side) []Square {
	var out []Square
	for _, d := range orthogonal {
		screened := false
		for step := 1; ; step++ {
			to := NewSquare(sq.Row+d.Row*step, sq.Col+d.Col*step)
			if !to.OnBoard() {
				break
			}
			occ := p.At(to)
			if !screened {
				if occ.IsEmpty() {
					out = append(out, to)
					continue
				}
				screened = true
				continue
			}
			if occ.IsEmpty() {
				continue
			}
			if occ.Side != side {
				out = append(out, to)
			}
			break
		}
	}
	return out
}

func (p *Position) pawnTargets(sq Square, side Side) []Square {
	var out []Square
	forward := -1
	if side == Black {
		forward = 1
	}
	fwd := NewSquare(sq.Row+forward, sq.Col)
	if fwd.OnBoard() && !p.friendlyBlocked(fwd, side) {
		out = append(out, fwd)
	}
	if !InOwnHalf(sq.Row, side) {
		for _, dc := range [2]int{-1, 1} {
			to := NewSquare(sq.Row, sq.Col+dc)
			if to.OnBoard() && !p.friendlyBlocked(to, side) {
				out = append(out, to)
			}
		}
	}
	return out
}

// GenerateMoves returns every pseudo-legal move available to side. When
// capturesOnly is set, only capturing moves are returned (used by
// quiescence search).
func (p *Position) GenerateMoves(side Side, capturesOnly bool) []Move {
	var moves []Move
	for i := 0; i < NumSquares; i++ {
		piece := p.Grid[i]
		if piece.IsEmpty() || piece.Side != side {
			continue
		}
		from := FromIndex(i)
		for _, to := range p.pieceTargets(from, piece.Kind, side) {
			captured := p.At(to)
			if capturesOnly && captured.IsEmpty() {
				continue
			}
			moves = append(moves, Move{
				Side:     side,
				From:     from,
				To:       to,
				Moved:    piece.Kind,
				Captured: captured.Kind,
			})
		}
	}
	return moves
}

// IsValidMove reports whether m is pseudo-legal in the current position:
// the moving piece matches m.Moved and m.Side, and m.To is among its
// geometric targets, and m.Captured matches what actually sits on m.To.
func (p *Position) IsValidMove(m Move) bool {
	if !m.IsValidShape() {
		return false
	}
	piece := p.At(m.From)
	if piece.IsEmpty() || piece.Kind != m.Moved || piece.Side != m.Side {
		return false
	}
	if p.At(m.To).Kind != m.Captured {
		return false
	}
	for _, to := range p.pieceTargets(m.From, m.Moved, m.Side) {
		if to == m.To {
			return true
		}
	}
	return false
}

// findKing returns the square of side's King, and whether it was found.
func (p *Position) findKing(side Side) (Square, bool) {
	for i := 0; i < NumSquares; i++ {
		piece := p.Grid[i]
		if piece.Kind == King && piece.Side == side {
			return FromIndex(i), true
		}
	}
	return Square{}, false
}

// IsChecked reports whether side's King is currently attacked, including via
// the flying-general rule (opposing Kings facing each other on an open
// file). If side's King cannot be found on the board, it is treated as
// checked.
func (p *Position) IsChecked(side Side) bool {
	kingSq, ok := p.findKing(side)
	if !ok {
		return true
	}

	opp := side.Opponent()
	if oppKingSq, ok := p.findKing(opp); ok && oppKingSq.Col == kingSq.Col {
		if p.fileClear(kingSq, oppKingSq) {
			return true
		}
	}

	for i := 0; i < NumSquares; i++ {
		piece := p.Grid[i]
		if piece.IsEmpty() || piece.Side != opp {
			continue
		}
		from := FromIndex(i)
		for _, to := range p.pieceTargets(from, piece.Kind, opp) {
			if to == kingSq {
				return true
			}
		}
	}
	return false
}

// fileClear reports whether every square strictly between a and b (which
// must share a column) is empty.
func (p *Position) fileClear(a, b Square) bool {
	lo, hi := a.Row, b.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	for row := lo + 1; row < hi; row++ {
		if !p.At(NewSquare(row, a.Col)).IsEmpty() {
			return false
		}
	}
	return true
}

// IsLegalMove reports whether m is legal: pseudo-legal and does not leave
// the mover's own King in check afterward.
func (p *Position) IsLegalMove(m Move) bool {
	if !p.IsValidMove(m) {
		return false
	}
	p.ApplyMove(m)
	checked := p.IsChecked(m.Side)
	p.UndoMove(m)
	return !checked
}

// LegalMoves returns every legal move available to side: pseudo-legal moves
// filtered to those that do not leave side's own King in check.
func (p *Position) LegalMoves(side Side) []Move {
	pseudo := p.GenerateMoves(side, false)
	out := pseudo[:0:0]
	for _, m := range pseudo {
		p.ApplyMove(m)
		checked := p.IsChecked(side)
		p.UndoMove(m)
		if !checked {
			out = append(out, m)
		}
	}
	return out
}
