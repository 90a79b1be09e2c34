package board

// MaterialValue is the nominal material value of a piece kind, in the
// engine's internal centi-unit scale. King carries a sentinel value -- it
// is never legally captured, so the value only matters for display and for
// keeping the King's PST offset (below) on the same scale as every other
// piece's combined table.
func MaterialValue(k Kind) int {
	return materialValue[k]
}

var materialValue = [NumKinds]int{
	NoKind: 0,
	King:   10000,
	Advisor: 20,
	Bishop:  20,
	Knight:  90,
	Rook:    200,
	Cannon:  100,
	Pawn:    10,
}

// PSTValue returns the positional (non-material) contribution of placing a
// piece of the given kind and side on sq. Red's tables are authoritative
// (row 0 is Black's back rank); Black's are obtained by rotating 180
// degrees, per the piece-square-table contract.
func PSTValue(k Kind, side Side, sq Square) int {
	if side == Black {
		sq = sq.Flip()
	}
	return pst[k][sq.Row][sq.Col]
}

// PieceValue is the full per-square contribution of a piece: material value
// plus positional table value.
func PieceValue(k Kind, side Side, sq Square) int {
	return MaterialValue(k) + PSTValue(k, side, sq)
}

// The tables below are derived from the reference engine's combined
// material+position value tables (one literal per square) by subtracting
// this package's MaterialValue so that MaterialValue+PST reproduces the
// reference engine's per-square values exactly. See DESIGN.md for the
// derivation; King's large negative offset is expected and harmless since
// both sides always have exactly one King, so the sentinel material value
// cancels within each side's own per-square term.
var pst = [NumKinds][NumRows][NumCols]int{
	King: {
		{-10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000},
		{-10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000},
		{-10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000},
		{-10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000},
		{-10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000},
		{-10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000},
		{-10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000, -10000},
		{-10000, -10000, -10000, -9999, -9999, -9999, -10000, -10000, -10000},
		{-10000, -10000, -10000, -9998, -9998, -9998, -10000, -10000, -10000},
		{-10000, -10000, -10000, -9989, -9985, -9989, -10000, -10000, -10000},
	},
	Advisor: {
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, 0, -20, 0, -20, -20, -20},
		{-20, -20, -20, -20, 3, -20, -20, -20, -20},
		{-20, -20, -20, 0, -20, 0, -20, -20, -20},
	},
	Bishop: {
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, 0, -20, -20, -20, 0, -20, -20},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-2, -20, -20, -20, 3, -20, -20, -20, -2},
		{-20, -20, -20, -20, -20, -20, -20, -20, -20},
		{-20, -20, 0, -20, -20, -20, 0, -20, -20},
	},
	Knight: {
		{0, 0, 0, 6, 0, 6, 0, 0, 0},
		{0, 6, 13, 7, 4, 7, 13, 6, 0},
		{2, 8, 9, 13, 9, 13, 9, 8, 2},
		{3, 18, 10, 17, 10, 17, 10, 18, 3},
		{0, 10, 9, 13, 14, 13, 9, 10, 0},
		{0, 8, 11, 12, 13, 12, 11, 8, 0},
		{2, 4, 8, 5, 8, 5, 8, 4, 2},
		{3, 2, 4, 5, 2, 5, 4, 2, 3},
		{-5, 0, 2, 3, -12, 3, 2, 0, -5},
		{-2, -5, 0, -2, 0, -2, 0, -5, -2},
	},
	Rook: {
		{6, 8, 7, 13, 14, 13, 7, 8, 6},
		{6, 12, 9, 16, 33, 16, 9, 12, 6},
		{6, 8, 7, 14, 16, 14, 7, 8, 6},
		{6, 13, 13, 16, 16, 16, 13, 13, 6},
		{8, 11, 11, 14, 15, 14, 11, 11, 8},
		{8, 12, 12, 14, 15, 14, 12, 12, 8},
		{4, 9, 4, 12, 14, 12, 4, 9, 4},
		{-2, 8, 4, 12, 12, 12, 4, 8, -2},
		{0, 8, 6, 12, 0, 12, 6, 8, 0},
		{-6, 6, 4, 12, 0, 12, 4, 6, -6},
	},
	Cannon: {
		{0, 0, -4, -9, -10, -9, -4, 0, 0},
		{-2, -2, -4, -8, -11, -8, -4, -2, -2},
		{-3, -3, -4, -9, -8, -9, -4, -3, -3},
		{-4, -1, -1, -2, 0, -2, -1, -1, -4},
		{-4, -4, -4, -4, 0, -4, -4, -4, -4},
		{-5, -4, -1, -4, 0, -4, -1, -4, -5},
		{-4, -4, -4, -4, -4, -4, -4, -4, -4},
		{-3, -4, 0, -1, 1, -1, 0, -4, -3},
		{-4, -3, -2, -2, -2, -2, -2, -3, -4},
		{-4, -4, -3, -1, -1, -1, -3, -4, -4},
	},
	Pawn: {
		{-1, -1, -1, 1, 3, 1, -1, -1, -1},
		{9, 14, 24, 32, 34, 32, 24, 14, 9},
		{9, 14, 22, 27, 27, 27, 22, 14, 9},
		{9, 13, 17, 19, 20, 19, 17, 13, 9},
		{4, 8, 10, 17, 19, 17, 10, 8, 4},
		{-3, -10, 3, -10, 6, -10, 3, -10, -3},
		{-3, -10, -3, -10, 5, -10, -3, -10, -3},
		{-10, -10, -10, -10, -10, -10, -10, -10, -10},
		{-10, -10, -10, -10, -10, -10, -10, -10, -10},
		{-10, -10, -10, -10, -10, -10, -10, -10, -10},
	},
}
