package search

// Score is a signed evaluation in material-equivalent centi-units, from the
// perspective of whichever side the score is reported for.
type Score = int

const (
	// Mate is the score magnitude assigned to an immediate checkmate at the
	// root; MateMin is its negation. Scores whose magnitude exceeds
	// MateThreshold encode "distance to mate" and are mate-normalized before
	// entering the transposition table.
	Mate          Score = 99999
	MateMin       Score = -Mate
	MateThreshold Score = 30000

	// Ban is the near-mate penalty applied to a side judged to be
	// perpetually checking.
	Ban Score = Mate - 100

	// InitiativeBonus mirrors eval.InitiativeBonus for packages that only
	// need the search-facing constant.
	InitiativeBonus Score = 3

	// MaxDepth bounds quiescence search recursion.
	MaxDepth = 64
)

// isMateScore reports whether score encodes a mate distance rather than a
// material evaluation.
func isMateScore(score Score) bool {
	return score > MateThreshold || score < -MateThreshold
}

// normalizeOut adjusts a mate score away from the root before it is stored
// in the transposition table, so that the stored value is root-independent.
func normalizeOut(score Score, ply int) Score {
	if !isMateScore(score) {
		return score
	}
	if score > 0 {
		return score + Score(ply)
	}
	return score - Score(ply)
}

// normalizeIn adjusts a stored mate score toward the current root after
// retrieval from the transposition table.
func normalizeIn(score Score, ply int) Score {
	if !isMateScore(score) {
		return score
	}
	if score > 0 {
		return score - Score(ply)
	}
	return score + Score(ply)
}
