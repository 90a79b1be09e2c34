package search

import "testing"

func TestNormalizeRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		score Score
		ply   int
	}{
		{"plain material score unaffected", 150, 5},
		{"positive mate score", Mate - 3, 4},
		{"negative mate score", -Mate + 7, 2},
		{"ban score", Ban, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stored := normalizeOut(c.score, c.ply)
			got := normalizeIn(stored, c.ply)
			if got != c.score {
				t.Fatalf("normalizeIn(normalizeOut(%d, %d)) = %d, want %d", c.score, c.ply, got, c.score)
			}
		})
	}
}

func TestNormalizeOutMovesMateFurtherFromRoot(t *testing.T) {
	if got := normalizeOut(Mate, 3); got != Mate+3 {
		t.Fatalf("normalizeOut(Mate, 3) = %d, want %d", got, Mate+3)
	}
	if got := normalizeOut(-Mate, 3); got != -Mate-3 {
		t.Fatalf("normalizeOut(-Mate, 3) = %d, want %d", got, -Mate-3)
	}
}

func TestNormalizeInMovesMateCloserToRoot(t *testing.T) {
	if got := normalizeIn(Mate+5, 5); got != Mate {
		t.Fatalf("normalizeIn(Mate+5, 5) = %d, want %d", got, Mate)
	}
}

func TestIsMateScoreThreshold(t *testing.T) {
	if isMateScore(MateThreshold) {
		t.Fatalf("score exactly at the threshold must not count as a mate score")
	}
	if !isMateScore(MateThreshold + 1) {
		t.Fatalf("score just above the threshold must count as a mate score")
	}
	if !isMateScore(-MateThreshold - 1) {
		t.Fatalf("negative score just past the threshold must count as a mate score")
	}
}
