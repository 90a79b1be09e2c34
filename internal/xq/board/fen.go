package board

import (
	"fmt"
	"strings"

	"github.com/hx233/xiangqi/internal/xq/zobrist"
)

// DecodeFEN parses a FEN subset: ten '/'-separated ranks, top (Black's back
// rank) first, using r n b a k c p letters (Black lowercase, Red uppercase)
// and digit run-lengths for empty squares, followed by a space and a w/b
// side-to-move field. Any further fields are accepted but ignored. A letter
// outside r n b a k c p (in either case) is not a malformed rank: it is
// skipped and the square it occupies is left empty, so a FEN carrying a
// stray or foreign piece letter still decodes the rest of the board.
func DecodeFEN(primary, lock *zobrist.Tables, fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("invalid fen %q: want at least board and side fields", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != NumRows {
		return nil, fmt.Errorf("invalid fen %q: want %d ranks, got %d", fen, NumRows, len(ranks))
	}

	p := NewEmptyPosition(primary, lock)
	for row, rank := range ranks {
		col := 0
		for _, r := range rank {
			switch {
			case r >= '1' && r <= '9':
				col += int(r - '0')
			default:
				if col >= NumCols {
					return nil, fmt.Errorf("invalid fen %q: rank %d overflows board width", fen, row)
				}
				if piece, ok := pieceFromFEN(r); ok {
					p.Set(NewSquare(row, col), piece)
				}
				col++
			}
		}
		if col != NumCols {
			return nil, fmt.Errorf("invalid fen %q: rank %d has width %d, want %d", fen, row, col, NumCols)
		}
	}

	switch fields[1] {
	case "w":
		p.Turn = Red
	case "b":
		p.Turn = Black
	default:
		return nil, fmt.Errorf("invalid fen %q: side field must be w or b, got %q", fen, fields[1])
	}
	if p.Turn == Black {
		p.Zob ^= p.primary.TurnKey()
		p.ZobLock ^= p.lock.TurnKey()
	}
	return p, nil
}

// pieceFromFEN maps a FEN letter to a piece. ok is false for any letter
// outside r n b a k c p (either case), which the caller treats as an empty
// square rather than a parse failure.
func pieceFromFEN(r rune) (Piece, bool) {
	side := Red
	lower := r
	if r >= 'a' && r <= 'z' {
		side = Black
	} else {
		lower = r - 'A' + 'a'
	}
	var kind Kind
	switch lower {
	case 'r':
		kind = Rook
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'a':
		kind = Advisor
	case 'k':
		kind = King
	case 'c':
		kind = Cannon
	case 'p':
		kind = Pawn
	default:
		return Piece{}, false
	}
	return Piece{Kind: kind, Side: side}, true
}

// EncodeFEN renders p in the same FEN subset DecodeFEN accepts.
func (p *Position) EncodeFEN() string {
	var sb strings.Builder
	for row := 0; row < NumRows; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < NumCols; col++ {
			piece := p.At(NewSquare(row, col))
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(fenLetter(piece))
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
	}
	sb.WriteByte(' ')
	if p.Turn == Red {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

func fenLetter(piece Piece) string {
	s := piece.String()
	if piece.Side == Red {
		return strings.ToUpper(s)
	}
	return s
}
