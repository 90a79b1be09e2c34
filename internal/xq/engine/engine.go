// Package engine is the host-facing game harness: it wraps a Position, a
// Searcher and an optional opening book behind a small synchronous API the
// UCCI driver (and any other front end) drives.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/hx233/xiangqi/internal/xq/book"
	"github.com/hx233/xiangqi/internal/xq/board"
	"github.com/hx233/xiangqi/internal/xq/search"
	"github.com/hx233/xiangqi/internal/xq/zobrist"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation and runtime options.
type Options struct {
	// Depth is the default search depth used when a caller does not supply
	// one. The core search itself honors only a caller-supplied depth limit
	// (no time management), so this is purely a host-side default.
	Depth int
	// HashMB is informational: the transposition table is always sized at
	// 2^21 slots (see search.Table); this field exists so the host can
	// report the configured value, not to resize the table.
	HashMB int
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%vMB}", o.Depth, o.HashMB)
}

// Engine encapsulates one game in progress: the current Position, the
// Searcher driving its analysis, and an optional opening book consulted
// before falling back to search. An Engine is safe for use by one goroutine
// at a time; it serializes its own methods but does not support concurrent
// calls into the same search.
type Engine struct {
	primary *zobrist.Tables
	lock    *zobrist.Tables
	book    book.Book
	opts    Options

	pos      *board.Position
	searcher *search.Searcher

	mu sync.Mutex
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithBook attaches an opening book to be consulted before every search.
func WithBook(b book.Book) Option {
	return func(e *Engine) { e.book = b }
}

// WithOptions sets the engine's default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithZobristSeed configures the engine's two independent Zobrist tables
// (primary and lock) to derive from the given seed instead of the default,
// so tests can reproduce a fixed hash space deterministically.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) {
		e.primary = zobrist.NewTables(seed)
		e.lock = zobrist.NewTables(seed + 1)
	}
}

// New returns an Engine positioned at the initial layout.
func New(ctx context.Context, opts ...Option) *Engine {
	e := &Engine{
		primary:  zobrist.NewTables(0),
		lock:     zobrist.NewTables(1),
		searcher: search.NewSearcher(),
	}
	for _, fn := range opts {
		fn(e)
	}
	e.pos = board.NewInitialPosition(e.primary, e.lock)

	logw.Infof(ctx, "Initialized xiangqi engine %v, options=%v", Name(), e.opts)
	return e
}

// Name returns the engine name and version, in UCCI "id name" form.
func Name() string {
	return fmt.Sprintf("xiangqi %v", version)
}

// Position returns the current position's FEN encoding.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.EncodeFEN()
}

// SetPosition resets the engine to startFEN (the initial layout if empty)
// and then applies moves in UCCI coordinate notation in order. It returns
// an error and leaves the engine at the last successfully applied move if
// any move fails to parse or is not legal.
func (e *Engine) SetPosition(ctx context.Context, startFEN string, moves []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var pos *board.Position
	if startFEN == "" {
		pos = board.NewInitialPosition(e.primary, e.lock)
	} else {
		p, err := board.DecodeFEN(e.primary, e.lock, startFEN)
		if err != nil {
			return fmt.Errorf("set position: %w", err)
		}
		pos = p
	}

	for _, ms := range moves {
		m, err := resolveMove(pos, ms)
		if err != nil {
			e.pos = pos
			return fmt.Errorf("set position: %w", err)
		}
		if !pos.IsLegalMove(m) {
			e.pos = pos
			return fmt.Errorf("set position: illegal move %v", ms)
		}
		pos.ApplyMove(m)
	}

	e.pos = pos
	logw.Debugf(ctx, "Position set: %v", e.pos.EncodeFEN())
	return nil
}

// resolveMove completes the from/to pair parsed out of a UCCI move string
// with the moved/captured piece kinds read off pos's grid.
func resolveMove(pos *board.Position, moveString string) (board.Move, error) {
	from, to, err := board.ParseCoordinates(moveString)
	if err != nil {
		return board.Move{}, err
	}
	moving := pos.At(from)
	if moving.IsEmpty() {
		return board.Move{}, fmt.Errorf("no piece on %v in move %q", from, moveString)
	}
	return board.Move{
		Side:     moving.Side,
		From:     from,
		To:       to,
		Moved:    moving.Kind,
		Captured: pos.At(to).Kind,
	}, nil
}

// Go searches the current position to depth (or the engine's configured
// default depth if depth <= 0) and returns the best move found in UCCI
// coordinate notation, its score, and whether a move was found at all. An
// opening-book hit short-circuits the search entirely; in that case score
// is the zero value and hasScore is false.
func (e *Engine) Go(ctx context.Context, depth int) (moveString string, score int, hasScore bool, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.book != nil {
		if ms, found := e.book.Query(uint64(e.pos.Zob), uint64(e.pos.ZobLock)); found {
			if m, err := resolveMove(e.pos, ms); err == nil && m.Side == e.pos.Turn && e.pos.IsValidMove(m) {
				logw.Infof(ctx, "Book move: %v", ms)
				return ms, 0, false, true
			}
			logw.Errorf(ctx, "Book move %v is not pseudo-legal in %v, ignoring", ms, e.pos.EncodeFEN())
		}
	}

	if depth <= 0 {
		depth = e.opts.Depth
	}
	if depth <= 0 {
		depth = 1
	}

	logw.Infof(ctx, "Search start: depth=%v, position=%v", depth, e.pos.EncodeFEN())
	sc, m := e.searcher.IterativeDeepening(ctx, e.pos, depth)
	logw.Infof(ctx, "Search done: nodes=%v, score=%v, move=%v", e.searcher.Nodes(), sc, m)

	if !m.IsValidShape() {
		return "", 0, false, false
	}
	return m.Notation(), sc, true, true
}
