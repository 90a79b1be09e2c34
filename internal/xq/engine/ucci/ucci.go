// Package ucci implements a driver for the engine under a UCCI (Universal
// Chinese Chess Interface) text-protocol subset: "ucci", "isready",
// "position startpos|fen <fen> [moves ...]", "go depth <n>", and "quit".
package ucci

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/hx233/xiangqi/internal/xq/engine"
	"github.com/seekerror/logw"
)

// Driver reads UCCI command lines from in and writes response lines to the
// channel returned by NewDriver, until it receives "quit" or in is closed.
type Driver struct {
	e   *engine.Engine
	out chan<- string

	quit   chan struct{}
	closeOnce sync.Once
}

// NewDriver starts a Driver processing commands from in on a background
// goroutine, driving e. It returns the Driver (for Close) and the channel
// of response lines.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 16)
	d := &Driver{
		e:    e,
		out:  out,
		quit: make(chan struct{}),
	}
	go d.process(ctx, in)
	return d, out
}

// Close stops the driver, if it has not already stopped on its own.
func (d *Driver) Close() {
	d.closeOnce.Do(func() { close(d.quit) })
}

// Closed returns a channel closed once the driver has stopped.
func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				return
			}
			logw.Debugf(ctx, "<< %v", line)
			if !d.dispatch(ctx, line) {
				return
			}
		case <-d.quit:
			return
		}
	}
}

func (d *Driver) send(ctx context.Context, line string) {
	logw.Debugf(ctx, ">> %v", line)
	d.out <- line
}

// dispatch handles one command line. It returns false iff the driver should
// stop (the "quit" command).
func (d *Driver) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "ucci":
		d.send(ctx, fmt.Sprintf("id name %v", engine.Name()))
		d.send(ctx, "id author xiangqi")
		d.send(ctx, "ucciok")

	case "isready":
		d.send(ctx, "readyok")

	case "position":
		if err := d.handlePosition(ctx, fields[1:]); err != nil {
			logw.Errorf(ctx, "position: %v", err)
		}

	case "go":
		d.handleGo(ctx, fields[1:])

	case "quit":
		return false

	default:
		logw.Debugf(ctx, "unrecognized command %q", fields[0])
	}
	return true
}

func (d *Driver) handlePosition(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("position: missing startpos|fen")
	}

	var startFEN string
	rest := args[1:]
	switch args[0] {
	case "startpos":
		startFEN = ""
	case "fen":
		n := indexOf(rest, "moves")
		fenFields := rest
		if n >= 0 {
			fenFields = rest[:n]
		}
		startFEN = strings.Join(fenFields, " ")
		if n >= 0 {
			rest = rest[n:]
		} else {
			rest = nil
		}
	default:
		return fmt.Errorf("position: unrecognized subcommand %q", args[0])
	}

	var moves []string
	if len(rest) > 0 && rest[0] == "moves" {
		moves = rest[1:]
	}

	return d.e.SetPosition(ctx, startFEN, moves)
}

func indexOf(fields []string, target string) int {
	for i, f := range fields {
		if f == target {
			return i
		}
	}
	return -1
}

func (d *Driver) handleGo(ctx context.Context, args []string) {
	depth := 0
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			if v, err := strconv.Atoi(args[i+1]); err == nil {
				depth = v
			}
		}
	}

	moveString, score, hasScore, ok := d.e.Go(ctx, depth)
	if !ok {
		d.send(ctx, "nobestmove")
		return
	}
	if hasScore {
		d.send(ctx, fmt.Sprintf("bestmove %v value %v", moveString, score))
	} else {
		d.send(ctx, fmt.Sprintf("bestmove %v", moveString))
	}
}
