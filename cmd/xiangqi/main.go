// Command xiangqi runs the engine as a UCCI-subset text protocol process
// over stdin/stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hx233/xiangqi/internal/xq/book"
	"github.com/hx233/xiangqi/internal/xq/engine"
	"github.com/hx233/xiangqi/internal/xq/engine/ucci"
	"github.com/seekerror/logw"
)

var (
	hash  = flag.Int("hash", 16, "Transposition table size in MB (informational; the table is fixed at 2^21 slots)")
	depth = flag.Int("depth", 8, "Default search depth used when a go command omits depth")
	book_ = flag.String("book", "", "Path to a newline-delimited opening book file (optional)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: xiangqi [options]

xiangqi is a Xiangqi (Chinese Chess) engine speaking a UCCI text protocol
subset over stdin/stdout.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	var opts []engine.Option
	opts = append(opts, engine.WithOptions(engine.Options{Depth: *depth, HashMB: *hash}))

	if *book_ != "" {
		f, err := os.Open(*book_)
		if err != nil {
			logw.Exitf(ctx, "Opening book file %v: %v", *book_, err)
		}
		b, err := book.NewBookFromReader(f)
		_ = f.Close()
		if err != nil {
			logw.Exitf(ctx, "Loading opening book %v: %v", *book_, err)
		}
		opts = append(opts, engine.WithBook(b))
	}

	e := engine.New(ctx, opts...)

	in := engine.ReadStdinLines(ctx)
	driver, out := ucci.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
