package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

// ReadStdinLines reads stdin lines into a channel, asynchronously, until
// EOF or a read error.
func ReadStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			ret <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			logw.Errorf(ctx, "reading stdin: %v", err)
		}
	}()
	return ret
}

// WriteStdoutLines writes every line from out to stdout until the channel
// closes.
func WriteStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		if _, err := fmt.Fprintln(os.Stdout, line); err != nil {
			logw.Errorf(ctx, "writing stdout: %v", err)
		}
	}
}
