package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/round"
)

// lineReader pumps lines off an input stream in a goroutine so that a
// blocked read can be abandoned when a round is interrupted. The pump
// lives for the whole session; it must be the stream's only consumer.
type lineReader struct {
	lines chan string
	err   error // set by the pump before lines is closed
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lr.lines <- sc.Text()
		}
		lr.err = sc.Err()
		close(lr.lines)
	}()
	return lr
}

// ReadLine blocks for the next input line. It returns ctx.Err() when
// the context is canceled first, and io.EOF once the stream ends.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// answerSource prompts on the console and reads one answer per
// question, timing the wait from prompt to submitted line.
type answerSource struct {
	in  *lineReader
	out io.Writer
}

func (a *answerSource) Ask(ctx context.Context, p problemgen.Problem, remaining time.Duration) (round.Answer, error) {
	fmt.Fprintf(a.out, "\n[%ds left]  %s = ?\n", int(remaining.Seconds()), p.Text)
	fmt.Fprint(a.out, "> ")

	start := time.Now()
	line, err := a.in.ReadLine(ctx)
	if err != nil {
		return round.Answer{}, err
	}
	return round.Answer{Text: line, Latency: time.Since(start)}, nil
}
