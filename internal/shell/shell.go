// Package shell implements the interactive read-eval-print loop that feeds
// user text to an analyzer and prints each result.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/crimson-sun/sentiment/internal/model"
)

const (
	// Prompt is printed before every line read.
	Prompt = "📝 Text: "
	// Farewell is printed when the loop ends.
	Farewell = "👋 Thanks for using Sentiment Analyzer!"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Analyzer classifies one text. It never fails; failures surface as labels.
type Analyzer interface {
	Analyze(text string) model.Result
}

// Shell reads lines from in, analyzes each, and writes results to out.
type Shell struct {
	analyzer Analyzer
	in       io.Reader
	out      io.Writer
}

// New creates a Shell.
func New(a Analyzer, in io.Reader, out io.Writer) *Shell {
	return &Shell{analyzer: a, in: in, out: out}
}

// IsExit reports whether input is one of the exit commands: quit, exit or q,
// in any case, ignoring surrounding whitespace.
func IsExit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// Run loops until an exit command, end of input, or ctx cancellation. A
// cancellation is only observed between iterations, never during an
// analysis. It returns an error only if reading input fails.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	lines, errc := s.readLines(done)

	for {
		if ctx.Err() != nil {
			s.interrupted()
			return nil
		}
		fmt.Fprint(s.out, Prompt)

		var line string
		select {
		case <-ctx.Done():
			s.interrupted()
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					fmt.Fprintf(s.out, "\nError: %v\n", err)
					return fmt.Errorf("shell: read input: %w", err)
				}
				fmt.Fprintf(s.out, "\n%s\n", Farewell)
				return nil
			}
			line = l
		}

		if s.step(line) {
			return nil
		}
	}
}

// step handles one input line and reports whether the loop should stop.
// A panic while handling the line is printed and the loop continues.
func (s *Shell) step(line string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(s.out, "Error: %v\n", r)
			quit = false
		}
	}()

	text := strings.TrimSpace(line)
	if IsExit(text) {
		fmt.Fprintf(s.out, "\n%s\n", Farewell)
		return true
	}
	if text == "" {
		return false
	}

	Format(s.out, text, s.analyzer.Analyze(text))
	return false
}

func (s *Shell) interrupted() {
	fmt.Fprintf(s.out, "\n\n%s\n", Farewell)
}

// readLines scans s.in on its own goroutine so Run can wait on input and ctx
// together. The lines channel closes at end of input; errc then holds the
// scan error, nil for a clean EOF. A goroutine blocked in Read outlives Run
// until that Read returns.
func (s *Shell) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()

	return lines, errc
}
