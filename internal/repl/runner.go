// Package repl runs the interactive read-execute-print loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vmunix/vidplay/internal/command"
	"golang.org/x/sync/errgroup"
)

// Executor runs one input line.
type Executor interface {
	Execute(line string) command.Reply
}

// Config for the REPL.
type Config struct {
	Prompt  string   // printed before each command; empty for none
	Welcome []string // printed once at start
	Goodbye string   // printed on EXIT or end of input
}

// errExit stops the group when the user asks to leave.
var errExit = errors.New("exit requested")

// Runner reads lines from in, executes them one at a time and writes the
// replies to out.
type Runner struct {
	in     io.Reader
	out    io.Writer
	exec   Executor
	config Config
	logger *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(in io.Reader, out io.Writer, exec Executor, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		in:     in,
		out:    out,
		exec:   exec,
		config: cfg,
		logger: logger,
	}
}

// Run blocks until EXIT, end of input, a read error or ctx cancellation.
// Only EXIT and end of input print the goodbye line.
//
// A reader blocked on input is not interruptible; it is left behind when
// Run returns for any other reason and exits on its next read.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go r.read(ctx, lines, readErr)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.process(ctx, lines)
	})

	g.Go(func() error {
		select {
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		case <-ctx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errExit) {
		return err
	}
	return nil
}

// read sends each input line to lines and closes it at end of input.
func (r *Runner) read(ctx context.Context, lines chan<- string, errc chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			errc <- nil
			return
		}
	}
	errc <- scanner.Err()
}

// process executes lines in order. After a reply that asks a question the
// next line is its answer rather than a command.
func (r *Runner) process(ctx context.Context, lines <-chan string) error {
	r.print(r.config.Welcome...)

	var pending func(string) []string
	for {
		if pending == nil && r.config.Prompt != "" {
			fmt.Fprint(r.out, r.config.Prompt)
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			if pending == nil && r.config.Prompt != "" {
				// End the prompt line left open by EOF.
				fmt.Fprintln(r.out)
			}
			r.goodbye()
			return nil
		}

		if pending != nil {
			answer := pending
			pending = nil
			r.print(answer(line)...)
			continue
		}

		reply := r.exec.Execute(line)
		r.print(reply.Lines...)
		if reply.Exit {
			r.logger.Debug("exit requested")
			r.goodbye()
			return errExit
		}
		pending = reply.Continue
	}
}

func (r *Runner) goodbye() {
	if r.config.Goodbye != "" {
		r.print(r.config.Goodbye)
	}
}

func (r *Runner) print(lines ...string) {
	for _, l := range lines {
		if _, err := fmt.Fprintln(r.out, l); err != nil {
			r.logger.Warn("write output failed", "error", err)
			return
		}
	}
}
