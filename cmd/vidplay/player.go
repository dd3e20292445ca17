package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vmunix/vidplay/internal/command"
	"github.com/vmunix/vidplay/internal/config"
	"github.com/vmunix/vidplay/internal/events"
	"github.com/vmunix/vidplay/internal/handlers"
	"github.com/vmunix/vidplay/internal/player"
	"github.com/vmunix/vidplay/internal/repl"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var welcome = []string{
	"Hello and welcome to vidplay, what would you like to do?",
	"Enter HELP for list of available commands or EXIT to terminate.",
}

const goodbye = "vidplay has now terminated its execution. Thank you and goodbye!"

func runPlayer(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := cmd.InOrStdin()
	return play(ctx, cfg, in, cmd.OutOrStdout(), isTerminal(in), logger)
}

// play runs one session until EXIT, end of input or cancellation.
// Prompt and welcome text are only shown to interactive users.
func play(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, interactive bool, logger *slog.Logger) error {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	sessionID := uuid.NewString()
	logger = logger.With("session", sessionID)

	opts := player.Options{Rand: newRand(cfg.Player.Seed)}

	var eventLog *events.EventLog
	if cfg.History.Enabled {
		db, err := openHistory(cfg.History.Path)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		eventLog = events.NewEventLog(db, sessionID)
		opts.History = eventLog
	}

	bus := events.NewBus(eventLog, logger.With("component", "bus"))
	defer func() { _ = bus.Close() }()
	opts.Publisher = bus

	session := player.New(cat, opts, logger.With("component", "player"))
	dispatcher := command.NewDispatcher(session, cfg.REPL.Suggest, logger.With("component", "command"))

	rcfg := repl.Config{Goodbye: goodbye}
	if interactive {
		rcfg.Prompt = cfg.REPL.Prompt
		if cfg.REPL.Welcome {
			rcfg.Welcome = welcome
		}
	}

	logger.Info("session started",
		"videos", cat.Len(),
		"history", cfg.History.Enabled,
		"interactive", interactive)

	runner := repl.NewRunner(in, out, dispatcher, rcfg, logger.With("component", "repl"))
	background := []handlers.Handler{
		handlers.NewAuditHandler(bus, logger.With("component", "audit")),
		handlers.NewModerationHandler(bus, logger.With("component", "moderation")),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	for _, h := range background {
		g.Go(func() error {
			// Handlers stop when the session ends; that is not a failure.
			if err := h.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("%s handler: %w", h.Name(), err)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		return runner.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("session ended")
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
