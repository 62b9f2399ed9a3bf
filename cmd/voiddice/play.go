package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/void-dice/internal/errors"
	"github.com/KirkDiggler/void-dice/internal/frontend/terminal"
)

func (a *app) playCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Roll dice interactively in the terminal",
		Long: `Open a full-screen dice table. Space or a mouse click adds dice and
rolls, r re-rolls, q or Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPlay(cmd.Context(), logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while playing")

	return cmd
}

func (a *app) runPlay(ctx context.Context, logFile string) error {
	// the screen owns stderr
	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.Wrapf(err, "failed to open log file %s", logFile)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: a.cfg.SlogLevel()}))
	}
	slog.SetDefault(logger)

	service, err := a.newPoolService()
	if err != nil {
		return errors.Wrap(err, "failed to create pool service")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to init screen")
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			logger.Info("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	table, err := terminal.New(&terminal.Config{
		Screen:   screen,
		Pool:     service,
		BaseDice: a.cfg.BaseDice,
		AddStep:  a.cfg.AddStep,
		Logger:   logger,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create terminal app")
	}

	return table.Run(ctx)
}
