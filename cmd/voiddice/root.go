package main

import (
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/void-dice/internal/config"
	"github.com/KirkDiggler/void-dice/internal/errors"
	"github.com/KirkDiggler/void-dice/internal/orchestrators/pool"
	"github.com/KirkDiggler/void-dice/internal/pkg/clock"
	"github.com/KirkDiggler/void-dice/internal/pkg/idgen"
	"github.com/KirkDiggler/void-dice/internal/pkg/roller"
	poolsession "github.com/KirkDiggler/void-dice/internal/repositories/pool_session"
)

// app carries the loaded config and shared flags to every subcommand
type app struct {
	cfg *config.Config

	seed     int64
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "voiddice",
		Short: "Exploding dice pool roller",
		Long: `voiddice rolls pools of six-sided dice. Every die showing 5 or more
spawns a bonus die, faces 2-6 give energy and a 1 gives fury.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "Roller seed, 0 for random (overrides VOID_DICE_SEED)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides VOID_DICE_LOG_LEVEL)")

	rootCmd.AddCommand(a.rollCmd())
	rootCmd.AddCommand(a.bucketCmd())
	rootCmd.AddCommand(a.statsCmd())
	rootCmd.AddCommand(a.playCmd())

	return rootCmd
}

// load reads config from the environment and applies flag overrides
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Debug("Config loaded",
		"base_dice", cfg.BaseDice,
		"max_dice", cfg.MaxDice,
		"seed", cfg.Seed,
	)

	return nil
}

func (a *app) newRoller() dice.Roller {
	return roller.New(a.cfg.Seed)
}

// newPoolService wires the pool orchestrator over an in-memory session store
func (a *app) newPoolService() (pool.Service, error) {
	return pool.NewOrchestrator(&pool.Config{
		SessionRepo:        poolsession.NewInMemory(),
		SessionIDGenerator: idgen.NewUUID(idgen.PrefixPool),
		RollIDGenerator:    idgen.NewUUID(idgen.PrefixRoll),
		Clock:              clock.New(),
		Roller:             a.newRoller(),
		MaxDice:            a.cfg.MaxDice,
	})
}
