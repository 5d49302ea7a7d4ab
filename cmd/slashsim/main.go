package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/katana/internal/config"
	"github.com/udisondev/katana/internal/game/effect"
	"github.com/udisondev/katana/internal/game/slash"
	"github.com/udisondev/katana/internal/scenario"
	"github.com/udisondev/katana/internal/tick"
	"github.com/udisondev/katana/internal/world"
)

const SimConfigPath = "config/slashsim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := SimConfigPath
	if p := os.Getenv("KATANA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	scenarioPath := cfg.ScenarioPath
	if len(os.Args) > 1 {
		scenarioPath = os.Args[1]
	}

	slog.Info("slashsim starting",
		"log_level", cfg.LogLevel,
		"scenario", scenarioPath,
		"tick_rate", cfg.TickRate)

	file, err := scenario.Load(scenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	effects := effect.NewManagers()
	catalog := slash.NewCatalog(effects)
	sc, err := scenario.Build(file, catalog, world.NewObjectIDGenerator())
	if err != nil {
		return fmt.Errorf("building scenario: %w", err)
	}

	engine := slash.NewEngine(cfg.Ability, sc.Grid, sc.World, slash.LogEmitter{})
	charges := slash.NewChargeManager(cfg.Ability, engine)
	tickMgr := tick.NewManager(sc, charges, effects, cfg.TickRate, cfg.MaxTicks)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := tickMgr.Start(gctx); err != nil {
			return fmt.Errorf("tick manager: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation error: %w", err)
	}

	s := tickMgr.Summary()
	slog.Info("simulation finished",
		"scenario", sc.Name,
		"ticks", s.Ticks,
		"charges", s.Charges,
		"slashes", s.Slashes,
		"aborted", s.Aborted,
		"cancelled", s.Cancelled,
		"struck", s.Struck,
		"killed", s.Killed,
		"actor", sc.Actor.Position(),
		"weaponDamage", sc.Weapon.Damage())

	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
