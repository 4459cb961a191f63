package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/cli"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/presets"
	redisclient "github.com/KirkDiggler/rpg-dungeon/internal/redis"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/gamestate"
)

// app is everything one command needs
type app struct {
	handler *cli.Handler
	closers []func() error
}

func (a *app) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			slog.Warn("failed to release resource", "error", err)
		}
	}
}

// newApp wires config, storage, the orchestrator and the terminal handler
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{}
	repo, err := newRepository(ctx, cfg, a)
	if err != nil {
		a.close()
		return nil, err
	}

	bus := events.NewBus()
	printer := cli.NewEventPrinter(os.Stdout)
	printer.Subscribe(bus)

	gameService, err := game.NewOrchestrator(&game.Config{
		Repository:     repo,
		Catalog:        catalog,
		Roller:         dice.DefaultRoller,
		EventBus:       bus,
		IDGenerator:    idgen.NewUUID("game"),
		TurnDuration:   cfg.TurnDuration(),
		MaxBattleTurns: cfg.MaxBattleTurns,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create game orchestrator")
	}

	a.handler, err = cli.NewHandler(&cli.HandlerConfig{
		GameService: gameService,
		Out:         os.Stdout,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create handler")
	}

	return a, nil
}

func loadCatalog(cfg *config.Config) (*presets.Catalog, error) {
	if cfg.Presets == "" {
		return presets.Default()
	}
	slog.Info("loading presets", "path", cfg.Presets)
	return presets.LoadFile(cfg.Presets)
}

func newRepository(ctx context.Context, cfg *config.Config, a *app) (gamestate.Repository, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		if err := redisclient.Ping(ctx, client); err != nil {
			return nil, err
		}
		return gamestate.NewRedisRepository(&gamestate.RedisConfig{
			Client: client,
			Clock:  clock.New(),
		})
	case config.StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o750); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to create directory for %s", cfg.SQLitePath)
		}
		repo, err := gamestate.NewSQLiteRepository(&gamestate.SQLiteConfig{
			Path:  cfg.SQLitePath,
			Clock: clock.New(),
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		return gamestate.NewFileRepository(&gamestate.FileConfig{
			Dir:   cfg.SaveDir,
			Clock: clock.New(),
		})
	}
}

// run builds the app, hands its handler to fn and releases resources
func run(fn func(ctx context.Context, h *cli.Handler) error) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return fn(ctx, a.handler)
}
