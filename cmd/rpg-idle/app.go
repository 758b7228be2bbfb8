package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/catalog"
	"github.com/KirkDiggler/rpg-idle/internal/config"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/items"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/logger"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/random"
	redisclient "github.com/KirkDiggler/rpg-idle/internal/redis"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/saves"
)

// app is the wired game session used by every command
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	svc     game.Service
	repo    saves.Repository
	closers []func() error
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if slotName != "" {
		cfg.Storage.Slot = slotName
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: log}

	repo, err := a.newRepository()
	if err != nil {
		a.close()
		return nil, err
	}
	a.repo = repo

	rng := random.New(nil)
	if cfg.Game.Seed != 0 {
		rng = random.NewSeeded(cfg.Game.Seed)
	}

	factory, err := items.NewFactory(&items.FactoryConfig{Logger: log})
	if err != nil {
		a.close()
		return nil, err
	}

	loot, err := items.NewLootGenerator(&items.LootGeneratorConfig{
		Factory: factory,
		Random:  rng,
		Logger:  log,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	enemies, err := catalog.NewEnemyFactory(&catalog.EnemyFactoryConfig{
		Loot: loot,
		LootConfig: items.LootConfig{
			BaseDropChance:       cfg.Loot.BaseDropChance,
			MinItems:             cfg.Loot.MinItems,
			MaxItems:             cfg.Loot.MaxItems,
			AdditionalItemChance: cfg.Loot.AdditionalItemChance,
		},
		Logger: log,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	cat, err := catalog.Default()
	if err != nil {
		a.close()
		return nil, err
	}

	svc, err := game.NewOrchestrator(&game.Config{
		Repository:   repo,
		Catalog:      cat,
		Items:        factory,
		Enemies:      enemies,
		Random:       rng,
		Clock:        clock.New(),
		IDGenerator:  idgen.NewUUID("char"),
		Slot:         cfg.Storage.Slot,
		Autosave:     cfg.Game.Autosave,
		TickInterval: cfg.Combat.TickInterval,
		EventBus:     events.NewBus(),
		Logger:       log,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.svc = svc

	return a, nil
}

func (a *app) newRepository() (saves.Repository, error) {
	storage := a.cfg.Storage

	switch storage.Backend {
	case config.BackendRedis:
		client, err := redisclient.NewClient(storage.RedisAddr, nil)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		a.closers = append(a.closers, client.Close)
		return saves.NewRedis(&saves.RedisConfig{Client: client, Logger: a.logger})

	case config.BackendSQLite:
		if dir := filepath.Dir(storage.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrapf(err, "failed to create %s", dir)
			}
		}
		db, err := saves.OpenSQLite(storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		return saves.NewSQLite(&saves.SQLiteConfig{DB: db, Logger: a.logger})

	default:
		a.logger.Warn("using in-memory saves; progress is lost when the command exits")
		return saves.NewInMemory(), nil
	}
}

// session loads the configured slot, reporting a recovered load on stderr
func (a *app) session(ctx context.Context) (*game.LoadGameOutput, error) {
	out, err := a.svc.LoadGame(ctx, &game.LoadGameInput{})
	if err != nil {
		return nil, err
	}
	if out.Recovered && !errors.IsNotFound(out.Cause) {
		a.logger.Warn("save could not be loaded, started a new game", zap.Error(out.Cause))
	}
	return out, nil
}

// persist saves the game unless autosave already did
func (a *app) persist(ctx context.Context) error {
	if a.cfg.Game.Autosave {
		return nil
	}
	_, err := a.svc.SaveGame(ctx, &game.SaveGameInput{})
	return err
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
