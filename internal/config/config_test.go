package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-idle/internal/config"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeConfig(body string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestDefaultBackendIsSQLite() {
	cfg := config.Default()
	s.Equal(config.BackendSQLite, cfg.Storage.Backend)
	s.Equal("./data/rpg-idle.db", cfg.Storage.SQLitePath)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoadFile() {
	path := s.writeConfig(`
log:
  level: debug
  development: true
storage:
  backend: sqlite
  sqlite_path: /tmp/idle.db
combat:
  tick_interval: 250ms
loot:
  base_drop_chance: 1
  max_items: 5
game:
  seed: 7
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal("debug", cfg.Log.Level)
	s.True(cfg.Log.Development)
	s.Equal(config.BackendSQLite, cfg.Storage.Backend)
	s.Equal("/tmp/idle.db", cfg.Storage.SQLitePath)
	s.Equal("default", cfg.Storage.Slot)
	s.Equal(250*time.Millisecond, cfg.Combat.TickInterval)
	s.Equal(1.0, cfg.Loot.BaseDropChance)
	s.Equal(1, cfg.Loot.MinItems)
	s.Equal(5, cfg.Loot.MaxItems)
	s.Equal(int64(7), cfg.Game.Seed)
	s.True(cfg.Game.Autosave)
}

func (s *ConfigTestSuite) TestEnvironmentOverride() {
	s.T().Setenv("RPG_IDLE_STORAGE_BACKEND", "redis")
	s.T().Setenv("RPG_IDLE_STORAGE_REDIS_ADDR", "cache:6380")

	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal(config.BackendRedis, cfg.Storage.Backend)
	s.Equal("cache:6380", cfg.Storage.RedisAddr)
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	_, err := config.Load(filepath.Join(s.dir, "nope.yaml"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{
			name:   "unknown backend",
			mutate: func(c *config.Config) { c.Storage.Backend = "postgres" },
			field:  "storage.backend",
		},
		{
			name:   "bad log level",
			mutate: func(c *config.Config) { c.Log.Level = "loud" },
			field:  "log.level",
		},
		{
			name:   "zero tick interval",
			mutate: func(c *config.Config) { c.Combat.TickInterval = 0 },
			field:  "combat.tick_interval",
		},
		{
			name:   "drop chance above one",
			mutate: func(c *config.Config) { c.Loot.BaseDropChance = 1.2 },
			field:  "loot.base_drop_chance",
		},
		{
			name: "max below min",
			mutate: func(c *config.Config) {
				c.Loot.MinItems = 3
				c.Loot.MaxItems = 2
			},
			field: "loot.max_items",
		},
		{
			name: "redis without address",
			mutate: func(c *config.Config) {
				c.Storage.Backend = config.BackendRedis
				c.Storage.RedisAddr = ""
			},
			field: "storage.redis_addr",
		},
		{
			name:   "blank slot",
			mutate: func(c *config.Config) { c.Storage.Slot = " " },
			field:  "storage.slot",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}

	s.Run("defaults are valid", func() {
		s.NoError(config.Default().Validate())
	})
}
