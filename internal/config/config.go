// Package config loads rpg-idle settings from YAML and the environment
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// EnvPrefix is prepended to environment overrides, e.g. RPG_IDLE_STORAGE_BACKEND
const EnvPrefix = "RPG_IDLE"

// Config is the root configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Loot    LootConfig    `mapstructure:"loot"`
	Game    GameConfig    `mapstructure:"game"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// StorageConfig selects where saves live
type StorageConfig struct {
	Backend    string `mapstructure:"backend"` // memory | redis | sqlite
	RedisAddr  string `mapstructure:"redis_addr"`
	SQLitePath string `mapstructure:"sqlite_path"`
	Slot       string `mapstructure:"slot"`
}

// CombatConfig controls combat pacing
type CombatConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// LootConfig mirrors items.LootConfig
type LootConfig struct {
	BaseDropChance       float64 `mapstructure:"base_drop_chance"`
	MinItems             int     `mapstructure:"min_items"`
	MaxItems             int     `mapstructure:"max_items"`
	AdditionalItemChance float64 `mapstructure:"additional_item_chance"`
}

// GameConfig holds session behaviour
type GameConfig struct {
	Autosave bool `mapstructure:"autosave"`
	// Seed makes dice rolls reproducible when non-zero
	Seed int64 `mapstructure:"seed"`
}

// Load reads config from the given YAML file path. An empty path yields the
// defaults plus any RPG_IDLE_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Storage: StorageConfig{
			Backend:    BackendSQLite,
			RedisAddr:  "localhost:6379",
			SQLitePath: "./data/rpg-idle.db",
			Slot:       "default",
		},
		Combat: CombatConfig{TickInterval: 100 * time.Millisecond},
		Loot: LootConfig{
			BaseDropChance:       0.6,
			MinItems:             1,
			MaxItems:             3,
			AdditionalItemChance: 0.35,
		},
		Game: GameConfig{Autosave: true},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.redis_addr", d.Storage.RedisAddr)
	v.SetDefault("storage.sqlite_path", d.Storage.SQLitePath)
	v.SetDefault("storage.slot", d.Storage.Slot)
	v.SetDefault("combat.tick_interval", d.Combat.TickInterval.String())
	v.SetDefault("loot.base_drop_chance", d.Loot.BaseDropChance)
	v.SetDefault("loot.min_items", d.Loot.MinItems)
	v.SetDefault("loot.max_items", d.Loot.MaxItems)
	v.SetDefault("loot.additional_item_chance", d.Loot.AdditionalItemChance)
	v.SetDefault("game.autosave", d.Game.Autosave)
	v.SetDefault("game.seed", d.Game.Seed)
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level),
		[]string{"debug", "info", "warn", "error"}, vb)

	errors.ValidateEnum("storage.backend", c.Storage.Backend,
		[]string{BackendMemory, BackendRedis, BackendSQLite}, vb)
	errors.ValidateRequired("storage.slot", c.Storage.Slot, vb)
	switch c.Storage.Backend {
	case BackendRedis:
		errors.ValidateRequired("storage.redis_addr", c.Storage.RedisAddr, vb)
	case BackendSQLite:
		errors.ValidateRequired("storage.sqlite_path", c.Storage.SQLitePath, vb)
	}

	if c.Combat.TickInterval <= 0 {
		vb.Field("combat.tick_interval", "must be positive")
	}

	errors.ValidateProbability("loot.base_drop_chance", c.Loot.BaseDropChance, vb)
	errors.ValidateProbability("loot.additional_item_chance", c.Loot.AdditionalItemChance, vb)
	errors.ValidateMin("loot.min_items", c.Loot.MinItems, 0, vb)
	if c.Loot.MaxItems < c.Loot.MinItems {
		vb.Field("loot.max_items", "must not be less than loot.min_items")
	}

	return vb.Build()
}
