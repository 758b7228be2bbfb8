package catalog

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/items"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
)

// EnemyFactoryConfig configures an EnemyFactory
type EnemyFactoryConfig struct {
	Loot        *items.LootGenerator
	LootConfig  items.LootConfig
	IDGenerator idgen.Generator
	Logger      *zap.Logger
}

// Validate checks required dependencies
func (cfg *EnemyFactoryConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.Loot == nil {
		return errors.NewValidationBuilder().RequiredField("Loot").Build()
	}
	return cfg.LootConfig.Validate()
}

// EnemyFactory creates enemies with their loot already rolled
type EnemyFactory struct {
	loot       *items.LootGenerator
	lootConfig items.LootConfig
	ids        idgen.Generator
	logger     *zap.Logger
}

// NewEnemyFactory creates an EnemyFactory
func NewEnemyFactory(cfg *EnemyFactoryConfig) (*EnemyFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewTimestamp()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &EnemyFactory{
		loot:       cfg.Loot,
		lootConfig: cfg.LootConfig,
		ids:        ids,
		logger:     logger,
	}, nil
}

// CreateEnemy builds an enemy from a scaled prefab, rolling loot at the
// prefab's level
func (f *EnemyFactory) CreateEnemy(prefab entities.EnemyPrefab) (*entities.Enemy, error) {
	level := prefab.Level
	if level < 1 {
		level = 1
	}

	loot, err := f.loot.Generate(level, f.lootConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll loot for %s", prefab.Name)
	}

	return entities.NewEnemy("enemy_"+f.ids.Generate(), prefab, loot), nil
}

// CreateWave builds a fresh enemy wave for a definition
func (f *EnemyFactory) CreateWave(def entities.WaveDefinition) (*entities.EnemyWave, error) {
	if len(def.Enemies) == 0 {
		return nil, errors.InvalidArgumentf("wave %d has no enemies", def.ID)
	}

	wave := &entities.EnemyWave{
		WaveID:  def.ID,
		Name:    def.Name,
		Enemies: make([]*entities.Enemy, 0, len(def.Enemies)),
	}
	for _, prefab := range def.Enemies {
		enemy, err := f.CreateEnemy(prefab)
		if err != nil {
			return nil, err
		}
		wave.Enemies = append(wave.Enemies, enemy)
	}

	f.logger.Debug("created wave",
		zap.Int("wave_id", def.ID),
		zap.Int("enemies", wave.Len()))
	return wave, nil
}
