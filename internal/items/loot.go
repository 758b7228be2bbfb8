package items

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/random"
)

// LootConfig controls how much loot an enemy drops
type LootConfig struct {
	BaseDropChance       float64
	MinItems             int
	MaxItems             int
	AdditionalItemChance float64
}

// DefaultLootConfig is the drop configuration used for enemies
func DefaultLootConfig() LootConfig {
	return LootConfig{
		BaseDropChance:       0.6,
		MinItems:             1,
		MaxItems:             3,
		AdditionalItemChance: 0.35,
	}
}

// Validate checks chances are probabilities and the item range is sane
func (c LootConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateProbability("baseDropChance", c.BaseDropChance, vb)
	errors.ValidateProbability("additionalItemChance", c.AdditionalItemChance, vb)
	errors.ValidateMin("minItems", c.MinItems, 0, vb)
	if c.MaxItems < c.MinItems {
		vb.Fieldf("maxItems", "must be at least minItems (%d)", c.MinItems)
	}
	return vb.Build()
}

// LootWeights are the weighted tables loot rolls draw from, in selection order
type LootWeights struct {
	Categories []random.Weighted[entities.ItemType]
	Tiers      []random.Weighted[entities.Tier]
}

// DefaultLootWeights favour common categories and cheap tiers
func DefaultLootWeights() *LootWeights {
	return &LootWeights{
		Categories: []random.Weighted[entities.ItemType]{
			{Value: entities.ItemTypeWeapon, Weight: 30},
			{Value: entities.ItemTypeArmor, Weight: 30},
			{Value: entities.ItemTypeTrinket, Weight: 25},
			{Value: entities.ItemTypePotion, Weight: 15},
		},
		Tiers: []random.Weighted[entities.Tier]{
			{Value: entities.TierWood, Weight: 50},
			{Value: entities.TierIron, Weight: 30},
			{Value: entities.TierGold, Weight: 15},
			{Value: entities.TierDiamond, Weight: 5},
		},
	}
}

// LootGeneratorConfig configures a LootGenerator
type LootGeneratorConfig struct {
	Factory *Factory
	Random  *random.Source
	Weights *LootWeights
	Logger  *zap.Logger
}

// Validate checks required dependencies
func (cfg *LootGeneratorConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Factory == nil {
		vb.RequiredField("Factory")
	}
	if cfg.Random == nil {
		vb.RequiredField("Random")
	}
	return vb.Build()
}

// LootGenerator rolls random item drops
type LootGenerator struct {
	factory *Factory
	rng     *random.Source
	weights *LootWeights
	logger  *zap.Logger
}

// NewLootGenerator creates a LootGenerator
func NewLootGenerator(cfg *LootGeneratorConfig) (*LootGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	weights := cfg.Weights
	if weights == nil {
		weights = DefaultLootWeights()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LootGenerator{
		factory: cfg.Factory,
		rng:     cfg.Random,
		weights: weights,
		logger:  logger,
	}, nil
}

// Generate rolls loot for a level. A failed drop roll returns an empty list.
// Otherwise the count starts at MinItems and each slot up to MaxItems adds
// one item on a successful AdditionalItemChance roll.
func (g *LootGenerator) Generate(level int, cfg LootConfig) ([]*entities.Item, error) {
	if level < 1 {
		return nil, errors.InvalidArgumentf("loot level must be at least 1, got %d", level)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !g.rng.Chance(cfg.BaseDropChance) {
		return []*entities.Item{}, nil
	}

	count := cfg.MinItems
	for i := cfg.MinItems; i < cfg.MaxItems; i++ {
		if g.rng.Chance(cfg.AdditionalItemChance) {
			count++
		}
	}

	loot := make([]*entities.Item, 0, count)
	for i := 0; i < count; i++ {
		item, err := g.rollItem(level)
		if err != nil {
			return nil, err
		}
		loot = append(loot, item)
	}

	g.logger.Debug("generated loot", zap.Int("level", level), zap.Int("count", len(loot)))
	return loot, nil
}

func (g *LootGenerator) rollItem(level int) (*entities.Item, error) {
	category := random.Pick(g.rng, g.weights.Categories)
	if category == entities.ItemTypePotion {
		return g.factory.CreateLootPotion(level)
	}

	tier := random.Pick(g.rng, g.weights.Tiers)
	switch category {
	case entities.ItemTypeWeapon:
		return g.factory.CreateWeapon(random.Choose(g.rng, entities.WeaponTypes), level, tier)
	case entities.ItemTypeArmor:
		return g.factory.CreateArmor(random.Choose(g.rng, entities.ArmorSlots), level, tier)
	case entities.ItemTypeTrinket:
		return g.factory.CreateTrinket(random.Choose(g.rng, entities.TrinketSlots), level, tier)
	}
	return nil, errors.Internalf("loot weights produced unknown category %q", category)
}
