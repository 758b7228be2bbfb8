// Package items builds items from stat tables and rolls random loot
package items

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
)

// FactoryConfig configures a Factory. Zero fields fall back to defaults.
type FactoryConfig struct {
	Tables      *Tables
	IDGenerator idgen.Generator
	Logger      *zap.Logger
}

// Validate checks the configuration after defaults are applied
func (cfg *FactoryConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	return cfg.Tables.Validate()
}

// Factory creates items with fresh ids
type Factory struct {
	tables *Tables
	ids    idgen.Generator
	logger *zap.Logger
}

// NewFactory creates a Factory
func NewFactory(cfg *FactoryConfig) (*Factory, error) {
	if cfg == nil {
		cfg = &FactoryConfig{}
	}
	resolved := *cfg
	if resolved.Tables == nil {
		resolved.Tables = DefaultTables()
	}
	if resolved.IDGenerator == nil {
		resolved.IDGenerator = idgen.NewTimestamp()
	}
	if resolved.Logger == nil {
		resolved.Logger = zap.NewNop()
	}
	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	return &Factory{
		tables: resolved.Tables,
		ids:    resolved.IDGenerator,
		logger: resolved.Logger,
	}, nil
}

// Tables returns the factory's stat tables
func (f *Factory) Tables() *Tables {
	return f.tables
}

func (f *Factory) newID(subtype string) string {
	return fmt.Sprintf("%s_%s", subtype, f.ids.Generate())
}

func sprite(tier entities.Tier, subtype string) string {
	return fmt.Sprintf("%s_%s.png", tier, subtype)
}

func checkLevelAndTier(level int, tier entities.Tier) error {
	if level < 1 {
		return errors.InvalidArgumentf("item level must be at least 1, got %d", level)
	}
	if !tier.IsCombat() {
		return errors.InvalidArgumentf("tier %q is not a combat tier", tier)
	}
	return nil
}

// CreateWeapon builds a weapon of the given type, level and tier
func (f *Factory) CreateWeapon(weaponType entities.WeaponType, level int, tier entities.Tier) (*entities.Item, error) {
	if err := checkLevelAndTier(level, tier); err != nil {
		return nil, err
	}
	curve, ok := f.tables.Weapons[weaponType]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown weapon type %q", weaponType)
	}
	mult := f.tables.WeaponTiers[tier]

	item := &entities.Item{
		ID:       f.newID(string(weaponType)),
		Type:     entities.ItemTypeWeapon,
		Slot:     entities.SlotWeapon,
		Tier:     tier,
		Sprite:   sprite(tier, string(weaponType)),
		Quantity: 1,
		Weapon: &entities.WeaponStats{
			WeaponType:  weaponType,
			Damage:      floorInt(curve.Damage.At(level) * mult.Damage),
			AttackSpeed: curve.AttackSpeed.At(level) * mult.AttackSpeed,
		},
	}

	f.logger.Debug("created weapon",
		zap.String("id", item.ID),
		zap.String("type", string(weaponType)),
		zap.String("tier", string(tier)),
		zap.Int("level", level))
	return item, nil
}

// CreateArmor builds a helmet or chest piece
func (f *Factory) CreateArmor(slot entities.Slot, level int, tier entities.Tier) (*entities.Item, error) {
	if err := checkLevelAndTier(level, tier); err != nil {
		return nil, err
	}
	curve, ok := f.tables.Armor[slot]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown armor slot %q", slot)
	}
	mult := f.tables.ArmorTiers[tier]

	item := &entities.Item{
		ID:       f.newID(string(slot)),
		Type:     entities.ItemTypeArmor,
		Slot:     slot,
		Tier:     tier,
		Sprite:   sprite(tier, string(slot)),
		Quantity: 1,
		Armor: &entities.ArmorStats{
			Armor:  floorInt(curve.Armor.At(level) * mult.Armor),
			Health: floorInt(curve.Health.At(level) * mult.Health),
		},
	}

	f.logger.Debug("created armor",
		zap.String("id", item.ID),
		zap.String("slot", string(slot)),
		zap.String("tier", string(tier)),
		zap.Int("level", level))
	return item, nil
}

// CreateTrinket builds a ring or amulet
func (f *Factory) CreateTrinket(slot entities.Slot, level int, tier entities.Tier) (*entities.Item, error) {
	if err := checkLevelAndTier(level, tier); err != nil {
		return nil, err
	}
	curve, ok := f.tables.Trinkets[slot]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown trinket slot %q", slot)
	}
	mult := f.tables.TrinketTiers[tier]

	item := &entities.Item{
		ID:       f.newID(string(slot)),
		Type:     entities.ItemTypeTrinket,
		Slot:     slot,
		Tier:     tier,
		Sprite:   sprite(tier, string(slot)),
		Quantity: 1,
		Trinket: &entities.TrinketStats{
			Strength:     floorInt(curve.Strength.At(level) * mult),
			Dexterity:    floorInt(curve.Dexterity.At(level) * mult),
			Intelligence: floorInt(curve.Intelligence.At(level) * mult),
		},
	}

	f.logger.Debug("created trinket",
		zap.String("id", item.ID),
		zap.String("slot", string(slot)),
		zap.String("tier", string(tier)),
		zap.Int("level", level))
	return item, nil
}

// CreatePotion builds a stack of potions
func (f *Factory) CreatePotion(healAmount, quantity int) (*entities.Item, error) {
	if healAmount <= 0 {
		return nil, errors.InvalidArgumentf("heal amount must be positive, got %d", healAmount)
	}
	if quantity < 1 {
		return nil, errors.InvalidArgumentf("quantity must be at least 1, got %d", quantity)
	}

	return &entities.Item{
		ID:       f.newID(string(entities.SlotPotion)),
		Type:     entities.ItemTypePotion,
		Slot:     entities.SlotPotion,
		Tier:     entities.TierNone,
		Sprite:   "potion.png",
		Quantity: quantity,
		Potion:   &entities.PotionStats{HealAmount: healAmount},
	}, nil
}

// CreateLootPotion builds a single potion scaled to level
func (f *Factory) CreateLootPotion(level int) (*entities.Item, error) {
	if level < 1 {
		return nil, errors.InvalidArgumentf("item level must be at least 1, got %d", level)
	}
	return f.CreatePotion(f.tables.PotionHeal(level), 1)
}

// CreateAll builds one of every weapon, armor and trinket subtype in every
// combat tier. It backs the debug item catalogue.
func (f *Factory) CreateAll(level int) ([]*entities.Item, error) {
	var out []*entities.Item
	for _, wt := range entities.WeaponTypes {
		for _, tier := range entities.CombatTiers {
			item, err := f.CreateWeapon(wt, level, tier)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
	}
	for _, slot := range entities.ArmorSlots {
		for _, tier := range entities.CombatTiers {
			item, err := f.CreateArmor(slot, level, tier)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
	}
	for _, slot := range entities.TrinketSlots {
		for _, tier := range entities.CombatTiers {
			item, err := f.CreateTrinket(slot, level, tier)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
	}
	return out, nil
}
