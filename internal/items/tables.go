package items

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Scaling is a linear stat curve: Base + PerLevel*level
type Scaling struct {
	Base     float64
	PerLevel float64
}

// At evaluates the curve at level
func (s Scaling) At(level int) float64 {
	return s.Base + s.PerLevel*float64(level)
}

// WeaponCurve is the per-subtype weapon scaling
type WeaponCurve struct {
	Damage      Scaling
	AttackSpeed Scaling
}

// WeaponTier multiplies weapon stats
type WeaponTier struct {
	Damage      float64
	AttackSpeed float64
}

// ArmorCurve is the per-slot armor scaling
type ArmorCurve struct {
	Armor  Scaling
	Health Scaling
}

// ArmorTier multiplies armor stats
type ArmorTier struct {
	Armor  float64
	Health float64
}

// TrinketCurve is the per-slot trinket scaling
type TrinketCurve struct {
	Strength     Scaling
	Dexterity    Scaling
	Intelligence Scaling
}

// Tables holds every number the factory needs. Treat a Tables value as
// read-only once it is handed to a Factory.
type Tables struct {
	Weapons      map[entities.WeaponType]WeaponCurve
	WeaponTiers  map[entities.Tier]WeaponTier
	Armor        map[entities.Slot]ArmorCurve
	ArmorTiers   map[entities.Tier]ArmorTier
	Trinkets     map[entities.Slot]TrinketCurve
	TrinketTiers map[entities.Tier]float64

	// loot potions heal PotionBaseHeal + PotionHealPerLevel*level
	PotionBaseHeal     int
	PotionHealPerLevel int
}

// DefaultTables returns a fresh copy of the game's stat tables
func DefaultTables() *Tables {
	return &Tables{
		Weapons: map[entities.WeaponType]WeaponCurve{
			entities.WeaponSword:  {Damage: Scaling{7, 1.2}, AttackSpeed: Scaling{1, 0.01}},
			entities.WeaponAxe:    {Damage: Scaling{12, 2}, AttackSpeed: Scaling{0.5, 0.005}},
			entities.WeaponBow:    {Damage: Scaling{3, 0.35}, AttackSpeed: Scaling{1.5, 0.05}},
			entities.WeaponDagger: {Damage: Scaling{5, 0.5}, AttackSpeed: Scaling{1.4, 0.04}},
		},
		WeaponTiers: map[entities.Tier]WeaponTier{
			entities.TierWood:    {Damage: 1, AttackSpeed: 1},
			entities.TierIron:    {Damage: 1.2, AttackSpeed: 1.05},
			entities.TierDiamond: {Damage: 1.5, AttackSpeed: 1.1},
			entities.TierGold:    {Damage: 2, AttackSpeed: 1.15},
		},
		Armor: map[entities.Slot]ArmorCurve{
			entities.SlotChest:  {Armor: Scaling{5, 1}, Health: Scaling{0, 2}},
			entities.SlotHelmet: {Armor: Scaling{3, 0.5}, Health: Scaling{0, 1}},
		},
		ArmorTiers: map[entities.Tier]ArmorTier{
			entities.TierWood:    {Armor: 1, Health: 1},
			entities.TierIron:    {Armor: 1.2, Health: 1.05},
			entities.TierDiamond: {Armor: 1.5, Health: 1.1},
			entities.TierGold:    {Armor: 2, Health: 1.15},
		},
		Trinkets: map[entities.Slot]TrinketCurve{
			entities.SlotRing:   {Strength: Scaling{1, 0.25}, Dexterity: Scaling{1, 0.25}, Intelligence: Scaling{1, 0.25}},
			entities.SlotAmulet: {Strength: Scaling{1, 0.5}, Dexterity: Scaling{1, 0.5}, Intelligence: Scaling{1, 0.5}},
		},
		TrinketTiers: map[entities.Tier]float64{
			entities.TierWood:    1,
			entities.TierIron:    1.5,
			entities.TierDiamond: 2,
			entities.TierGold:    2.5,
		},
		PotionBaseHeal:     20,
		PotionHealPerLevel: 5,
	}
}

// Validate checks every subtype and combat tier has an entry
func (t *Tables) Validate() error {
	if t == nil {
		return errors.InvalidArgument("tables are required")
	}

	vb := errors.NewValidationBuilder()
	for _, wt := range entities.WeaponTypes {
		if _, ok := t.Weapons[wt]; !ok {
			vb.Fieldf("weapons", "missing %s", wt)
		}
	}
	for _, slot := range entities.ArmorSlots {
		if _, ok := t.Armor[slot]; !ok {
			vb.Fieldf("armor", "missing %s", slot)
		}
	}
	for _, slot := range entities.TrinketSlots {
		if _, ok := t.Trinkets[slot]; !ok {
			vb.Fieldf("trinkets", "missing %s", slot)
		}
	}
	for _, tier := range entities.CombatTiers {
		if _, ok := t.WeaponTiers[tier]; !ok {
			vb.Fieldf("weaponTiers", "missing %s", tier)
		}
		if _, ok := t.ArmorTiers[tier]; !ok {
			vb.Fieldf("armorTiers", "missing %s", tier)
		}
		if _, ok := t.TrinketTiers[tier]; !ok {
			vb.Fieldf("trinketTiers", "missing %s", tier)
		}
	}
	errors.ValidateMin("potionBaseHeal", t.PotionBaseHeal, 1, vb)
	errors.ValidateMin("potionHealPerLevel", t.PotionHealPerLevel, 0, vb)
	return vb.Build()
}

// PotionHeal is how much a loot potion of the given level restores
func (t *Tables) PotionHeal(level int) int {
	return t.PotionBaseHeal + t.PotionHealPerLevel*level
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}
