package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

// Attribute bonus coefficients
const (
	DamagePerStrength       = 1
	HealthPerStrength       = 5
	ManaPerIntelligence     = 5
	AttackSpeedPerDexterity = 0.01
	BaseCritChance          = 0.10
	CritChancePerDexterity  = 0.01
	CritMultiplier          = 2
)

// CalculateEffectiveStats returns base stats plus equipment and attribute
// bonuses. The character is not modified.
func CalculateEffectiveStats(c *entities.Character) entities.Stats {
	if c == nil {
		return entities.Stats{}
	}

	out := c.Stats
	for _, item := range c.Equipment.Items() {
		applyItem(&out, item)
	}

	out.Damage += out.Strength * DamagePerStrength
	out.Health += out.Strength * HealthPerStrength
	out.Mana += out.Intelligence * ManaPerIntelligence
	out.AttackSpeed += float64(out.Dexterity) * AttackSpeedPerDexterity
	return out
}

func applyItem(s *entities.Stats, item *entities.Item) {
	switch item.Type {
	case entities.ItemTypeWeapon:
		if item.Weapon != nil {
			s.Damage += item.Weapon.Damage
			s.AttackSpeed = item.Weapon.AttackSpeed
		}
	case entities.ItemTypeArmor:
		if item.Armor != nil {
			s.Armor += item.Armor.Armor
			s.Health += item.Armor.Health
		}
	case entities.ItemTypeTrinket:
		if item.Trinket != nil {
			s.Strength += item.Trinket.Strength
			s.Dexterity += item.Trinket.Dexterity
			s.Intelligence += item.Trinket.Intelligence
		}
	case entities.ItemTypePotion:
		// potions are consumed, never worn for stats
	}
}

// MitigatedDamage is damage after armor, never negative
func MitigatedDamage(damage, armor int) int {
	if damage <= armor {
		return 0
	}
	return damage - armor
}

// CritChance is the probability a player hit is critical, capped at 1
func CritChance(dexterity int) float64 {
	return math.Min(BaseCritChance+float64(dexterity)*CritChancePerDexterity, 1)
}

// AttackInterval is the seconds between attacks at the given speed
func AttackInterval(attackSpeed float64) float64 {
	return 1 / attackSpeed
}
