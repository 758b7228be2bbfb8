package builders

import (
	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

// Weapon builds a wood weapon
func Weapon(id string, weaponType entities.WeaponType, damage int, attackSpeed float64) *entities.Item {
	return &entities.Item{
		ID:       id,
		Type:     entities.ItemTypeWeapon,
		Slot:     entities.SlotWeapon,
		Tier:     entities.TierWood,
		Sprite:   "wood_" + string(weaponType) + ".png",
		Quantity: 1,
		Weapon:   &entities.WeaponStats{WeaponType: weaponType, Damage: damage, AttackSpeed: attackSpeed},
	}
}

// Armor builds an iron armor piece for slot
func Armor(id string, slot entities.Slot, armor, health int) *entities.Item {
	return &entities.Item{
		ID:       id,
		Type:     entities.ItemTypeArmor,
		Slot:     slot,
		Tier:     entities.TierIron,
		Quantity: 1,
		Armor:    &entities.ArmorStats{Armor: armor, Health: health},
	}
}

// Ring builds a gold ring
func Ring(id string, strength, dexterity, intelligence int) *entities.Item {
	return &entities.Item{
		ID:       id,
		Type:     entities.ItemTypeTrinket,
		Slot:     entities.SlotRing,
		Tier:     entities.TierGold,
		Quantity: 1,
		Trinket:  &entities.TrinketStats{Strength: strength, Dexterity: dexterity, Intelligence: intelligence},
	}
}

// Potion builds a stack of potions
func Potion(id string, heal, quantity int) *entities.Item {
	return &entities.Item{
		ID:       id,
		Type:     entities.ItemTypePotion,
		Slot:     entities.SlotPotion,
		Tier:     entities.TierNone,
		Sprite:   "potion.png",
		Quantity: quantity,
		Potion:   &entities.PotionStats{HealAmount: heal},
	}
}
