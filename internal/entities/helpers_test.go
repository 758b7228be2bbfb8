package entities_test

import "github.com/KirkDiggler/rpg-idle/internal/entities"

func weapon(id string, dmg int, aspd float64) *entities.Item {
	return &entities.Item{
		ID: id, Type: entities.ItemTypeWeapon, Slot: entities.SlotWeapon, Tier: entities.TierWood, Quantity: 1,
		Weapon: &entities.WeaponStats{WeaponType: entities.WeaponSword, Damage: dmg, AttackSpeed: aspd},
	}
}

func armor(id string, slot entities.Slot, ac, hp int) *entities.Item {
	return &entities.Item{
		ID: id, Type: entities.ItemTypeArmor, Slot: slot, Tier: entities.TierIron,
		Armor: &entities.ArmorStats{Armor: ac, Health: hp},
	}
}

func ring(id string, str, dex, intel int) *entities.Item {
	return &entities.Item{
		ID: id, Type: entities.ItemTypeTrinket, Slot: entities.SlotRing, Tier: entities.TierGold,
		Trinket: &entities.TrinketStats{Strength: str, Dexterity: dex, Intelligence: intel},
	}
}

func potion(id string, heal, qty int) *entities.Item {
	return &entities.Item{
		ID: id, Type: entities.ItemTypePotion, Slot: entities.SlotPotion, Tier: entities.TierNone, Quantity: qty,
		Potion: &entities.PotionStats{HealAmount: heal},
	}
}

func baseStats() entities.Stats {
	return entities.Stats{
		Health: 100, Damage: 5, AttackSpeed: 1, Armor: 5,
		Strength: 1, Dexterity: 1, Intelligence: 1,
	}
}

func ids(items []*entities.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
