package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// ItemType discriminates the Item union
type ItemType string

// Item types
const (
	ItemTypeWeapon  ItemType = "weapon"
	ItemTypeArmor   ItemType = "armor"
	ItemTypeTrinket ItemType = "trinket"
	ItemTypePotion  ItemType = "potion"
)

// Slot is the kind of equipment slot an item fits
type Slot string

// Item slots. Rings fit either ring slot of Equipment.
const (
	SlotWeapon Slot = "weapon"
	SlotHelmet Slot = "helmet"
	SlotChest  Slot = "chest"
	SlotRing   Slot = "ring"
	SlotAmulet Slot = "amulet"
	SlotPotion Slot = "potion"
)

// Tier is an item's material grade
type Tier string

// Tiers. Potions are always TierNone.
const (
	TierWood    Tier = "wood"
	TierIron    Tier = "iron"
	TierGold    Tier = "gold"
	TierDiamond Tier = "diamond"
	TierNone    Tier = "none"
)

// CombatTiers lists the tiers a weapon, armor or trinket may carry
var CombatTiers = []Tier{TierWood, TierIron, TierDiamond, TierGold}

// IsCombat reports whether t is one of the four combat tiers
func (t Tier) IsCombat() bool {
	switch t {
	case TierWood, TierIron, TierGold, TierDiamond:
		return true
	}
	return false
}

// WeaponType is a weapon subtype
type WeaponType string

// Weapon subtypes
const (
	WeaponSword  WeaponType = "sword"
	WeaponAxe    WeaponType = "axe"
	WeaponBow    WeaponType = "bow"
	WeaponDagger WeaponType = "dagger"
)

// WeaponTypes lists every weapon subtype
var WeaponTypes = []WeaponType{WeaponSword, WeaponAxe, WeaponBow, WeaponDagger}

// ArmorSlots and TrinketSlots list the slots each family can take
var (
	ArmorSlots   = []Slot{SlotHelmet, SlotChest}
	TrinketSlots = []Slot{SlotRing, SlotAmulet}
)

// WeaponStats is the weapon payload
type WeaponStats struct {
	WeaponType  WeaponType `json:"weaponType"`
	Damage      int        `json:"damage"`
	AttackSpeed float64    `json:"attackSpeed"`
}

// ArmorStats is the armor payload
type ArmorStats struct {
	Armor  int `json:"armor"`
	Health int `json:"health"`
}

// TrinketStats is the trinket payload
type TrinketStats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
}

// PotionStats is the potion payload
type PotionStats struct {
	HealAmount int `json:"healAmount"`
}

// Item is a tagged union over the four item kinds. Exactly the payload
// matching Type is non-nil.
type Item struct {
	ID       string   `json:"id"`
	Type     ItemType `json:"type"`
	Slot     Slot     `json:"slot"`
	Tier     Tier     `json:"tier"`
	Sprite   string   `json:"sprite"`
	Quantity int      `json:"quantity"`

	Weapon  *WeaponStats  `json:"weapon,omitempty"`
	Armor   *ArmorStats   `json:"armor,omitempty"`
	Trinket *TrinketStats `json:"trinket,omitempty"`
	Potion  *PotionStats  `json:"potion,omitempty"`
}

// Name is a display name such as "iron sword" or "potion"
func (i *Item) Name() string {
	var sub string
	switch i.Type {
	case ItemTypeWeapon:
		if i.Weapon != nil {
			sub = string(i.Weapon.WeaponType)
		}
	case ItemTypeArmor, ItemTypeTrinket:
		sub = string(i.Slot)
	case ItemTypePotion:
		return "potion"
	}
	if sub == "" {
		sub = string(i.Type)
	}
	return fmt.Sprintf("%s %s", i.Tier, sub)
}

// Validate checks that the discriminant, slot, tier and payload agree
func (i *Item) Validate() error {
	if i == nil {
		return errors.InvalidArgument("item is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", i.ID, vb)

	payloads := 0
	for _, set := range []bool{i.Weapon != nil, i.Armor != nil, i.Trinket != nil, i.Potion != nil} {
		if set {
			payloads++
		}
	}
	if payloads != 1 {
		vb.Fieldf("type", "exactly one payload must be set, found %d", payloads)
	}

	switch i.Type {
	case ItemTypeWeapon:
		if i.Weapon == nil {
			vb.Field("weapon", "is required for weapons")
		} else if i.Weapon.AttackSpeed <= 0 {
			vb.Field("weapon.attackSpeed", "must be positive")
		}
		if i.Slot != SlotWeapon {
			vb.Fieldf("slot", "weapon must use slot %s", SlotWeapon)
		}
	case ItemTypeArmor:
		if i.Armor == nil {
			vb.Field("armor", "is required for armor")
		}
		if i.Slot != SlotHelmet && i.Slot != SlotChest {
			vb.Fieldf("slot", "armor must use slot %s or %s", SlotHelmet, SlotChest)
		}
	case ItemTypeTrinket:
		if i.Trinket == nil {
			vb.Field("trinket", "is required for trinkets")
		}
		if i.Slot != SlotRing && i.Slot != SlotAmulet {
			vb.Fieldf("slot", "trinket must use slot %s or %s", SlotRing, SlotAmulet)
		}
	case ItemTypePotion:
		if i.Potion == nil {
			vb.Field("potion", "is required for potions")
		}
		if i.Slot != SlotPotion {
			vb.Fieldf("slot", "potion must use slot %s", SlotPotion)
		}
		if i.Tier != TierNone {
			vb.Field("tier", "potions must have tier none")
		}
	default:
		vb.Fieldf("type", "unknown item type %q", i.Type)
	}

	if i.Type != ItemTypePotion && !i.Tier.IsCombat() {
		vb.Fieldf("tier", "unknown or invalid tier %q", i.Tier)
	}
	errors.ValidateMin("quantity", i.Quantity, 0, vb)

	return vb.Build()
}
