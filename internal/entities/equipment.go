package entities

import "github.com/KirkDiggler/rpg-idle/internal/errors"

// EquipmentSlot names one of the seven character equipment slots
type EquipmentSlot string

// Equipment slots
const (
	EquipWeapon EquipmentSlot = "weapon"
	EquipChest  EquipmentSlot = "chest"
	EquipHelmet EquipmentSlot = "helmet"
	EquipRing1  EquipmentSlot = "ring1"
	EquipRing2  EquipmentSlot = "ring2"
	EquipAmulet EquipmentSlot = "amulet"
	EquipPotion EquipmentSlot = "potion"
)

// EquipmentSlots lists every slot in display order
var EquipmentSlots = []EquipmentSlot{
	EquipWeapon, EquipChest, EquipHelmet, EquipRing1, EquipRing2, EquipAmulet, EquipPotion,
}

// ParseEquipmentSlot converts user input into an EquipmentSlot
func ParseEquipmentSlot(s string) (EquipmentSlot, error) {
	for _, slot := range EquipmentSlots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown equipment slot %q", s)
}

// SlotsFor returns the equipment slots an item slot can occupy, in fill order
func SlotsFor(s Slot) []EquipmentSlot {
	switch s {
	case SlotWeapon:
		return []EquipmentSlot{EquipWeapon}
	case SlotChest:
		return []EquipmentSlot{EquipChest}
	case SlotHelmet:
		return []EquipmentSlot{EquipHelmet}
	case SlotRing:
		return []EquipmentSlot{EquipRing1, EquipRing2}
	case SlotAmulet:
		return []EquipmentSlot{EquipAmulet}
	case SlotPotion:
		return []EquipmentSlot{EquipPotion}
	}
	return nil
}

// Equipment holds what a character is wearing; nil means empty
type Equipment struct {
	Weapon *Item `json:"weapon"`
	Chest  *Item `json:"chest"`
	Helmet *Item `json:"helmet"`
	Ring1  *Item `json:"ring1"`
	Ring2  *Item `json:"ring2"`
	Amulet *Item `json:"amulet"`
	Potion *Item `json:"potion"`
}

func (e *Equipment) ref(slot EquipmentSlot) (**Item, error) {
	switch slot {
	case EquipWeapon:
		return &e.Weapon, nil
	case EquipChest:
		return &e.Chest, nil
	case EquipHelmet:
		return &e.Helmet, nil
	case EquipRing1:
		return &e.Ring1, nil
	case EquipRing2:
		return &e.Ring2, nil
	case EquipAmulet:
		return &e.Amulet, nil
	case EquipPotion:
		return &e.Potion, nil
	}
	return nil, errors.InvalidArgumentf("unknown equipment slot %q", slot)
}

// Get returns the item in slot, or nil when it is empty
func (e *Equipment) Get(slot EquipmentSlot) (*Item, error) {
	p, err := e.ref(slot)
	if err != nil {
		return nil, err
	}
	return *p, nil
}

// put places item in slot and returns what was there
func (e *Equipment) put(slot EquipmentSlot, item *Item) (*Item, error) {
	p, err := e.ref(slot)
	if err != nil {
		return nil, err
	}
	prev := *p
	*p = item
	return prev, nil
}

// Items returns the equipped items in slot order
func (e *Equipment) Items() []*Item {
	var out []*Item
	for _, slot := range EquipmentSlots {
		if item, _ := e.Get(slot); item != nil {
			out = append(out, item)
		}
	}
	return out
}

// SlotOf returns the slot holding itemID
func (e *Equipment) SlotOf(itemID string) (EquipmentSlot, bool) {
	for _, slot := range EquipmentSlots {
		if item, _ := e.Get(slot); item != nil && item.ID == itemID {
			return slot, true
		}
	}
	return "", false
}

// Contains reports whether itemID is equipped
func (e *Equipment) Contains(itemID string) bool {
	_, ok := e.SlotOf(itemID)
	return ok
}

// Validate checks every equipped item is valid and sits in a slot it fits
func (e *Equipment) Validate() error {
	for _, slot := range EquipmentSlots {
		item, _ := e.Get(slot)
		if item == nil {
			continue
		}
		if err := item.Validate(); err != nil {
			return errors.Wrapf(err, "equipment %s", slot)
		}
		fits := false
		for _, s := range SlotsFor(item.Slot) {
			if s == slot {
				fits = true
				break
			}
		}
		if !fits {
			return errors.InvalidArgumentf("item %s with slot %s cannot be equipped in %s", item.ID, item.Slot, slot)
		}
	}
	return nil
}
