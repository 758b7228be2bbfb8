package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// EntityTypeCharacter is returned by Character.GetType
const EntityTypeCharacter = "character"

// AttributePointsPerLevel is granted on every level up
const AttributePointsPerLevel = 4

var _ core.Entity = (*Character)(nil)

// Character is the player aggregate. It is mutated only through its methods
// and is not safe for concurrent use.
type Character struct {
	ID              string
	Stats           Stats // base stats; effective stats are computed by the engine
	Inventory       []*Item
	Equipment       Equipment
	Sprite          string
	Experience      int
	Level           int
	TotalExperience int
	UnallocAttrPts  int
	Gold            int
}

// NewCharacter creates a level 1 character with empty inventory and equipment
func NewCharacter(id string, stats Stats, sprite string) *Character {
	return &Character{
		ID:     id,
		Stats:  stats,
		Sprite: sprite,
		Level:  1,
	}
}

// GetID implements core.Entity
func (c *Character) GetID() string { return c.ID }

// GetType implements core.Entity
func (c *Character) GetType() string { return EntityTypeCharacter }

// ExperienceToNextLevel is the cumulative Experience at which the character
// reaches the next level. Experience is never reset on level-up.
func (c *Character) ExperienceToNextLevel() int {
	return c.Level * 125
}

// FightEndResult describes what a HandleFightEnd call changed
type FightEndResult struct {
	ExperienceGained int
	GoldGained       int
	PreviousLevel    int
	Level            int
	LevelsGained     int
	Equipped         []*Item // loot placed straight into empty slots
	Stashed          []*Item // loot appended to the inventory
}

// HandleFightEnd grants experience, gold and loot from a defeated enemy, then
// levels the character up as many times as the experience allows. Loot is
// auto-equipped into empty matching slots and stashed otherwise.
func (c *Character) HandleFightEnd(xp int, loot []*Item, gold int) (*FightEndResult, error) {
	if xp < 0 {
		return nil, errors.InvalidArgumentf("experience gained must not be negative, got %d", xp)
	}
	if gold < 0 {
		return nil, errors.InvalidArgumentf("gold gained must not be negative, got %d", gold)
	}
	if err := c.checkNewItems(loot); err != nil {
		return nil, err
	}

	result := &FightEndResult{
		ExperienceGained: xp,
		GoldGained:       gold,
		PreviousLevel:    c.Level,
	}

	c.Experience += xp
	c.TotalExperience += xp
	c.Gold += gold

	for _, item := range loot {
		if c.tryAutoEquip(item) {
			result.Equipped = append(result.Equipped, item)
			continue
		}
		c.Inventory = append(c.Inventory, item)
		result.Stashed = append(result.Stashed, item)
	}

	for c.Experience >= c.ExperienceToNextLevel() {
		c.Level++
		c.UnallocAttrPts += AttributePointsPerLevel
	}

	result.Level = c.Level
	result.LevelsGained = c.Level - result.PreviousLevel
	return result, nil
}

func (c *Character) tryAutoEquip(item *Item) bool {
	for _, slot := range SlotsFor(item.Slot) {
		current, _ := c.Equipment.Get(slot)
		if current == nil {
			_, _ = c.Equipment.put(slot, item)
			return true
		}
	}
	return false
}

// checkNewItems rejects nil, invalid or already owned items, and duplicates
// within items itself
func (c *Character) checkNewItems(items []*Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ID]; dup || c.Owns(item.ID) {
			return errors.AlreadyExistsf("item %s is already owned", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// Owns reports whether an item is in the inventory or equipped
func (c *Character) Owns(itemID string) bool {
	return c.inventoryIndex(itemID) >= 0 || c.Equipment.Contains(itemID)
}

func (c *Character) inventoryIndex(itemID string) int {
	for i, item := range c.Inventory {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// InventoryItem returns the inventory item with itemID
func (c *Character) InventoryItem(itemID string) (*Item, bool) {
	idx := c.inventoryIndex(itemID)
	if idx < 0 {
		return nil, false
	}
	return c.Inventory[idx], true
}

// AddToInventory appends items to the end of the inventory
func (c *Character) AddToInventory(items ...*Item) error {
	if err := c.checkNewItems(items); err != nil {
		return err
	}
	c.Inventory = append(c.Inventory, items...)
	return nil
}

func (c *Character) removeFromInventory(idx int) *Item {
	item := c.Inventory[idx]
	c.Inventory = append(c.Inventory[:idx:idx], c.Inventory[idx+1:]...)
	return item
}

// EquipItem moves an inventory item into its slot. Whatever the slot held is
// appended to the inventory and returned. A ring goes to ring1 when empty,
// then ring2 when empty, and otherwise replaces ring1.
func (c *Character) EquipItem(itemID string) (*Item, error) {
	idx := c.inventoryIndex(itemID)
	if idx < 0 {
		return nil, errors.NotFoundf("item %s is not in the inventory", itemID)
	}

	slots := SlotsFor(c.Inventory[idx].Slot)
	if len(slots) == 0 {
		return nil, errors.InvalidArgumentf("item %s has unknown slot %q", itemID, c.Inventory[idx].Slot)
	}

	target := slots[0]
	if len(slots) > 1 {
		for _, s := range slots {
			if current, _ := c.Equipment.Get(s); current == nil {
				target = s
				break
			}
		}
	}

	item := c.removeFromInventory(idx)
	displaced, err := c.Equipment.put(target, item)
	if err != nil {
		return nil, err
	}
	if displaced != nil {
		c.Inventory = append(c.Inventory, displaced)
	}
	return displaced, nil
}

// UnequipItem moves the item in slot to the end of the inventory. An empty
// slot returns nil.
func (c *Character) UnequipItem(slot EquipmentSlot) (*Item, error) {
	item, err := c.Equipment.put(slot, nil)
	if err != nil {
		return nil, err
	}
	if item != nil {
		c.Inventory = append(c.Inventory, item)
	}
	return item, nil
}

// AllocateAttribute spends one unallocated point on attr. It returns false
// when no points are available.
func (c *Character) AllocateAttribute(attr Attribute) (bool, error) {
	var target *int
	switch attr {
	case AttributeStrength:
		target = &c.Stats.Strength
	case AttributeDexterity:
		target = &c.Stats.Dexterity
	case AttributeIntelligence:
		target = &c.Stats.Intelligence
	default:
		return false, errors.InvalidArgumentf("unknown attribute %q", attr)
	}

	if c.UnallocAttrPts <= 0 {
		return false, nil
	}

	*target++
	c.UnallocAttrPts--
	return true, nil
}

// ConsumePotion uses one potion, preferring the equipped one and falling back
// to the first potion in the inventory. It returns the heal amount, or false
// when the character has no potions.
func (c *Character) ConsumePotion() (int, bool) {
	if p := c.Equipment.Potion; p != nil && p.Potion != nil {
		if p.Quantity <= 1 {
			c.Equipment.Potion = nil
		} else {
			p.Quantity--
		}
		return p.Potion.HealAmount, true
	}

	for i, item := range c.Inventory {
		if item.Type != ItemTypePotion || item.Potion == nil {
			continue
		}
		if item.Quantity <= 1 {
			c.removeFromInventory(i)
		} else {
			item.Quantity--
		}
		return item.Potion.HealAmount, true
	}
	return 0, false
}

// PotionCount totals potion quantity across equipment and inventory
func (c *Character) PotionCount() int {
	count := 0
	add := func(item *Item) {
		if item == nil || item.Type != ItemTypePotion {
			return
		}
		if item.Quantity < 1 {
			count++
			return
		}
		count += item.Quantity
	}
	add(c.Equipment.Potion)
	for _, item := range c.Inventory {
		add(item)
	}
	return count
}

// Validate checks the aggregate invariants, used when rebuilding a character
// from a snapshot
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateMin("level", c.Level, 1, vb)
	errors.ValidateMin("experience", c.Experience, 0, vb)
	errors.ValidateMin("totalExperience", c.TotalExperience, c.Experience, vb)
	errors.ValidateMin("unallocAttrPts", c.UnallocAttrPts, 0, vb)
	errors.ValidateMin("gold", c.Gold, 0, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if err := c.Stats.Validate(); err != nil {
		return errors.Wrap(err, "stats")
	}
	if err := c.Equipment.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for _, item := range c.Equipment.Items() {
		seen[item.ID] = struct{}{}
	}
	for i, item := range c.Inventory {
		if err := item.Validate(); err != nil {
			return errors.Wrapf(err, "inventory[%d]", i)
		}
		if _, dup := seen[item.ID]; dup {
			return errors.InvalidArgumentf("item %s appears more than once", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
