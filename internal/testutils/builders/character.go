// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	char *entities.Character
}

// NewCharacterBuilder creates a level 1 character with the default stat line
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		char: entities.NewCharacter("char-test-123", entities.Stats{
			Health: 100, Damage: 5, AttackSpeed: 1, Armor: 5,
			Strength: 1, Dexterity: 1, Intelligence: 1,
		}, "player.png"),
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.char.ID = id
	return b
}

// WithStats replaces the base stats
func (b *CharacterBuilder) WithStats(stats entities.Stats) *CharacterBuilder {
	b.char.Stats = stats
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.char.Level = level
	return b
}

// WithExperience sets current and lifetime experience
func (b *CharacterBuilder) WithExperience(current, total int) *CharacterBuilder {
	b.char.Experience = current
	b.char.TotalExperience = total
	return b
}

// WithGold sets the gold balance
func (b *CharacterBuilder) WithGold(gold int) *CharacterBuilder {
	b.char.Gold = gold
	return b
}

// WithAttributePoints sets the unallocated attribute points
func (b *CharacterBuilder) WithAttributePoints(points int) *CharacterBuilder {
	b.char.UnallocAttrPts = points
	return b
}

// WithInventory appends items to the inventory
func (b *CharacterBuilder) WithInventory(items ...*entities.Item) *CharacterBuilder {
	b.char.Inventory = append(b.char.Inventory, items...)
	return b
}

// WithEquipped places an item in the inventory and equips it
func (b *CharacterBuilder) WithEquipped(item *entities.Item) *CharacterBuilder {
	b.char.Inventory = append(b.char.Inventory, item)
	if _, err := b.char.EquipItem(item.ID); err != nil {
		panic(err)
	}
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.char
}
