package catalog

import (
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/items"
)

// PlayerSprite is the sprite of a new character
const PlayerSprite = "player.png"

// DefaultStats are a new character's base stats
func DefaultStats() entities.Stats {
	return entities.Stats{
		Health:       100,
		Mana:         0,
		Damage:       5,
		AttackSpeed:  1,
		Armor:        5,
		Strength:     1,
		Dexterity:    1,
		Intelligence: 1,
	}
}

// DefaultCharacter creates a level 1 character holding a wood sword
func DefaultCharacter(id string, factory *items.Factory) (*entities.Character, error) {
	if factory == nil {
		return nil, errors.InvalidArgument("item factory is required")
	}

	sword, err := factory.CreateWeapon(entities.WeaponSword, 1, entities.TierWood)
	if err != nil {
		return nil, err
	}

	c := entities.NewCharacter(id, DefaultStats(), PlayerSprite)
	c.Equipment.Weapon = sword
	return c, nil
}
