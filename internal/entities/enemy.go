package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// EntityTypeEnemy is returned by Enemy.GetType
const EntityTypeEnemy = "enemy"

var _ core.Entity = (*Enemy)(nil)

// EnemyPrefab is the unscaled template an enemy is built from
type EnemyPrefab struct {
	Name              string
	Health            int
	Damage            int
	Armor             int
	AttackSpeed       float64
	Sprite            string
	ExperienceGranted int
	GoldDropped       int
	Level             int
}

// Scale returns the prefab strengthened for a wave level. Every wave level
// above 1 adds 40% to health, damage, armor, experience and gold, floored.
func (p EnemyPrefab) Scale(waveLevel int) (EnemyPrefab, error) {
	if waveLevel < 1 {
		return EnemyPrefab{}, errors.InvalidArgumentf("wave level must be at least 1, got %d", waveLevel)
	}

	// scale factor in tenths: 1 + 0.4*(level-1)
	tenths := 10 + 4*(waveLevel-1)
	scale := func(v int) int { return v * tenths / 10 }

	out := p
	if waveLevel > 1 {
		out.Name = fmt.Sprintf("%s Lv.%d", p.Name, waveLevel)
	}
	out.Health = scale(p.Health)
	out.Damage = scale(p.Damage)
	out.Armor = scale(p.Armor)
	out.ExperienceGranted = scale(p.ExperienceGranted)
	out.GoldDropped = scale(p.GoldDropped)
	out.Level = waveLevel
	return out, nil
}

// Enemy is a live opponent. Its loot is rolled once when it is created.
type Enemy struct {
	ID                string
	Name              string
	Health            int
	MaxHealth         int
	Damage            int
	Armor             int
	AttackSpeed       float64
	ExperienceGranted int
	GoldDropped       int
	Level             int
	Sprite            string
	Loot              []*Item
}

// NewEnemy builds an enemy at full health from an already scaled prefab
func NewEnemy(id string, p EnemyPrefab, loot []*Item) *Enemy {
	return &Enemy{
		ID:                id,
		Name:              p.Name,
		Health:            p.Health,
		MaxHealth:         p.Health,
		Damage:            p.Damage,
		Armor:             p.Armor,
		AttackSpeed:       p.AttackSpeed,
		ExperienceGranted: p.ExperienceGranted,
		GoldDropped:       p.GoldDropped,
		Level:             p.Level,
		Sprite:            p.Sprite,
		Loot:              loot,
	}
}

// GetID implements core.Entity
func (e *Enemy) GetID() string { return e.ID }

// GetType implements core.Entity
func (e *Enemy) GetType() string { return EntityTypeEnemy }
