// Package catalog holds the static game content: enemy prefabs, the wave
// catalog, and the starting character. It also turns wave definitions into
// live enemy waves.
package catalog

import (
	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

// Prefab keys
const (
	PrefabSlime  = "slime"
	PrefabGoblin = "goblin"
	PrefabOrc    = "orc"
	PrefabTroll  = "troll"
)

// DefaultPrefabs returns the unscaled enemy templates by key
func DefaultPrefabs() map[string]entities.EnemyPrefab {
	return map[string]entities.EnemyPrefab{
		PrefabSlime: {
			Name: "Slime", Health: 30, Damage: 5, AttackSpeed: 1.5,
			Sprite: "slime.png", ExperienceGranted: 30, GoldDropped: 8, Level: 1,
		},
		PrefabGoblin: {
			Name: "Goblin", Health: 50, Damage: 10, Armor: 2, AttackSpeed: 1,
			Sprite: "goblin.png", ExperienceGranted: 50, GoldDropped: 15, Level: 1,
		},
		PrefabOrc: {
			Name: "Orc", Health: 120, Damage: 20, Armor: 5, AttackSpeed: 0.8,
			Sprite: "orc.png", ExperienceGranted: 60, GoldDropped: 25, Level: 1,
		},
		PrefabTroll: {
			Name: "Troll", Health: 300, Damage: 35, Armor: 10, AttackSpeed: 0.5,
			Sprite: "troll.png", ExperienceGranted: 200, GoldDropped: 100, Level: 1,
		},
	}
}
