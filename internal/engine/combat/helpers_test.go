package combat_test

import (
	"github.com/KirkDiggler/rpg-idle/internal/engine/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

func enemy(id string, health, damage, armor int, attackSpeed float64) *entities.Enemy {
	return entities.NewEnemy(id, entities.EnemyPrefab{
		Name:              "Dummy " + id,
		Health:            health,
		Damage:            damage,
		Armor:             armor,
		AttackSpeed:       attackSpeed,
		ExperienceGranted: 10,
		GoldDropped:       3,
		Level:             1,
	}, nil)
}

func wave(enemies ...*entities.Enemy) *entities.EnemyWave {
	return &entities.EnemyWave{WaveID: 1, Name: "Test Wave", Enemies: enemies}
}

func player(stats entities.Stats) *entities.Character {
	return entities.NewCharacter("player", stats, "player.png")
}

func potion(id string, heal, qty int) *entities.Item {
	return &entities.Item{
		ID: id, Type: entities.ItemTypePotion, Slot: entities.SlotPotion, Tier: entities.TierNone, Quantity: qty,
		Potion: &entities.PotionStats{HealAmount: heal},
	}
}

type recorder struct {
	events []combat.Event
}

func (r *recorder) listen(ev combat.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) types() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.EventType()
	}
	return out
}
