package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/saves"
	"github.com/KirkDiggler/rpg-idle/internal/testutils/builders"
)

// Fixture ids and times
const (
	TestCharacterID = "char-test-001"
	TestSlot        = "test-slot"
)

// TestTime is a fixed timestamp for snapshots
var TestTime = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

// CreateTestProgression unlocks waves 1 and 2 with wave 1 completed
func CreateTestProgression() entities.Progression {
	return entities.Progression{
		SelectedWaveID:  2,
		CompletedWaves:  []int{1},
		UnlockedWaveIDs: []int{1, 2},
	}
}

// CreateTestSaveData snapshots a levelled character with gear and potions
func CreateTestSaveData() *saves.SaveData {
	c := builders.NewCharacterBuilder().
		WithID(TestCharacterID).
		WithLevel(3).
		WithExperience(40, 400).
		WithGold(125).
		WithEquipped(builders.Weapon("sword_1", entities.WeaponSword, 12, 1.2)).
		WithEquipped(builders.Ring("ring_1", 2, 1, 0)).
		WithInventory(builders.Potion("potion_1", 35, 2)).
		WithInventory(builders.Armor("chest_1", entities.SlotChest, 6, 20)).
		Build()

	d, err := saves.NewSaveData(c, CreateTestProgression(), TestTime)
	if err != nil {
		panic(err)
	}
	return d
}
