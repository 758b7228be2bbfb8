package game

import (
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/engine/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

// NewGameInput defines the request for starting a fresh game
type NewGameInput struct{}

// NewGameOutput defines the response for starting a fresh game
type NewGameOutput struct {
	Character   *entities.Character
	Progression entities.Progression
}

// LoadGameInput defines the request for loading the configured slot
type LoadGameInput struct{}

// LoadGameOutput defines the response for loading a game. When the save is
// missing or unreadable a new game is started and Recovered is set.
type LoadGameOutput struct {
	Character   *entities.Character
	Progression entities.Progression
	SavedAt     time.Time
	Recovered   bool
	Cause       error
}

// SaveGameInput defines the request for saving the current game
type SaveGameInput struct{}

// SaveGameOutput defines the response for saving the current game
type SaveGameOutput struct {
	SavedAt time.Time
}

// DeleteSaveInput defines the request for deleting the configured slot
type DeleteSaveInput struct{}

// DeleteSaveOutput defines the response for deleting a save
type DeleteSaveOutput struct{}

// GetCharacterInput defines the request for reading the character
type GetCharacterInput struct{}

// GetCharacterOutput carries the character with its derived numbers
type GetCharacterOutput struct {
	Character             *entities.Character
	EffectiveStats        entities.Stats
	ExperienceToNextLevel int
	PotionCount           int
}

// EquipItemInput defines the request for equipping an inventory item
type EquipItemInput struct {
	ItemID string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Equipped  *entities.Item
	Displaced *entities.Item // previous occupant, now in the inventory
}

// UnequipItemInput defines the request for emptying an equipment slot
type UnequipItemInput struct {
	Slot entities.EquipmentSlot
}

// UnequipItemOutput defines the response for unequipping
type UnequipItemOutput struct {
	Item *entities.Item // nil when the slot was already empty
}

// AllocateAttributeInput defines the request for spending an attribute point
type AllocateAttributeInput struct {
	Attribute entities.Attribute
}

// AllocateAttributeOutput defines the response for spending a point
type AllocateAttributeOutput struct {
	Allocated       bool
	PointsRemaining int
	EffectiveStats  entities.Stats
}

// ListWavesInput defines the request for listing waves
type ListWavesInput struct{}

// WaveStatus is a catalog wave annotated with the player's progress
type WaveStatus struct {
	Wave      entities.WaveDefinition
	Unlocked  bool
	Completed bool
	Selected  bool
}

// ListWavesOutput defines the response for listing waves
type ListWavesOutput struct {
	Waves []WaveStatus
}

// SelectWaveInput defines the request for choosing the next wave
type SelectWaveInput struct {
	WaveID int
}

// SelectWaveOutput defines the response for choosing a wave
type SelectWaveOutput struct {
	Wave entities.WaveDefinition
}

// StartWaveInput defines the request for starting combat. A zero WaveID
// starts the selected wave.
type StartWaveInput struct {
	WaveID int
}

// StartWaveOutput defines the response for starting combat
type StartWaveOutput struct {
	Wave  *entities.EnemyWave
	State combat.State
}

// TickCombatInput defines the request for advancing combat one step
type TickCombatInput struct{}

// TickCombatOutput reports the combat after the step. Summary is set on the
// step that ended the attempt.
type TickCombatOutput struct {
	Phase   combat.Phase
	State   combat.State
	Summary *WaveSummary
}

// RunCombatInput defines the request for driving combat from the clock.
// MaxTicks above zero bounds the run.
type RunCombatInput struct {
	MaxTicks int
}

// RunCombatOutput reports how a run ended
type RunCombatOutput struct {
	Ticks   int
	Phase   combat.Phase
	Summary *WaveSummary
}

// PauseCombatInput defines the request for pausing combat
type PauseCombatInput struct{}

// PauseCombatOutput defines the response for pausing combat
type PauseCombatOutput struct{}

// ResumeCombatInput defines the request for resuming combat
type ResumeCombatInput struct{}

// ResumeCombatOutput defines the response for resuming combat
type ResumeCombatOutput struct{}

// RestartCombatInput defines the request for restarting the current wave
type RestartCombatInput struct{}

// RestartCombatOutput defines the response for restarting
type RestartCombatOutput struct {
	Wave  *entities.EnemyWave
	State combat.State
}

// StopCombatInput defines the request for leaving combat
type StopCombatInput struct{}

// StopCombatOutput defines the response for leaving combat
type StopCombatOutput struct{}

// UsePotionInput defines the request for drinking a potion
type UsePotionInput struct{}

// UsePotionOutput defines the response for drinking a potion
type UsePotionOutput struct {
	Used         bool
	HealAmount   int
	Healed       int
	PlayerHealth int
	Remaining    int
}

// GetCombatStateInput defines the request for reading combat
type GetCombatStateInput struct{}

// GetCombatStateOutput is a snapshot of the current attempt
type GetCombatStateOutput struct {
	Phase   combat.Phase
	State   combat.State
	WaveID  int
	Summary *WaveSummary // last finished attempt, if any
}
