package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

// Event is a typed combat event the Engine publishes on its event bus
type Event interface {
	EventType() string
}

// Listener receives engine events synchronously, on the goroutine that
// drove the engine
type Listener func(Event)

// Event type names
const (
	TypeCombatStarted   = "combat_started"
	TypePlayerAttacked  = "player_attacked"
	TypeEnemyAttacked   = "enemy_attacked"
	TypeEnemyKilled     = "enemy_killed"
	TypeLevelUp         = "level_up"
	TypePotionUsed      = "potion_used"
	TypePlayerDied      = "player_died"
	TypeWaveCompleted   = "wave_completed"
	TypeCombatPaused    = "combat_paused"
	TypeCombatResumed   = "combat_resumed"
	TypeCombatRestarted = "combat_restarted"
	TypeCombatStopped   = "combat_stopped"
)

// EventCombatStarted fires when a wave attempt begins
type EventCombatStarted struct {
	WaveID       int
	WaveName     string
	EnemyCount   int
	PlayerHealth int
	FirstEnemy   *entities.Enemy
}

func (EventCombatStarted) EventType() string { return TypeCombatStarted }

// EventPlayerAttacked fires for every player hit
type EventPlayerAttacked struct {
	Attacker    core.Entity
	Target      core.Entity
	TargetName  string
	Damage      int
	Critical    bool
	EnemyHealth int
}

func (EventPlayerAttacked) EventType() string { return TypePlayerAttacked }

// EventEnemyAttacked fires for every enemy hit
type EventEnemyAttacked struct {
	Attacker     core.Entity
	AttackerName string
	Target       core.Entity
	Damage       int
	PlayerHealth int
}

func (EventEnemyAttacked) EventType() string { return TypeEnemyAttacked }

// EventEnemyKilled fires once per defeated enemy, after rewards are granted
type EventEnemyKilled struct {
	Enemy      *entities.Enemy
	EnemyIndex int
	Experience int
	Gold       int
	Loot       []*entities.Item
	Equipped   []*entities.Item
	Stashed    []*entities.Item
}

func (EventEnemyKilled) EventType() string { return TypeEnemyKilled }

// EventLevelUp fires when a kill raises the character's level
type EventLevelUp struct {
	Character       core.Entity
	PreviousLevel   int
	Level           int
	AttributePoints int
}

func (EventLevelUp) EventType() string { return TypeLevelUp }

// EventPotionUsed fires when a potion heals the player
type EventPotionUsed struct {
	HealAmount   int
	Healed       int
	PlayerHealth int
}

func (EventPotionUsed) EventType() string { return TypePotionUsed }

// EventPlayerDied ends the attempt in defeat
type EventPlayerDied struct {
	Enemy      *entities.Enemy
	EnemyIndex int
}

func (EventPlayerDied) EventType() string { return TypePlayerDied }

// EventWaveCompleted ends the attempt in victory
type EventWaveCompleted struct {
	WaveID          int
	EnemiesDefeated int
}

func (EventWaveCompleted) EventType() string { return TypeWaveCompleted }

// EventCombatPaused fires on pause
type EventCombatPaused struct{}

func (EventCombatPaused) EventType() string { return TypeCombatPaused }

// EventCombatResumed fires on resume
type EventCombatResumed struct{}

func (EventCombatResumed) EventType() string { return TypeCombatResumed }

// EventCombatRestarted fires when an attempt is restarted with a new wave
type EventCombatRestarted struct {
	WaveID       int
	EnemyCount   int
	PlayerHealth int
}

func (EventCombatRestarted) EventType() string { return TypeCombatRestarted }

// EventCombatStopped fires when combat returns to idle
type EventCombatStopped struct {
	Phase Phase // phase combat was stopped from
}

func (EventCombatStopped) EventType() string { return TypeCombatStopped }
