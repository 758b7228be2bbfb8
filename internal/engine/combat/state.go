package combat

import "github.com/KirkDiggler/rpg-idle/internal/entities"

// State is the per-attempt combat state. It is a value: Reduce returns a new
// State and never modifies the one it was given.
type State struct {
	Enemies          []*entities.Enemy
	EnemyIndex       int
	CurrentEnemy     *entities.Enemy
	EnemyHealth      int
	PlayerHealth     int
	PlayerNextAttack float64
	EnemyNextAttack  float64
	Dead             bool
}

// EnemiesRemaining counts the current enemy and everything after it
func (s State) EnemiesRemaining() int {
	if s.CurrentEnemy == nil {
		return 0
	}
	return len(s.Enemies) - s.EnemyIndex
}

// IsLastEnemy reports whether the current enemy is the final one in the wave
func (s State) IsLastEnemy() bool {
	return s.EnemyIndex+1 >= len(s.Enemies)
}

// Action is an input to Reduce
type Action interface {
	actionName() string
}

// InitCombat starts an attempt against the first enemy of a wave
type InitCombat struct {
	Enemies []*entities.Enemy
	Stats   entities.Stats // effective player stats
}

// NextEnemy moves to the following enemy. The enemy timer keeps running.
type NextEnemy struct{}

// DamagePlayer lowers player health, never below zero
type DamagePlayer struct {
	Amount int
}

// DamageEnemy lowers the current enemy's health, never below zero
type DamageEnemy struct {
	Amount int
}

// AdvanceTimers pushes the attack timers forward
type AdvanceTimers struct {
	PlayerDelay float64
	EnemyDelay  float64
}

// HealPlayer raises player health up to MaxHealth
type HealPlayer struct {
	Amount    int
	MaxHealth int
}

// EndCombat marks the player as dead
type EndCombat struct{}

func (InitCombat) actionName() string    { return "init_combat" }
func (NextEnemy) actionName() string     { return "next_enemy" }
func (DamagePlayer) actionName() string  { return "damage_player" }
func (DamageEnemy) actionName() string   { return "damage_enemy" }
func (AdvanceTimers) actionName() string { return "advance_timers" }
func (HealPlayer) actionName() string    { return "heal_player" }
func (EndCombat) actionName() string     { return "end_combat" }

// Reduce applies an action to a state
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case InitCombat:
		if len(a.Enemies) == 0 || a.Stats.AttackSpeed <= 0 {
			return s
		}
		first := a.Enemies[0]
		return State{
			Enemies:          a.Enemies,
			EnemyIndex:       0,
			CurrentEnemy:     first,
			EnemyHealth:      first.Health,
			PlayerHealth:     a.Stats.Health,
			PlayerNextAttack: 1 / a.Stats.AttackSpeed,
			EnemyNextAttack:  1 / first.AttackSpeed,
		}

	case NextEnemy:
		next := s.EnemyIndex + 1
		if next >= len(s.Enemies) {
			return s
		}
		s.EnemyIndex = next
		s.CurrentEnemy = s.Enemies[next]
		s.EnemyHealth = s.CurrentEnemy.Health
		return s

	case DamagePlayer:
		s.PlayerHealth = max(s.PlayerHealth-max(a.Amount, 0), 0)
		return s

	case DamageEnemy:
		s.EnemyHealth = max(s.EnemyHealth-max(a.Amount, 0), 0)
		return s

	case AdvanceTimers:
		s.PlayerNextAttack += a.PlayerDelay
		s.EnemyNextAttack += a.EnemyDelay
		return s

	case HealPlayer:
		healed := s.PlayerHealth + max(a.Amount, 0)
		if a.MaxHealth > 0 && healed > a.MaxHealth {
			healed = max(a.MaxHealth, s.PlayerHealth)
		}
		s.PlayerHealth = healed
		return s

	case EndCombat:
		s.Dead = true
		return s
	}
	return s
}
