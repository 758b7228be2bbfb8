package game

import (
	"github.com/KirkDiggler/rpg-idle/internal/engine/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

// Outcome is how an attempt ended
type Outcome string

// Outcomes
const (
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// WaveSummary is the post-wave report of one attempt
type WaveSummary struct {
	WaveID           int
	WaveName         string
	Outcome          Outcome
	EnemiesDefeated  int
	LootCollected    []*entities.Item
	GoldEarned       int
	ExperienceEarned int
	PreviousLevel    int
	Level            int
	NextWaveUnlocked int // zero when nothing new was unlocked
}

// LeveledUp reports whether the character gained a level during the attempt
func (s *WaveSummary) LeveledUp() bool {
	return s.Level > s.PreviousLevel
}

// summaryCollector accumulates a WaveSummary from engine events
type summaryCollector struct {
	character *entities.Character
	current   *WaveSummary
}

func (c *summaryCollector) reset(waveID int, name string) {
	c.current = &WaveSummary{
		WaveID:        waveID,
		WaveName:      name,
		LootCollected: []*entities.Item{},
		PreviousLevel: c.character.Level,
		Level:         c.character.Level,
	}
}

func (c *summaryCollector) listen(ev combat.Event) {
	switch ev := ev.(type) {
	case combat.EventCombatStarted:
		c.reset(ev.WaveID, ev.WaveName)
	case combat.EventCombatRestarted:
		name := ""
		if c.current != nil {
			name = c.current.WaveName
		}
		c.reset(ev.WaveID, name)
	case combat.EventEnemyKilled:
		if c.current == nil {
			return
		}
		c.current.EnemiesDefeated++
		c.current.GoldEarned += ev.Gold
		c.current.ExperienceEarned += ev.Experience
		c.current.LootCollected = append(c.current.LootCollected, ev.Loot...)
		c.current.Level = c.character.Level
	case combat.EventWaveCompleted:
		if c.current != nil {
			c.current.Outcome = OutcomeVictory
		}
	case combat.EventPlayerDied:
		if c.current != nil {
			c.current.Outcome = OutcomeDefeat
		}
	}
}
