package entities

import (
	"slices"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Theme is the presentation hint attached to a wave
type Theme struct {
	Background string `json:"background,omitempty"`
	Gradient   string `json:"gradient"`
	Accent     string `json:"accent"`
}

// WaveDefinition is a catalog entry. Enemies are already scaled for Level.
type WaveDefinition struct {
	ID          int
	Name        string
	Description string
	Level       int
	Enemies     []EnemyPrefab
	Unlocked    bool // unlocked at the start of a new game
	Theme       Theme
}

// EnemyWave is one attempt's ordered list of enemies. Enemies are fought
// strictly in order and a defeated enemy never comes back.
type EnemyWave struct {
	WaveID  int
	Name    string
	Enemies []*Enemy
}

// Len returns the number of enemies in the wave
func (w *EnemyWave) Len() int {
	if w == nil {
		return 0
	}
	return len(w.Enemies)
}

// At returns the enemy at index i, or nil when out of range
func (w *EnemyWave) At(i int) *Enemy {
	if w == nil || i < 0 || i >= len(w.Enemies) {
		return nil
	}
	return w.Enemies[i]
}

// Progression records which waves are unlocked, completed and selected
type Progression struct {
	SelectedWaveID  int   `json:"selectedWaveId"`
	CompletedWaves  []int `json:"completedWaves"`
	UnlockedWaveIDs []int `json:"unlockedWaveIds"`
}

// NewProgression starts a progression with the initially unlocked waves of
// defs, selecting the first of them
func NewProgression(defs []WaveDefinition) Progression {
	p := Progression{CompletedWaves: []int{}, UnlockedWaveIDs: []int{}}
	for _, d := range defs {
		if d.Unlocked {
			p.Unlock(d.ID)
			if p.SelectedWaveID == 0 {
				p.SelectedWaveID = d.ID
			}
		}
	}
	return p
}

// IsUnlocked reports whether wave id may be started
func (p *Progression) IsUnlocked(id int) bool {
	return slices.Contains(p.UnlockedWaveIDs, id)
}

// IsCompleted reports whether wave id has been beaten
func (p *Progression) IsCompleted(id int) bool {
	return slices.Contains(p.CompletedWaves, id)
}

// Unlock makes wave id available
func (p *Progression) Unlock(id int) {
	if !p.IsUnlocked(id) {
		p.UnlockedWaveIDs = append(p.UnlockedWaveIDs, id)
	}
}

// MarkCompleted records wave id as beaten
func (p *Progression) MarkCompleted(id int) {
	if !p.IsCompleted(id) {
		p.CompletedWaves = append(p.CompletedWaves, id)
	}
}

// Select chooses the wave to fight next; it must be unlocked
func (p *Progression) Select(id int) error {
	if !p.IsUnlocked(id) {
		return errors.FailedPreconditionf("wave %d is locked", id)
	}
	p.SelectedWaveID = id
	return nil
}
