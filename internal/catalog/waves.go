package catalog

import (
	"slices"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// WaveSpec describes a wave before its prefabs are scaled
type WaveSpec struct {
	ID          int
	Name        string
	Description string
	Level       int
	Prefabs     []string
	Unlocked    bool
	Theme       entities.Theme
}

// DefaultWaveSpecs is the five-wave campaign
func DefaultWaveSpecs() []WaveSpec {
	return []WaveSpec{
		{
			ID:          1,
			Name:        "Mysterious Forest",
			Description: "Ancient trees whisper secrets...",
			Level:       1,
			Prefabs:     []string{PrefabSlime, PrefabSlime, PrefabSlime},
			Unlocked:    true,
			Theme: entities.Theme{
				Background: "/assets/forest/background.png",
				Gradient:   "linear-gradient(180deg, #1a2f1a 0%, #0d1f0d 50%, #0a1a0a 100%)",
				Accent:     "#4ade80",
			},
		},
		{
			ID:          2,
			Name:        "Goblin Camp",
			Description: "Smoke rises from crude tents...",
			Level:       2,
			Prefabs:     []string{PrefabSlime, PrefabGoblin, PrefabGoblin, PrefabSlime},
			Theme: entities.Theme{
				Gradient: "linear-gradient(180deg, #2d2a1a 0%, #1f1c0d 50%, #1a170a 100%)",
				Accent:   "#f59e0b",
			},
		},
		{
			ID:          3,
			Name:        "Orc Territory",
			Description: "Battle drums echo in the distance...",
			Level:       3,
			Prefabs:     []string{PrefabGoblin, PrefabGoblin, PrefabOrc, PrefabGoblin, PrefabOrc},
			Theme: entities.Theme{
				Gradient: "linear-gradient(180deg, #2d1a1a 0%, #1f0d0d 50%, #1a0a0a 100%)",
				Accent:   "#ef4444",
			},
		},
		{
			ID:          4,
			Name:        "Dark Cave",
			Description: "Strange sounds echo from within...",
			Level:       4,
			Prefabs:     []string{PrefabOrc, PrefabOrc, PrefabGoblin, PrefabOrc, PrefabGoblin, PrefabOrc},
			Theme: entities.Theme{
				Gradient: "linear-gradient(180deg, #1a1a2d 0%, #0d0d1f 50%, #0a0a1a 100%)",
				Accent:   "#8b5cf6",
			},
		},
		{
			ID:          5,
			Name:        "Troll's Lair",
			Description: "The ground trembles beneath your feet...",
			Level:       5,
			Prefabs:     []string{PrefabOrc, PrefabOrc, PrefabTroll},
			Theme: entities.Theme{
				Gradient: "linear-gradient(180deg, #2d1a2d 0%, #1f0d1f 50%, #1a0a1a 100%)",
				Accent:   "#ec4899",
			},
		},
	}
}

// BuildWaves scales each spec's prefabs into a WaveDefinition
func BuildWaves(specs []WaveSpec, prefabs map[string]entities.EnemyPrefab) ([]entities.WaveDefinition, error) {
	out := make([]entities.WaveDefinition, 0, len(specs))
	for _, spec := range specs {
		def := entities.WaveDefinition{
			ID:          spec.ID,
			Name:        spec.Name,
			Description: spec.Description,
			Level:       spec.Level,
			Unlocked:    spec.Unlocked,
			Theme:       spec.Theme,
		}
		for _, key := range spec.Prefabs {
			prefab, ok := prefabs[key]
			if !ok {
				return nil, errors.InvalidArgumentf("wave %d references unknown prefab %q", spec.ID, key)
			}
			scaled, err := prefab.Scale(spec.Level)
			if err != nil {
				return nil, errors.Wrapf(err, "wave %d", spec.ID)
			}
			def.Enemies = append(def.Enemies, scaled)
		}
		out = append(out, def)
	}
	return out, nil
}

// Catalog is the read-only list of waves a player can fight
type Catalog struct {
	waves []entities.WaveDefinition
}

// New creates a Catalog. Wave ids must be positive and unique, and every wave
// needs at least one enemy.
func New(waves []entities.WaveDefinition) (*Catalog, error) {
	if len(waves) == 0 {
		return nil, errors.InvalidArgument("catalog needs at least one wave")
	}

	seen := make(map[int]bool, len(waves))
	for _, w := range waves {
		if w.ID <= 0 {
			return nil, errors.InvalidArgumentf("wave id must be positive, got %d", w.ID)
		}
		if seen[w.ID] {
			return nil, errors.InvalidArgumentf("duplicate wave id %d", w.ID)
		}
		if len(w.Enemies) == 0 {
			return nil, errors.InvalidArgumentf("wave %d has no enemies", w.ID)
		}
		seen[w.ID] = true
	}

	return &Catalog{waves: slices.Clone(waves)}, nil
}

// Default builds the campaign catalog
func Default() (*Catalog, error) {
	waves, err := BuildWaves(DefaultWaveSpecs(), DefaultPrefabs())
	if err != nil {
		return nil, err
	}
	return New(waves)
}

// Waves returns every wave in catalog order
func (c *Catalog) Waves() []entities.WaveDefinition {
	return slices.Clone(c.waves)
}

// Wave returns the wave with id
func (c *Catalog) Wave(id int) (entities.WaveDefinition, error) {
	for _, w := range c.waves {
		if w.ID == id {
			return w, nil
		}
	}
	return entities.WaveDefinition{}, errors.NotFoundf("wave %d not found", id)
}

// Next returns the wave after id in catalog order
func (c *Catalog) Next(id int) (entities.WaveDefinition, bool) {
	for i, w := range c.waves {
		if w.ID == id && i+1 < len(c.waves) {
			return c.waves[i+1], true
		}
	}
	return entities.WaveDefinition{}, false
}
