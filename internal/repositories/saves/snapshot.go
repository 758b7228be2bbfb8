package saves

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// CurrentVersion is written into every new snapshot
const CurrentVersion = 1

// SaveData is the persisted game snapshot
type SaveData struct {
	Version     int                  `json:"version"`
	Timestamp   int64                `json:"timestamp"` // unix milliseconds
	Character   CharacterData        `json:"character"`
	Progression entities.Progression `json:"progression"`
}

// CharacterData is the character part of a snapshot
type CharacterData struct {
	ID              string             `json:"id"`
	Stats           entities.Stats     `json:"stats"`
	Inventory       []*entities.Item   `json:"inventory"`
	Equipment       entities.Equipment `json:"equipment"`
	Sprite          string             `json:"sprite"`
	Experience      int                `json:"experience"`
	Level           int                `json:"level"`
	TotalExperience int                `json:"totalExperience"`
	UnallocAttrPts  int                `json:"unallocAttrPts"`
	Gold            int                `json:"gold"`
}

// NewSaveData snapshots a character and its wave progression at now
func NewSaveData(c *entities.Character, progression entities.Progression, now time.Time) (*SaveData, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}

	inventory := make([]*entities.Item, len(c.Inventory))
	copy(inventory, c.Inventory)

	return &SaveData{
		Version:   CurrentVersion,
		Timestamp: now.UnixMilli(),
		Character: CharacterData{
			ID:              c.ID,
			Stats:           c.Stats,
			Inventory:       inventory,
			Equipment:       c.Equipment,
			Sprite:          c.Sprite,
			Experience:      c.Experience,
			Level:           c.Level,
			TotalExperience: c.TotalExperience,
			UnallocAttrPts:  c.UnallocAttrPts,
			Gold:            c.Gold,
		},
		Progression: entities.Progression{
			SelectedWaveID:  progression.SelectedWaveID,
			CompletedWaves:  append([]int{}, progression.CompletedWaves...),
			UnlockedWaveIDs: append([]int{}, progression.UnlockedWaveIDs...),
		},
	}, nil
}

// SavedAt returns the snapshot timestamp
func (d *SaveData) SavedAt() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// ToCharacter rebuilds the character stored in the snapshot. The result is
// validated; an invalid snapshot returns errors.DataLoss.
func (d *SaveData) ToCharacter() (*entities.Character, error) {
	if d == nil {
		return nil, errors.InvalidArgument(errDataNil)
	}

	cd := d.Character
	c := entities.NewCharacter(cd.ID, cd.Stats, cd.Sprite)
	c.Inventory = append([]*entities.Item{}, cd.Inventory...)
	c.Equipment = cd.Equipment
	c.Experience = cd.Experience
	c.Level = cd.Level
	c.TotalExperience = cd.TotalExperience
	c.UnallocAttrPts = cd.UnallocAttrPts
	c.Gold = cd.Gold

	if err := c.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "saved character is invalid")
	}
	return c, nil
}

// Encode serialises a snapshot to JSON
func Encode(d *SaveData) ([]byte, error) {
	if d == nil {
		return nil, errors.InvalidArgument(errDataNil)
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal save data")
	}
	return data, nil
}

// Decode parses a snapshot; malformed payloads return errors.DataLoss
func Decode(data []byte) (*SaveData, error) {
	var d SaveData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal save data")
	}
	return &d, nil
}
