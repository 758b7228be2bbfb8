package entities

import "github.com/KirkDiggler/rpg-idle/internal/errors"

// Stats is the full stat block used for both base and effective stats
type Stats struct {
	Health       int     `json:"health"`
	Mana         int     `json:"mana"`
	Damage       int     `json:"damage"`
	AttackSpeed  float64 `json:"attackSpeed"` // attacks per second
	Armor        int     `json:"armor"`
	Strength     int     `json:"strength"`
	Dexterity    int     `json:"dexterity"`
	Intelligence int     `json:"intelligence"`
}

// Validate checks the invariants of a base stat block
func (s Stats) Validate() error {
	vb := errors.NewValidationBuilder()
	if s.Health <= 0 {
		vb.Field("health", "must be positive")
	}
	if s.AttackSpeed <= 0 {
		vb.Field("attackSpeed", "must be positive")
	}
	errors.ValidateMin("mana", s.Mana, 0, vb)
	errors.ValidateMin("damage", s.Damage, 0, vb)
	errors.ValidateMin("armor", s.Armor, 0, vb)
	errors.ValidateMin("strength", s.Strength, 0, vb)
	errors.ValidateMin("dexterity", s.Dexterity, 0, vb)
	errors.ValidateMin("intelligence", s.Intelligence, 0, vb)
	return vb.Build()
}

// Attribute names an allocatable primary attribute
type Attribute string

// Attributes a player can spend points on
const (
	AttributeStrength     Attribute = "strength"
	AttributeDexterity    Attribute = "dexterity"
	AttributeIntelligence Attribute = "intelligence"
)

// Attributes lists every allocatable attribute
var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeIntelligence}

// ParseAttribute converts user input into an Attribute
func ParseAttribute(s string) (Attribute, error) {
	for _, a := range Attributes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown attribute %q", s)
}
