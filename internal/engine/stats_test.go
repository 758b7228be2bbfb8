package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
)

type StatsTestSuite struct {
	suite.Suite
	char *entities.Character
}

func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (s *StatsTestSuite) SetupTest() {
	s.char = entities.NewCharacter("c", entities.Stats{
		Health: 100, Damage: 5, AttackSpeed: 1, Armor: 5,
		Strength: 1, Dexterity: 1, Intelligence: 1,
	}, "")
}

func (s *StatsTestSuite) TestBaseOnly() {
	got := engine.CalculateEffectiveStats(s.char)

	s.Equal(105, got.Health)
	s.Equal(5, got.Mana)
	s.Equal(6, got.Damage)
	s.Equal(5, got.Armor)
	s.InDelta(1.01, got.AttackSpeed, 1e-9)
}

func (s *StatsTestSuite) TestEquipment() {
	s.char.Equipment = entities.Equipment{
		Weapon: &entities.Item{
			ID: "w", Type: entities.ItemTypeWeapon, Slot: entities.SlotWeapon, Tier: entities.TierWood,
			Weapon: &entities.WeaponStats{WeaponType: entities.WeaponAxe, Damage: 13, AttackSpeed: 0.505},
		},
		Chest: &entities.Item{
			ID: "c", Type: entities.ItemTypeArmor, Slot: entities.SlotChest, Tier: entities.TierWood,
			Armor: &entities.ArmorStats{Armor: 6, Health: 2},
		},
		Ring1: &entities.Item{
			ID: "r", Type: entities.ItemTypeTrinket, Slot: entities.SlotRing, Tier: entities.TierWood,
			Trinket: &entities.TrinketStats{Strength: 2, Dexterity: 3, Intelligence: 1},
		},
		Potion: &entities.Item{
			ID: "p", Type: entities.ItemTypePotion, Slot: entities.SlotPotion, Tier: entities.TierNone,
			Potion: &entities.PotionStats{HealAmount: 50},
		},
	}

	got := engine.CalculateEffectiveStats(s.char)

	s.Equal(3, got.Strength)
	s.Equal(4, got.Dexterity)
	s.Equal(2, got.Intelligence)
	s.Equal(5+13+3, got.Damage)
	s.Equal(100+2+15, got.Health)
	s.Equal(11, got.Armor)
	s.Equal(10, got.Mana)
	s.InDelta(0.505+0.04, got.AttackSpeed, 1e-9)
}

func (s *StatsTestSuite) TestPure() {
	s.char.Equipment.Helmet = &entities.Item{
		ID: "h", Type: entities.ItemTypeArmor, Slot: entities.SlotHelmet, Tier: entities.TierIron,
		Armor: &entities.ArmorStats{Armor: 4, Health: 1},
	}
	before := *s.char
	baseBefore := s.char.Stats

	first := engine.CalculateEffectiveStats(s.char)
	second := engine.CalculateEffectiveStats(s.char)

	s.Equal(first, second)
	s.Equal(baseBefore, s.char.Stats)
	s.Equal(before.Equipment, s.char.Equipment)
}

func (s *StatsTestSuite) TestNilCharacter() {
	s.Equal(entities.Stats{}, engine.CalculateEffectiveStats(nil))
}

func (s *StatsTestSuite) TestMitigatedDamage() {
	testCases := []struct {
		name   string
		damage int
		armor  int
		want   int
	}{
		{name: "armor below damage", damage: 10, armor: 3, want: 7},
		{name: "armor equals damage", damage: 5, armor: 5, want: 0},
		{name: "armor above damage", damage: 5, armor: 100, want: 0},
		{name: "no armor", damage: 8, armor: 0, want: 8},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, engine.MitigatedDamage(tc.damage, tc.armor))
		})
	}
}

func (s *StatsTestSuite) TestCritChance() {
	s.InDelta(0.11, engine.CritChance(1), 1e-9)
	s.InDelta(0.60, engine.CritChance(50), 1e-9)
	s.Equal(1.0, engine.CritChance(90))
	s.Equal(1.0, engine.CritChance(500))
}
