package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

type CharacterTestSuite struct {
	suite.Suite
	char *entities.Character
}

func TestCharacterTestSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	s.char = entities.NewCharacter("char_1", baseStats(), "player.png")
}

func (s *CharacterTestSuite) TestNewCharacter() {
	s.Equal(1, s.char.Level)
	s.Equal("char_1", s.char.GetID())
	s.Equal(entities.EntityTypeCharacter, s.char.GetType())
	s.Equal(125, s.char.ExperienceToNextLevel())
	s.NoError(s.char.Validate())
}

func (s *CharacterTestSuite) TestExperienceToNextLevel() {
	for level, want := range map[int]int{1: 125, 2: 250, 3: 375, 10: 1250} {
		s.char.Level = level
		s.Equal(want, s.char.ExperienceToNextLevel())
	}
}

func (s *CharacterTestSuite) TestExperienceToNextLevelIsCumulative() {
	_, err := s.char.HandleFightEnd(124, nil, 0)
	s.Require().NoError(err)
	s.Equal(1, s.char.Level)

	_, err = s.char.HandleFightEnd(1, nil, 0)
	s.Require().NoError(err)
	s.Equal(2, s.char.Level)
	s.Equal(125, s.char.Experience)
	s.Equal(250, s.char.ExperienceToNextLevel())

	_, err = s.char.HandleFightEnd(125, nil, 0)
	s.Require().NoError(err)
	s.Equal(3, s.char.Level)
	s.Equal(250, s.char.Experience)
}

func (s *CharacterTestSuite) TestHandleFightEndSingleLevel() {
	result, err := s.char.HandleFightEnd(130, nil, 15)
	s.Require().NoError(err)

	s.Equal(2, s.char.Level)
	s.Equal(4, s.char.UnallocAttrPts)
	s.Equal(130, s.char.TotalExperience)
	s.Equal(15, s.char.Gold)
	s.Equal(1, result.LevelsGained)
	s.Equal(1, result.PreviousLevel)
	s.Equal(2, result.Level)
	s.Less(s.char.Experience, s.char.ExperienceToNextLevel())
}

func (s *CharacterTestSuite) TestHandleFightEndMultiLevel() {
	result, err := s.char.HandleFightEnd(260, nil, 0)
	s.Require().NoError(err)

	s.GreaterOrEqual(s.char.Level, 3)
	s.GreaterOrEqual(result.LevelsGained, 2)
	s.Equal(4*result.LevelsGained, s.char.UnallocAttrPts)
	s.Less(s.char.Experience, s.char.ExperienceToNextLevel())
}

func (s *CharacterTestSuite) TestHandleFightEndBelowThreshold() {
	result, err := s.char.HandleFightEnd(50, nil, 0)
	s.Require().NoError(err)
	s.Equal(1, s.char.Level)
	s.Equal(0, result.LevelsGained)
	s.Equal(50, s.char.Experience)
}

func (s *CharacterTestSuite) TestHandleFightEndTotalExperienceNeverDecreases() {
	prev := s.char.TotalExperience
	for _, xp := range []int{30, 0, 500, 125, 1} {
		_, err := s.char.HandleFightEnd(xp, nil, 0)
		s.Require().NoError(err)
		s.GreaterOrEqual(s.char.TotalExperience, prev)
		s.Less(s.char.Experience, s.char.ExperienceToNextLevel())
		prev = s.char.TotalExperience
	}
}

func (s *CharacterTestSuite) TestHandleFightEndDistributesLoot() {
	s.char.Equipment.Weapon = weapon("sword_old", 7, 1)

	loot := []*entities.Item{
		weapon("sword_new", 9, 1),
		ring("ring_a", 1, 1, 1),
		ring("ring_b", 2, 2, 2),
		ring("ring_c", 3, 3, 3),
		armor("helm_a", entities.SlotHelmet, 3, 1),
	}

	result, err := s.char.HandleFightEnd(0, loot, 0)
	s.Require().NoError(err)

	s.Equal("sword_old", s.char.Equipment.Weapon.ID)
	s.Equal("ring_a", s.char.Equipment.Ring1.ID)
	s.Equal("ring_b", s.char.Equipment.Ring2.ID)
	s.Equal("helm_a", s.char.Equipment.Helmet.ID)
	s.Equal([]string{"sword_new", "ring_c"}, ids(s.char.Inventory))
	s.Equal([]string{"ring_a", "ring_b", "helm_a"}, ids(result.Equipped))
	s.Equal([]string{"sword_new", "ring_c"}, ids(result.Stashed))
}

func (s *CharacterTestSuite) TestHandleFightEndRejectsBadInput() {
	testCases := []struct {
		name  string
		xp    int
		gold  int
		loot  []*entities.Item
		check func(error) bool
	}{
		{name: "negative xp", xp: -1, check: errors.IsInvalidArgument},
		{name: "negative gold", gold: -5, check: errors.IsInvalidArgument},
		{name: "nil item", loot: []*entities.Item{nil}, check: errors.IsInvalidArgument},
		{
			name:  "duplicate ids in loot",
			loot:  []*entities.Item{ring("dup", 1, 1, 1), ring("dup", 1, 1, 1)},
			check: errors.IsAlreadyExists,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			_, err := s.char.HandleFightEnd(tc.xp, tc.loot, tc.gold)
			s.Require().Error(err)
			s.True(tc.check(err))

			s.Equal(0, s.char.Experience)
			s.Equal(0, s.char.Gold)
			s.Empty(s.char.Inventory)
			s.Nil(s.char.Equipment.Ring1)
		})
	}
}

func (s *CharacterTestSuite) TestEquipItemSwapsIntoInventory() {
	s.char.Equipment.Weapon = weapon("sword_a", 7, 1)
	s.Require().NoError(s.char.AddToInventory(weapon("sword_b", 12, 0.5), potion("potion_1", 25, 1)))

	displaced, err := s.char.EquipItem("sword_b")
	s.Require().NoError(err)

	s.Require().NotNil(displaced)
	s.Equal("sword_a", displaced.ID)
	s.Equal("sword_b", s.char.Equipment.Weapon.ID)
	s.Equal([]string{"potion_1", "sword_a"}, ids(s.char.Inventory))
	s.False(s.char.Equipment.Contains("sword_a"))
}

func (s *CharacterTestSuite) TestEquipItemIntoEmptySlot() {
	s.Require().NoError(s.char.AddToInventory(armor("chest_1", entities.SlotChest, 5, 2)))

	displaced, err := s.char.EquipItem("chest_1")
	s.Require().NoError(err)
	s.Nil(displaced)
	s.Empty(s.char.Inventory)
	s.Equal("chest_1", s.char.Equipment.Chest.ID)
}

func (s *CharacterTestSuite) TestEquipRings() {
	s.Require().NoError(s.char.AddToInventory(
		ring("r1", 1, 0, 0), ring("r2", 0, 1, 0), ring("r3", 0, 0, 1),
	))

	_, err := s.char.EquipItem("r1")
	s.Require().NoError(err)
	s.Equal("r1", s.char.Equipment.Ring1.ID)
	s.Nil(s.char.Equipment.Ring2)

	_, err = s.char.EquipItem("r2")
	s.Require().NoError(err)
	s.Equal("r1", s.char.Equipment.Ring1.ID)
	s.Equal("r2", s.char.Equipment.Ring2.ID)

	displaced, err := s.char.EquipItem("r3")
	s.Require().NoError(err)
	s.Equal("r1", displaced.ID)
	s.Equal("r3", s.char.Equipment.Ring1.ID)
	s.Equal("r2", s.char.Equipment.Ring2.ID)
	s.Equal([]string{"r1"}, ids(s.char.Inventory))
}

func (s *CharacterTestSuite) TestEquipRingFillsRing1WhenOnlyRing2Occupied() {
	s.char.Equipment.Ring2 = ring("r2", 0, 1, 0)
	s.Require().NoError(s.char.AddToInventory(ring("r1", 1, 0, 0)))

	displaced, err := s.char.EquipItem("r1")
	s.Require().NoError(err)
	s.Nil(displaced)
	s.Equal("r1", s.char.Equipment.Ring1.ID)
	s.Equal("r2", s.char.Equipment.Ring2.ID)
}

func (s *CharacterTestSuite) TestEquipItemNotInInventory() {
	_, err := s.char.EquipItem("ghost")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CharacterTestSuite) TestUnequipItem() {
	s.char.Equipment.Helmet = armor("helm", entities.SlotHelmet, 3, 1)

	item, err := s.char.UnequipItem(entities.EquipHelmet)
	s.Require().NoError(err)
	s.Equal("helm", item.ID)
	s.Nil(s.char.Equipment.Helmet)
	s.Equal([]string{"helm"}, ids(s.char.Inventory))

	s.Run("empty slot", func() {
		item, err := s.char.UnequipItem(entities.EquipAmulet)
		s.NoError(err)
		s.Nil(item)
	})

	s.Run("unknown slot", func() {
		_, err := s.char.UnequipItem("cape")
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *CharacterTestSuite) TestAllocateAttribute() {
	s.Run("no points", func() {
		ok, err := s.char.AllocateAttribute(entities.AttributeStrength)
		s.NoError(err)
		s.False(ok)
		s.Equal(1, s.char.Stats.Strength)
	})

	s.Run("spends a point", func() {
		s.char.UnallocAttrPts = 2
		ok, err := s.char.AllocateAttribute(entities.AttributeDexterity)
		s.NoError(err)
		s.True(ok)
		s.Equal(2, s.char.Stats.Dexterity)
		s.Equal(1, s.char.UnallocAttrPts)
	})

	s.Run("unknown attribute", func() {
		_, err := s.char.AllocateAttribute("luck")
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *CharacterTestSuite) TestAddToInventoryRejectsDuplicates() {
	s.char.Equipment.Weapon = weapon("sword", 7, 1)
	s.Require().NoError(s.char.AddToInventory(ring("r1", 1, 1, 1)))

	err := s.char.AddToInventory(ring("r1", 1, 1, 1))
	s.True(errors.IsAlreadyExists(err))

	err = s.char.AddToInventory(weapon("sword", 7, 1))
	s.True(errors.IsAlreadyExists(err))
	s.Len(s.char.Inventory, 1)
}

func (s *CharacterTestSuite) TestConsumePotion() {
	s.Run("no potions", func() {
		_, ok := s.char.ConsumePotion()
		s.False(ok)
	})

	s.Run("prefers equipped potion", func() {
		s.char.Equipment.Potion = potion("p_eq", 30, 2)
		s.Require().NoError(s.char.AddToInventory(potion("p_inv", 25, 1)))
		s.Equal(3, s.char.PotionCount())

		heal, ok := s.char.ConsumePotion()
		s.True(ok)
		s.Equal(30, heal)
		s.Equal(1, s.char.Equipment.Potion.Quantity)

		heal, ok = s.char.ConsumePotion()
		s.True(ok)
		s.Equal(30, heal)
		s.Nil(s.char.Equipment.Potion)
	})

	s.Run("falls back to inventory", func() {
		heal, ok := s.char.ConsumePotion()
		s.True(ok)
		s.Equal(25, heal)
		s.Empty(s.char.Inventory)
		s.Equal(0, s.char.PotionCount())
	})
}

func (s *CharacterTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(c *entities.Character)
	}{
		{name: "level zero", mutate: func(c *entities.Character) { c.Level = 0 }},
		{name: "negative gold", mutate: func(c *entities.Character) { c.Gold = -1 }},
		{name: "zero attack speed", mutate: func(c *entities.Character) { c.Stats.AttackSpeed = 0 }},
		{
			name: "ring in amulet slot",
			mutate: func(c *entities.Character) {
				c.Equipment.Amulet = ring("r", 1, 1, 1)
			},
		},
		{
			name: "equipped item also in inventory",
			mutate: func(c *entities.Character) {
				c.Equipment.Weapon = weapon("w", 1, 1)
				c.Inventory = append(c.Inventory, weapon("w", 1, 1))
			},
		},
		{
			name: "potion with a combat tier",
			mutate: func(c *entities.Character) {
				p := potion("p", 10, 1)
				p.Tier = entities.TierIron
				c.Inventory = append(c.Inventory, p)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := entities.NewCharacter("c", baseStats(), "")
			tc.mutate(c)
			err := c.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
