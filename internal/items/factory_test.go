package items_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/items"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
)

type FactoryTestSuite struct {
	suite.Suite
	factory *items.Factory
}

func TestFactoryTestSuite(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func (s *FactoryTestSuite) SetupTest() {
	f, err := items.NewFactory(&items.FactoryConfig{
		IDGenerator: idgen.NewSequential("t"),
	})
	s.Require().NoError(err)
	s.factory = f
}

func (s *FactoryTestSuite) TestCreateWeapon() {
	testCases := []struct {
		name   string
		wt     entities.WeaponType
		level  int
		tier   entities.Tier
		damage int
		speed  float64
	}{
		{name: "wood sword lvl 1", wt: entities.WeaponSword, level: 1, tier: entities.TierWood, damage: 8, speed: 1.01},
		{name: "iron sword lvl 1", wt: entities.WeaponSword, level: 1, tier: entities.TierIron, damage: 9, speed: 1.0605},
		{name: "gold axe lvl 2", wt: entities.WeaponAxe, level: 2, tier: entities.TierGold, damage: 32, speed: 0.5865},
		{name: "diamond bow lvl 4", wt: entities.WeaponBow, level: 4, tier: entities.TierDiamond, damage: 6, speed: 1.87},
		{name: "wood dagger lvl 10", wt: entities.WeaponDagger, level: 10, tier: entities.TierWood, damage: 10, speed: 1.8},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			item, err := s.factory.CreateWeapon(tc.wt, tc.level, tc.tier)
			s.Require().NoError(err)
			s.Require().NoError(item.Validate())

			s.Equal(entities.ItemTypeWeapon, item.Type)
			s.Equal(entities.SlotWeapon, item.Slot)
			s.Equal(tc.tier, item.Tier)
			s.Equal(tc.wt, item.Weapon.WeaponType)
			s.Equal(tc.damage, item.Weapon.Damage)
			s.InDelta(tc.speed, item.Weapon.AttackSpeed, 1e-9)
			s.Contains(item.ID, string(tc.wt)+"_")
		})
	}
}

func (s *FactoryTestSuite) TestCreateArmor() {
	testCases := []struct {
		name   string
		slot   entities.Slot
		level  int
		tier   entities.Tier
		armor  int
		health int
	}{
		{name: "wood chest lvl 1", slot: entities.SlotChest, level: 1, tier: entities.TierWood, armor: 6, health: 2},
		{name: "diamond chest lvl 3", slot: entities.SlotChest, level: 3, tier: entities.TierDiamond, armor: 12, health: 6},
		{name: "iron helmet lvl 2", slot: entities.SlotHelmet, level: 2, tier: entities.TierIron, armor: 4, health: 2},
		{name: "gold helmet lvl 5", slot: entities.SlotHelmet, level: 5, tier: entities.TierGold, armor: 11, health: 5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			item, err := s.factory.CreateArmor(tc.slot, tc.level, tc.tier)
			s.Require().NoError(err)
			s.Require().NoError(item.Validate())

			s.Equal(tc.slot, item.Slot)
			s.Equal(tc.armor, item.Armor.Armor)
			s.Equal(tc.health, item.Armor.Health)
		})
	}
}

func (s *FactoryTestSuite) TestCreateTrinket() {
	testCases := []struct {
		name  string
		slot  entities.Slot
		level int
		tier  entities.Tier
		each  int
	}{
		{name: "wood ring lvl 1", slot: entities.SlotRing, level: 1, tier: entities.TierWood, each: 1},
		{name: "iron ring lvl 2", slot: entities.SlotRing, level: 2, tier: entities.TierIron, each: 2},
		{name: "gold amulet lvl 4", slot: entities.SlotAmulet, level: 4, tier: entities.TierGold, each: 7},
		{name: "diamond amulet lvl 1", slot: entities.SlotAmulet, level: 1, tier: entities.TierDiamond, each: 3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			item, err := s.factory.CreateTrinket(tc.slot, tc.level, tc.tier)
			s.Require().NoError(err)
			s.Require().NoError(item.Validate())

			s.Equal(tc.each, item.Trinket.Strength)
			s.Equal(tc.each, item.Trinket.Dexterity)
			s.Equal(tc.each, item.Trinket.Intelligence)
		})
	}
}

func (s *FactoryTestSuite) TestCreatePotion() {
	item, err := s.factory.CreatePotion(50, 3)
	s.Require().NoError(err)
	s.Require().NoError(item.Validate())
	s.Equal(entities.TierNone, item.Tier)
	s.Equal(50, item.Potion.HealAmount)
	s.Equal(3, item.Quantity)

	loot, err := s.factory.CreateLootPotion(4)
	s.Require().NoError(err)
	s.Equal(40, loot.Potion.HealAmount)
	s.Equal(1, loot.Quantity)
}

func (s *FactoryTestSuite) TestInvalidInput() {
	testCases := []struct {
		name string
		fn   func() (*entities.Item, error)
	}{
		{name: "unknown weapon", fn: func() (*entities.Item, error) {
			return s.factory.CreateWeapon("spear", 1, entities.TierWood)
		}},
		{name: "tier none weapon", fn: func() (*entities.Item, error) {
			return s.factory.CreateWeapon(entities.WeaponSword, 1, entities.TierNone)
		}},
		{name: "level zero armor", fn: func() (*entities.Item, error) {
			return s.factory.CreateArmor(entities.SlotChest, 0, entities.TierWood)
		}},
		{name: "ring passed as armor", fn: func() (*entities.Item, error) {
			return s.factory.CreateArmor(entities.SlotRing, 1, entities.TierWood)
		}},
		{name: "unknown trinket tier", fn: func() (*entities.Item, error) {
			return s.factory.CreateTrinket(entities.SlotRing, 1, "crimson")
		}},
		{name: "zero heal potion", fn: func() (*entities.Item, error) {
			return s.factory.CreatePotion(0, 1)
		}},
		{name: "empty potion stack", fn: func() (*entities.Item, error) {
			return s.factory.CreatePotion(10, 0)
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			item, err := tc.fn()
			s.Nil(item)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *FactoryTestSuite) TestCreateAll() {
	all, err := s.factory.CreateAll(1)
	s.Require().NoError(err)
	s.Len(all, 4*4+2*4+2*4)

	seen := make(map[string]bool)
	for _, item := range all {
		s.NoError(item.Validate())
		s.False(seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func (s *FactoryTestSuite) TestTierOrderingRaisesStats() {
	order := []entities.Tier{entities.TierWood, entities.TierIron, entities.TierDiamond, entities.TierGold}
	prev := -1
	for _, tier := range order {
		item, err := s.factory.CreateWeapon(entities.WeaponAxe, 5, tier)
		s.Require().NoError(err)
		s.Greater(item.Weapon.Damage, prev)
		prev = item.Weapon.Damage
	}
}

func (s *FactoryTestSuite) TestTablesValidate() {
	tables := items.DefaultTables()
	delete(tables.Weapons, entities.WeaponBow)

	_, err := items.NewFactory(&items.FactoryConfig{Tables: tables})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
