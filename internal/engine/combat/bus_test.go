package combat_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-idle/internal/engine/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/random"
)

type BusTestSuite struct {
	suite.Suite
	ctx       context.Context
	bus       *events.Bus
	character *entities.Character
	engine    *combat.Engine
}

func TestBusSuite(t *testing.T) {
	suite.Run(t, new(BusTestSuite))
}

func (s *BusTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.character = player(entities.Stats{Health: 100, Damage: 20, AttackSpeed: 1, Armor: 2})

	eng, err := combat.New(&combat.Config{
		Character: s.character,
		Random:    random.New(random.NewSequenceRoller(1)),
		EventBus:  s.bus,
	})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *BusTestSuite) TestUsesInjectedBus() {
	s.Same(s.bus, s.engine.EventBus())
}

func (s *BusTestSuite) TestPublishesGameEventsWithContext() {
	foe := enemy("e1", 100, 10, 0, 1)

	var got []events.Event
	s.bus.SubscribeFunc(combat.TypePlayerAttacked, 0, func(_ context.Context, ev events.Event) error {
		got = append(got, ev)
		return nil
	})

	s.Require().NoError(s.engine.Start(s.ctx, wave(foe)))
	s.Require().NoError(s.engine.Tick(s.ctx))

	s.Require().Len(got, 1)
	ev := got[0]
	s.Equal(combat.TypePlayerAttacked, ev.Type())
	s.Equal(s.character.GetID(), ev.Source().GetID())
	s.Equal(foe.GetID(), ev.Target().GetID())

	dmg, ok := ev.Context().Get(combat.ContextKeyDamage)
	s.True(ok)
	s.Equal(40, dmg, "roll of 1 is a crit")

	crit, ok := ev.Context().Get(combat.ContextKeyCritical)
	s.True(ok)
	s.Equal(true, crit)

	typed, ok := combat.FromGameEvent(ev)
	s.Require().True(ok)
	s.Equal(40, typed.(combat.EventPlayerAttacked).Damage)
}

func (s *BusTestSuite) TestPriorityOrdersListeners() {
	var order []string
	late := combat.Subscribe(s.bus, combat.PriorityListener, func(ev combat.Event) {
		order = append(order, "listener:"+ev.EventType())
	})
	defer late()
	early := combat.Subscribe(s.bus, combat.PriorityBookkeeping, func(ev combat.Event) {
		order = append(order, "bookkeeping:"+ev.EventType())
	})
	defer early()

	s.Require().NoError(s.engine.Start(s.ctx, wave(enemy("e1", 100, 10, 0, 1))))

	s.Equal([]string{
		"bookkeeping:" + combat.TypeCombatStarted,
		"listener:" + combat.TypeCombatStarted,
	}, order)
}

func (s *BusTestSuite) TestUnsubscribeIsIdempotent() {
	rec := &recorder{}
	unsubscribe := combat.Subscribe(s.bus, combat.PriorityListener, rec.listen)

	s.Require().NoError(s.engine.Start(s.ctx, wave(enemy("e1", 100, 10, 0, 1))))
	s.Len(rec.events, 1)

	unsubscribe()
	unsubscribe()
	s.Require().NoError(s.engine.Pause(s.ctx))
	s.Len(rec.events, 1)
}

func (s *BusTestSuite) TestIgnoresForeignEvents() {
	rec := &recorder{}
	defer combat.Subscribe(s.bus, combat.PriorityListener, rec.listen)()

	err := s.bus.Publish(s.ctx, events.NewGameEvent(combat.TypeCombatPaused, s.character, nil))
	s.NoError(err)
	s.Empty(rec.events)
}

func (s *BusTestSuite) TestRejectsWaveWithOwnedLoot() {
	ring := &entities.Item{
		ID: "ring_1", Type: entities.ItemTypeTrinket, Slot: entities.SlotRing, Tier: entities.TierIron,
		Quantity: 1, Trinket: &entities.TrinketStats{Strength: 1},
	}
	foe := entities.NewEnemy("e1", entities.EnemyPrefab{
		Name: "Carrier", Health: 10, Damage: 1, AttackSpeed: 1, ExperienceGranted: 5, Level: 1,
	}, []*entities.Item{ring})
	fought := wave(foe)

	s.Require().NoError(s.engine.Start(s.ctx, fought))
	for s.engine.Phase() == combat.PhaseRunning {
		s.Require().NoError(s.engine.Tick(s.ctx))
	}
	s.Require().Equal(combat.PhaseWaveComplete, s.engine.Phase())
	s.True(s.character.Owns("ring_1"))

	s.Run("restart with the fought wave", func() {
		err := s.engine.Restart(s.ctx, fought)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(combat.PhaseWaveComplete, s.engine.Phase())
	})

	s.Run("restart with a fresh wave", func() {
		fresh := wave(enemy("e2", 10, 1, 0, 1))
		s.NoError(s.engine.Restart(s.ctx, fresh))
		s.Equal(combat.PhaseRunning, s.engine.Phase())
	})
}
