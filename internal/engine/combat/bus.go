package combat

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Keys set on the context of every published game event
const (
	// ContextKeyEvent holds the typed combat Event
	ContextKeyEvent = "combat.event"
	// ContextKeyDamage holds the damage of an attack, after armor
	ContextKeyDamage = "combat.damage"
	// ContextKeyCritical holds whether a player attack was a critical hit
	ContextKeyCritical = "combat.critical"
)

// Handler priorities; lower runs first
const (
	PriorityBookkeeping = 0
	PriorityListener    = 100
)

// EventTypes lists every event type the engine publishes
var EventTypes = []string{
	TypeCombatStarted,
	TypePlayerAttacked,
	TypeEnemyAttacked,
	TypeEnemyKilled,
	TypeLevelUp,
	TypePotionUsed,
	TypePlayerDied,
	TypeWaveCompleted,
	TypeCombatPaused,
	TypeCombatResumed,
	TypeCombatRestarted,
	TypeCombatStopped,
}

// NewGameEvent wraps ev in a toolkit game event so it can travel on an
// events.EventBus. The typed event rides under ContextKeyEvent.
func NewGameEvent(ev Event, source, target core.Entity) *events.GameEvent {
	ge := events.NewGameEvent(ev.EventType(), source, target)
	ge.Context().Set(ContextKeyEvent, ev)

	switch ev := ev.(type) {
	case EventPlayerAttacked:
		ge.Context().Set(ContextKeyDamage, ev.Damage)
		ge.Context().Set(ContextKeyCritical, ev.Critical)
	case EventEnemyAttacked:
		ge.Context().Set(ContextKeyDamage, ev.Damage)
	}
	return ge
}

// FromGameEvent extracts the typed combat Event from a bus event
func FromGameEvent(ge events.Event) (Event, bool) {
	if ge == nil || ge.Context() == nil {
		return nil, false
	}
	v, ok := ge.Context().Get(ContextKeyEvent)
	if !ok {
		return nil, false
	}
	ev, ok := v.(Event)
	return ev, ok
}

// Subscribe registers l for every combat event type on bus and returns a
// function that removes all of those subscriptions. Calling it twice is safe.
func Subscribe(bus events.EventBus, priority int, l Listener) func() {
	handler := func(_ context.Context, ge events.Event) error {
		if ev, ok := FromGameEvent(ge); ok {
			l(ev)
		}
		return nil
	}

	ids := make([]string, 0, len(EventTypes))
	for _, t := range EventTypes {
		ids = append(ids, bus.SubscribeFunc(t, priority, handler))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, id := range ids {
				_ = bus.Unsubscribe(id)
			}
		})
	}
}
