// Package combat runs a wave attempt: a pure reducer over State, driven one
// step per Tick by an Engine whose phases are a finite state machine.
package combat

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/random"
)

// Phase is the engine's lifecycle state
type Phase string

// Phases
const (
	PhaseIdle         Phase = "idle"
	PhaseRunning      Phase = "running"
	PhasePaused       Phase = "paused"
	PhaseWaveComplete Phase = "wave_complete"
	PhasePlayerDead   Phase = "player_dead"
)

// IsTerminal reports whether the attempt has ended
func (p Phase) IsTerminal() bool {
	return p == PhaseWaveComplete || p == PhasePlayerDead
}

const (
	eventStart    = "start"
	eventPause    = "pause"
	eventResume   = "resume"
	eventDie      = "die"
	eventComplete = "complete"
	eventRestart  = "restart"
	eventStop     = "stop"
)

func phaseEvents() fsm.Events {
	return fsm.Events{
		{Name: eventStart, Src: []string{string(PhaseIdle)}, Dst: string(PhaseRunning)},
		{Name: eventPause, Src: []string{string(PhaseRunning)}, Dst: string(PhasePaused)},
		{Name: eventResume, Src: []string{string(PhasePaused)}, Dst: string(PhaseRunning)},
		{Name: eventDie, Src: []string{string(PhaseRunning)}, Dst: string(PhasePlayerDead)},
		{Name: eventComplete, Src: []string{string(PhaseRunning)}, Dst: string(PhaseWaveComplete)},
		{
			Name: eventRestart,
			Src:  []string{string(PhasePaused), string(PhaseWaveComplete), string(PhasePlayerDead)},
			Dst:  string(PhaseRunning),
		},
		{
			Name: eventStop,
			Src: []string{
				string(PhaseRunning), string(PhasePaused),
				string(PhaseWaveComplete), string(PhasePlayerDead),
			},
			Dst: string(PhaseIdle),
		},
	}
}

// Config configures an Engine. A nil EventBus gets a private bus.
type Config struct {
	Character *entities.Character
	Random    *random.Source
	EventBus  events.EventBus
	Logger    *zap.Logger
}

// Validate checks required fields
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Character == nil {
		vb.RequiredField("Character")
	}
	if cfg.Random == nil {
		vb.RequiredField("Random")
	}
	return vb.Build()
}

// Engine drives one character through enemy waves. It is not safe for
// concurrent use; callers serialise Tick and the control methods.
type Engine struct {
	character *entities.Character
	rng       *random.Source
	logger    *zap.Logger
	phases    *fsm.FSM
	bus       events.EventBus

	wave  *entities.EnemyWave
	state State
}

// New creates an idle Engine
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	e := &Engine{
		character: cfg.Character,
		rng:       cfg.Random,
		logger:    logger,
		bus:       bus,
	}
	e.phases = fsm.NewFSM(string(PhaseIdle), phaseEvents(), fsm.Callbacks{
		"enter_state": func(_ context.Context, ev *fsm.Event) {
			e.logger.Debug("combat phase changed",
				zap.String("event", ev.Event),
				zap.String("from", ev.Src),
				zap.String("to", ev.Dst))
		},
	})
	return e, nil
}

// Phase returns the current phase
func (e *Engine) Phase() Phase {
	return Phase(e.phases.Current())
}

// State returns a copy of the combat state
func (e *Engine) State() State {
	return e.state
}

// Wave returns the wave being fought, or nil when idle
func (e *Engine) Wave() *entities.EnemyWave {
	return e.wave
}

// Character returns the character the engine fights with
func (e *Engine) Character() *entities.Character {
	return e.character
}

// EventBus returns the bus the engine publishes to
func (e *Engine) EventBus() events.EventBus {
	return e.bus
}

// Subscribe registers a listener for every combat event and returns a
// function that removes it
func (e *Engine) Subscribe(l Listener) func() {
	return Subscribe(e.bus, PriorityListener, l)
}

// publish sends ev on the bus. Handler failures are logged; they never
// change the outcome of combat.
func (e *Engine) publish(ctx context.Context, ev Event, source, target core.Entity) {
	if err := e.bus.Publish(ctx, NewGameEvent(ev, source, target)); err != nil {
		e.logger.Warn("combat event handler failed",
			zap.String("event", ev.EventType()),
			zap.Error(err))
	}
}

func (e *Engine) fire(ctx context.Context, event string) error {
	if !e.phases.Can(event) {
		return errors.FailedPreconditionf("cannot %s combat while %s", event, e.Phase())
	}
	if err := e.phases.Event(ctx, event); err != nil {
		return errors.Wrapf(err, "combat %s", event)
	}
	return nil
}

// checkWave rejects waves the engine cannot fight. Loot must be new to the
// character, so a restart needs a freshly built wave rather than the one
// already fought.
func checkWave(c *entities.Character, wave *entities.EnemyWave) error {
	if wave.Len() == 0 {
		return errors.InvalidArgument("wave has no enemies")
	}
	loot := make(map[string]struct{})
	for i, enemy := range wave.Enemies {
		if enemy == nil {
			return errors.InvalidArgumentf("wave enemy %d is nil", i)
		}
		if enemy.AttackSpeed <= 0 {
			return errors.InvalidArgumentf("enemy %s has non-positive attack speed", enemy.Name)
		}
		for _, item := range enemy.Loot {
			if item == nil {
				return errors.InvalidArgumentf("enemy %s drops a nil item", enemy.Name)
			}
			if _, dup := loot[item.ID]; dup || c.Owns(item.ID) {
				return errors.InvalidArgumentf("wave loot %s is already owned or dropped twice", item.ID)
			}
			loot[item.ID] = struct{}{}
		}
	}
	return nil
}

func (e *Engine) begin(wave *entities.EnemyWave) error {
	stats := engine.CalculateEffectiveStats(e.character)
	if stats.AttackSpeed <= 0 {
		return errors.FailedPrecondition("character attack speed must be positive")
	}
	e.wave = wave
	e.state = Reduce(State{}, InitCombat{Enemies: wave.Enemies, Stats: stats})
	return nil
}

// Start begins an attempt against wave. The engine must be idle.
func (e *Engine) Start(ctx context.Context, wave *entities.EnemyWave) error {
	if err := checkWave(e.character, wave); err != nil {
		return err
	}
	if e.Phase() != PhaseIdle {
		return errors.FailedPreconditionf("cannot start combat while %s", e.Phase())
	}
	if err := e.begin(wave); err != nil {
		return err
	}
	if err := e.fire(ctx, eventStart); err != nil {
		return err
	}

	e.logger.Info("combat started",
		zap.Int("wave_id", wave.WaveID),
		zap.Int("enemies", wave.Len()),
		zap.Int("player_health", e.state.PlayerHealth))
	e.publish(ctx, EventCombatStarted{
		WaveID:       wave.WaveID,
		WaveName:     wave.Name,
		EnemyCount:   wave.Len(),
		PlayerHealth: e.state.PlayerHealth,
		FirstEnemy:   e.state.CurrentEnemy,
	}, e.character, e.state.CurrentEnemy)
	return nil
}

// Restart throws away the current attempt and starts over against a freshly
// built wave. Character progression is left as it is.
func (e *Engine) Restart(ctx context.Context, wave *entities.EnemyWave) error {
	if err := checkWave(e.character, wave); err != nil {
		return err
	}
	phase := e.Phase()
	if phase == PhaseIdle {
		return errors.FailedPrecondition("cannot restart combat that has not started")
	}
	if err := e.begin(wave); err != nil {
		return err
	}
	if phase != PhaseRunning {
		if err := e.fire(ctx, eventRestart); err != nil {
			return err
		}
	}

	e.logger.Info("combat restarted", zap.Int("wave_id", wave.WaveID))
	e.publish(ctx, EventCombatRestarted{
		WaveID:       wave.WaveID,
		EnemyCount:   wave.Len(),
		PlayerHealth: e.state.PlayerHealth,
	}, e.character, e.state.CurrentEnemy)
	return nil
}

// Pause freezes the attempt; ticks become no-ops until Resume
func (e *Engine) Pause(ctx context.Context) error {
	if err := e.fire(ctx, eventPause); err != nil {
		return err
	}
	e.publish(ctx, EventCombatPaused{}, e.character, nil)
	return nil
}

// Resume continues a paused attempt
func (e *Engine) Resume(ctx context.Context) error {
	if err := e.fire(ctx, eventResume); err != nil {
		return err
	}
	e.publish(ctx, EventCombatResumed{}, e.character, nil)
	return nil
}

// Stop abandons the attempt and returns to idle. Stopping an idle engine
// does nothing.
func (e *Engine) Stop(ctx context.Context) error {
	phase := e.Phase()
	if phase == PhaseIdle {
		return nil
	}
	if err := e.fire(ctx, eventStop); err != nil {
		return err
	}
	e.wave = nil
	e.state = State{}
	e.publish(ctx, EventCombatStopped{Phase: phase}, e.character, nil)
	return nil
}

// PotionUse reports a consumed potion
type PotionUse struct {
	HealAmount   int
	Healed       int
	PlayerHealth int
}

// UsePotion drinks a potion during an attempt, healing up to the effective
// max health. It returns nil when the character has no potion.
func (e *Engine) UsePotion(ctx context.Context) (*PotionUse, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "use potion")
	}
	phase := e.Phase()
	if phase != PhaseRunning && phase != PhasePaused {
		return nil, errors.FailedPreconditionf("cannot use a potion while %s", phase)
	}

	heal, ok := e.character.ConsumePotion()
	if !ok {
		return nil, nil
	}

	stats := engine.CalculateEffectiveStats(e.character)
	before := e.state.PlayerHealth
	e.state = Reduce(e.state, HealPlayer{Amount: heal, MaxHealth: stats.Health})

	use := &PotionUse{
		HealAmount:   heal,
		Healed:       e.state.PlayerHealth - before,
		PlayerHealth: e.state.PlayerHealth,
	}
	e.publish(ctx, EventPotionUsed{
		HealAmount:   use.HealAmount,
		Healed:       use.Healed,
		PlayerHealth: use.PlayerHealth,
	}, e.character, e.character)
	return use, nil
}

// Tick advances the attempt by one step. Outside the running phase it does
// nothing.
//
// A step resolves the first of: player death, enemy death, or one attack.
// The combatant whose next-attack timer is lower swings; the player wins
// ties.
func (e *Engine) Tick(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "combat tick")
	}
	if e.Phase() != PhaseRunning {
		return nil
	}

	if e.state.PlayerHealth <= 0 {
		return e.playerDied(ctx)
	}
	if e.state.EnemyHealth <= 0 {
		return e.enemyDied(ctx)
	}

	stats := engine.CalculateEffectiveStats(e.character)
	if e.state.EnemyNextAttack < e.state.PlayerNextAttack {
		e.enemyAttack(ctx, stats)
		return nil
	}
	e.playerAttack(ctx, stats)
	return nil
}

func (e *Engine) playerDied(ctx context.Context) error {
	e.state = Reduce(e.state, EndCombat{})
	if err := e.fire(ctx, eventDie); err != nil {
		return err
	}

	e.logger.Info("player died",
		zap.Int("wave_id", e.wave.WaveID),
		zap.Int("enemy_index", e.state.EnemyIndex))
	e.publish(ctx, EventPlayerDied{
		Enemy:      e.state.CurrentEnemy,
		EnemyIndex: e.state.EnemyIndex,
	}, e.state.CurrentEnemy, e.character)
	return nil
}

func (e *Engine) enemyDied(ctx context.Context) error {
	enemy := e.state.CurrentEnemy
	result, err := e.character.HandleFightEnd(enemy.ExperienceGranted, enemy.Loot, enemy.GoldDropped)
	if err != nil {
		return errors.Wrapf(err, "failed to grant rewards for %s", enemy.Name)
	}

	e.logger.Debug("enemy killed",
		zap.String("enemy", enemy.Name),
		zap.Int("xp", enemy.ExperienceGranted),
		zap.Int("gold", enemy.GoldDropped),
		zap.Int("loot", len(enemy.Loot)))
	e.publish(ctx, EventEnemyKilled{
		Enemy:      enemy,
		EnemyIndex: e.state.EnemyIndex,
		Experience: result.ExperienceGained,
		Gold:       result.GoldGained,
		Loot:       enemy.Loot,
		Equipped:   result.Equipped,
		Stashed:    result.Stashed,
	}, e.character, enemy)

	if result.LevelsGained > 0 {
		e.logger.Info("level up",
			zap.Int("from", result.PreviousLevel),
			zap.Int("to", result.Level))
		e.publish(ctx, EventLevelUp{
			Character:       e.character,
			PreviousLevel:   result.PreviousLevel,
			Level:           result.Level,
			AttributePoints: e.character.UnallocAttrPts,
		}, e.character, nil)
	}

	if e.state.IsLastEnemy() {
		if err := e.fire(ctx, eventComplete); err != nil {
			return err
		}
		e.logger.Info("wave completed", zap.Int("wave_id", e.wave.WaveID))
		e.publish(ctx, EventWaveCompleted{
			WaveID:          e.wave.WaveID,
			EnemiesDefeated: e.wave.Len(),
		}, e.character, nil)
		return nil
	}

	e.state = Reduce(e.state, NextEnemy{})
	return nil
}

func (e *Engine) enemyAttack(ctx context.Context, stats entities.Stats) {
	enemy := e.state.CurrentEnemy
	dmg := engine.MitigatedDamage(enemy.Damage, stats.Armor)

	e.state = Reduce(e.state, DamagePlayer{Amount: dmg})
	e.state = Reduce(e.state, AdvanceTimers{EnemyDelay: engine.AttackInterval(enemy.AttackSpeed)})

	e.publish(ctx, EventEnemyAttacked{
		Attacker:     enemy,
		AttackerName: enemy.Name,
		Target:       e.character,
		Damage:       dmg,
		PlayerHealth: e.state.PlayerHealth,
	}, enemy, e.character)
}

func (e *Engine) playerAttack(ctx context.Context, stats entities.Stats) {
	enemy := e.state.CurrentEnemy
	dmg := engine.MitigatedDamage(stats.Damage, enemy.Armor)
	crit := e.rng.Chance(engine.CritChance(stats.Dexterity))
	if crit {
		dmg *= engine.CritMultiplier
	}

	e.state = Reduce(e.state, DamageEnemy{Amount: dmg})
	e.state = Reduce(e.state, AdvanceTimers{PlayerDelay: engine.AttackInterval(stats.AttackSpeed)})

	e.publish(ctx, EventPlayerAttacked{
		Attacker:    e.character,
		Target:      enemy,
		TargetName:  enemy.Name,
		Damage:      dmg,
		Critical:    crit,
		EnemyHealth: e.state.EnemyHealth,
	}, e.character, enemy)
}
