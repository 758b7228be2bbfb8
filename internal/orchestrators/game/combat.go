package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/engine/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// buildWave creates a fresh enemy wave for an unlocked catalog wave
func (o *orchestrator) buildWave(waveID int) (*entities.EnemyWave, error) {
	def, err := o.catalog.Wave(waveID)
	if err != nil {
		return nil, err
	}
	if !o.progression.IsUnlocked(def.ID) {
		return nil, errors.FailedPreconditionf("wave %d is locked", def.ID)
	}

	wave, err := o.enemies.CreateWave(def)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build wave %d", def.ID)
	}
	return wave, nil
}

// StartWave builds a wave and starts combat against it. A finished attempt
// is cleared first; an attempt in progress must be stopped explicitly.
func (o *orchestrator) StartWave(ctx context.Context, input *StartWaveInput) (*StartWaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	switch phase := o.engine.Phase(); {
	case phase.IsTerminal():
		if err := o.engine.Stop(ctx); err != nil {
			return nil, err
		}
	case phase != combat.PhaseIdle:
		return nil, errors.FailedPreconditionf("combat is already %s", phase)
	}

	waveID := input.WaveID
	if waveID == 0 {
		waveID = o.progression.SelectedWaveID
	}

	wave, err := o.buildWave(waveID)
	if err != nil {
		return nil, err
	}

	o.settled = false
	if err := o.engine.Start(ctx, wave); err != nil {
		return nil, err
	}

	return &StartWaveOutput{Wave: wave, State: o.engine.State()}, nil
}

// TickCombat advances combat one step
func (o *orchestrator) TickCombat(ctx context.Context, input *TickCombatInput) (*TickCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	summary, err := o.tickLocked(ctx)
	if err != nil {
		return nil, err
	}

	return &TickCombatOutput{
		Phase:   o.engine.Phase(),
		State:   o.engine.State(),
		Summary: summary,
	}, nil
}

// tickLocked runs one engine step and settles the attempt the first time it
// is seen finished. It returns the summary on that step only.
func (o *orchestrator) tickLocked(ctx context.Context) (*WaveSummary, error) {
	if err := o.engine.Tick(ctx); err != nil {
		return nil, err
	}
	if !o.engine.Phase().IsTerminal() || o.settled {
		return nil, nil
	}
	return o.settle(ctx), nil
}

// settle records the finished attempt: a victory completes the wave and
// unlocks the next one, then the game is autosaved
func (o *orchestrator) settle(ctx context.Context) *WaveSummary {
	o.settled = true

	summary := o.summary.current
	if summary == nil {
		summary = &WaveSummary{}
	}
	summary.Level = o.character.Level

	wave := o.engine.Wave()
	if o.engine.Phase() == combat.PhaseWaveComplete && wave != nil {
		o.progression.MarkCompleted(wave.WaveID)
		if next, ok := o.catalog.Next(wave.WaveID); ok && !o.progression.IsUnlocked(next.ID) {
			o.progression.Unlock(next.ID)
			summary.NextWaveUnlocked = next.ID
		}
	}

	o.logger.Info("wave attempt finished",
		zap.Int("wave_id", summary.WaveID),
		zap.String("outcome", string(summary.Outcome)),
		zap.Int("enemies_defeated", summary.EnemiesDefeated),
		zap.Int("gold", summary.GoldEarned),
		zap.Int("xp", summary.ExperienceEarned))

	o.lastSummary = summary
	o.autosaveLocked(ctx)
	return summary
}

// RunCombat ticks combat from the clock until the attempt ends, the context
// is done or MaxTicks is reached. Paused combat keeps the ticker running.
func (o *orchestrator) RunCombat(ctx context.Context, input *RunCombatInput) (*RunCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MaxTicks < 0 {
		return nil, errors.InvalidArgument("max ticks must not be negative")
	}

	o.mu.Lock()
	if err := o.requireGame(); err != nil {
		o.mu.Unlock()
		return nil, err
	}
	if o.engine.Phase() == combat.PhaseIdle {
		o.mu.Unlock()
		return nil, errors.FailedPrecondition("no combat to run")
	}
	o.mu.Unlock()

	ticker := o.clock.NewTicker(o.tickInterval)
	defer ticker.Stop()

	out := &RunCombatOutput{}
	for {
		select {
		case <-ctx.Done():
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "combat run stopped")
		case <-ticker.C():
		}

		o.mu.Lock()
		summary, err := o.tickLocked(ctx)
		phase := o.engine.Phase()
		o.mu.Unlock()
		if err != nil {
			return nil, err
		}

		out.Ticks++
		out.Phase = phase
		if summary != nil || phase.IsTerminal() || phase == combat.PhaseIdle {
			out.Summary = summary
			return out, nil
		}
		if input.MaxTicks > 0 && out.Ticks >= input.MaxTicks {
			return out, nil
		}
	}
}

// PauseCombat freezes the attempt
func (o *orchestrator) PauseCombat(ctx context.Context, input *PauseCombatInput) (*PauseCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}
	if err := o.engine.Pause(ctx); err != nil {
		return nil, err
	}
	return &PauseCombatOutput{}, nil
}

// ResumeCombat continues a paused attempt
func (o *orchestrator) ResumeCombat(ctx context.Context, input *ResumeCombatInput) (*ResumeCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}
	if err := o.engine.Resume(ctx); err != nil {
		return nil, err
	}
	return &ResumeCombatOutput{}, nil
}

// RestartCombat starts the current wave over with freshly rolled enemies
func (o *orchestrator) RestartCombat(ctx context.Context, input *RestartCombatInput) (*RestartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	current := o.engine.Wave()
	if current == nil {
		return nil, errors.FailedPrecondition("no combat to restart")
	}

	wave, err := o.buildWave(current.WaveID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.Restart(ctx, wave); err != nil {
		return nil, err
	}
	o.settled = false

	return &RestartCombatOutput{Wave: wave, State: o.engine.State()}, nil
}

// StopCombat abandons the attempt
func (o *orchestrator) StopCombat(ctx context.Context, input *StopCombatInput) (*StopCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}
	if err := o.engine.Stop(ctx); err != nil {
		return nil, err
	}
	return &StopCombatOutput{}, nil
}

// UsePotion drinks a potion during combat
func (o *orchestrator) UsePotion(ctx context.Context, input *UsePotionInput) (*UsePotionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	use, err := o.engine.UsePotion(ctx)
	if err != nil {
		return nil, err
	}

	out := &UsePotionOutput{
		PlayerHealth: o.engine.State().PlayerHealth,
		Remaining:    o.character.PotionCount(),
	}
	if use != nil {
		out.Used = true
		out.HealAmount = use.HealAmount
		out.Healed = use.Healed
	}
	return out, nil
}

// GetCombatState returns the current attempt
func (o *orchestrator) GetCombatState(_ context.Context, input *GetCombatStateInput) (*GetCombatStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	out := &GetCombatStateOutput{
		Phase:   o.engine.Phase(),
		State:   o.engine.State(),
		Summary: o.lastSummary,
	}
	if wave := o.engine.Wave(); wave != nil {
		out.WaveID = wave.WaveID
	}
	return out, nil
}

// Subscribe registers a combat event listener on the event bus. It runs
// after the wave summary bookkeeping and survives NewGame and LoadGame.
func (o *orchestrator) Subscribe(listener combat.Listener) func() {
	return combat.Subscribe(o.bus, combat.PriorityListener, listener)
}
