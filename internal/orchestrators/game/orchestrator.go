// Package game is the session orchestrator: it owns the character, wave
// progression and combat engine, and serialises every action behind one lock.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/catalog"
	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/engine/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/items"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/random"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/saves"
)

// DefaultTickInterval paces RunCombat when no interval is configured
const DefaultTickInterval = 100 * time.Millisecond

// Service defines the game session operations
type Service interface {
	// NewGame replaces the session with a default level 1 character
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// LoadGame loads the configured slot, starting a new game if it cannot
	LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error)

	// SaveGame writes the session to the configured slot
	SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error)

	// DeleteSave removes the configured slot
	DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error)

	// GetCharacter returns the character with effective stats
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// EquipItem moves an inventory item into its slot
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// UnequipItem moves an equipped item back to the inventory
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)

	// AllocateAttribute spends one attribute point
	AllocateAttribute(ctx context.Context, input *AllocateAttributeInput) (*AllocateAttributeOutput, error)

	// ListWaves returns the catalog with progress markers
	ListWaves(ctx context.Context, input *ListWavesInput) (*ListWavesOutput, error)

	// SelectWave chooses an unlocked wave
	SelectWave(ctx context.Context, input *SelectWaveInput) (*SelectWaveOutput, error)

	// StartWave builds a wave and starts combat against it
	StartWave(ctx context.Context, input *StartWaveInput) (*StartWaveOutput, error)

	// TickCombat advances combat one step
	TickCombat(ctx context.Context, input *TickCombatInput) (*TickCombatOutput, error)

	// RunCombat ticks combat from the clock until the attempt ends, the
	// context is done or MaxTicks is reached
	RunCombat(ctx context.Context, input *RunCombatInput) (*RunCombatOutput, error)

	PauseCombat(ctx context.Context, input *PauseCombatInput) (*PauseCombatOutput, error)
	ResumeCombat(ctx context.Context, input *ResumeCombatInput) (*ResumeCombatOutput, error)
	RestartCombat(ctx context.Context, input *RestartCombatInput) (*RestartCombatOutput, error)
	StopCombat(ctx context.Context, input *StopCombatInput) (*StopCombatOutput, error)

	// UsePotion drinks a potion during combat
	UsePotion(ctx context.Context, input *UsePotionInput) (*UsePotionOutput, error)

	// GetCombatState returns the current attempt
	GetCombatState(ctx context.Context, input *GetCombatStateInput) (*GetCombatStateOutput, error)

	// Subscribe registers a combat event listener. Listeners run while the
	// session lock is held and must not call back into the Service.
	Subscribe(listener combat.Listener) (unsubscribe func())
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Repository   saves.Repository
	Catalog      *catalog.Catalog
	Items        *items.Factory
	Enemies      *catalog.EnemyFactory
	Random       *random.Source
	Clock        clock.Clock
	IDGenerator  idgen.Generator
	Slot         string
	Autosave     bool
	TickInterval time.Duration
	EventBus     events.EventBus // combat events; a private bus when nil
	Logger       *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Enemies == nil {
		vb.RequiredField("Enemies")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.TickInterval < 0 {
		vb.Field("TickInterval", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	repo         saves.Repository
	catalog      *catalog.Catalog
	items        *items.Factory
	enemies      *catalog.EnemyFactory
	rng          *random.Source
	clock        clock.Clock
	ids          idgen.Generator
	slot         string
	autosave     bool
	tickInterval time.Duration
	bus          events.EventBus
	logger       *zap.Logger

	mu          sync.Mutex
	character   *entities.Character
	progression entities.Progression
	engine      *combat.Engine
	summary     *summaryCollector
	settled     bool
	lastSummary *WaveSummary

	unsubscribeSummary func()
}

// NewOrchestrator creates a game orchestrator with no game loaded. Call
// NewGame or LoadGame before anything else.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:         cfg.Repository,
		catalog:      cfg.Catalog,
		items:        cfg.Items,
		enemies:      cfg.Enemies,
		rng:          cfg.Random,
		clock:        cfg.Clock,
		ids:          cfg.IDGenerator,
		slot:         cfg.Slot,
		autosave:     cfg.Autosave,
		tickInterval: cfg.TickInterval,
		bus:          cfg.EventBus,
		logger:       cfg.Logger,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.ids == nil {
		o.ids = idgen.NewUUID("char")
	}
	if o.slot == "" {
		o.slot = saves.DefaultSlot
	}
	if o.tickInterval == 0 {
		o.tickInterval = DefaultTickInterval
	}
	if o.bus == nil {
		o.bus = events.NewBus()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o, nil
}

// install swaps in a character and progression and builds a fresh engine
// for them. Callers hold o.mu.
func (o *orchestrator) install(c *entities.Character, p entities.Progression) error {
	eng, err := combat.New(&combat.Config{
		Character: c,
		Random:    o.rng,
		EventBus:  o.bus,
		Logger:    o.logger,
	})
	if err != nil {
		return err
	}

	o.character = c
	o.progression = p
	o.engine = eng
	o.summary = &summaryCollector{character: c}
	o.settled = false
	o.lastSummary = nil

	if o.unsubscribeSummary != nil {
		o.unsubscribeSummary()
	}
	o.unsubscribeSummary = combat.Subscribe(o.bus, combat.PriorityBookkeeping, o.summary.listen)
	return nil
}

func (o *orchestrator) requireGame() error {
	if o.character == nil {
		return errors.FailedPrecondition("no game loaded")
	}
	return nil
}

func (o *orchestrator) newGame() error {
	c, err := catalog.DefaultCharacter(o.ids.Generate(), o.items)
	if err != nil {
		return errors.Wrap(err, "failed to create default character")
	}
	return o.install(c, entities.NewProgression(o.catalog.Waves()))
}

// NewGame replaces the session with a default level 1 character
func (o *orchestrator) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.newGame(); err != nil {
		return nil, err
	}

	o.logger.Info("new game started",
		zap.String("character_id", o.character.ID),
		zap.String("slot", o.slot))
	o.autosaveLocked(ctx)

	return &NewGameOutput{Character: o.character, Progression: o.progression}, nil
}

// LoadGame loads the configured slot, starting a new game if it cannot
func (o *orchestrator) LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	data, c, loadErr := o.load(ctx)
	if loadErr == nil {
		if err := o.install(c, o.reconcile(data.Progression)); err != nil {
			return nil, err
		}
		o.logger.Info("game loaded",
			zap.String("slot", o.slot),
			zap.String("character_id", c.ID),
			zap.Int("level", c.Level))
		return &LoadGameOutput{
			Character:   o.character,
			Progression: o.progression,
			SavedAt:     data.SavedAt(),
		}, nil
	}

	if errors.IsNotFound(loadErr) {
		o.logger.Info("no save found, starting a new game", zap.String("slot", o.slot))
	} else {
		o.logger.Error("failed to load save, starting a new game",
			zap.String("slot", o.slot),
			zap.Error(loadErr))
	}

	if err := o.newGame(); err != nil {
		return nil, err
	}

	return &LoadGameOutput{
		Character:   o.character,
		Progression: o.progression,
		Recovered:   true,
		Cause:       loadErr,
	}, nil
}

func (o *orchestrator) load(ctx context.Context) (*saves.SaveData, *entities.Character, error) {
	out, err := o.repo.Load(ctx, saves.LoadInput{Slot: o.slot})
	if err != nil {
		return nil, nil, err
	}
	if out == nil || out.Data == nil {
		return nil, nil, errors.DataLossf("save slot %s is empty", o.slot)
	}

	if out.Data.Version != saves.CurrentVersion {
		o.logger.Warn("save version mismatch",
			zap.Int("saved", out.Data.Version),
			zap.Int("current", saves.CurrentVersion))
	}

	c, err := out.Data.ToCharacter()
	if err != nil {
		return nil, nil, err
	}
	return out.Data, c, nil
}

// reconcile keeps saved progression consistent with the catalog: waves the
// catalog unlocks by default stay unlocked and the selection always points
// at an unlocked wave
func (o *orchestrator) reconcile(p entities.Progression) entities.Progression {
	waves := o.catalog.Waves()
	fresh := entities.NewProgression(waves)

	out := entities.Progression{
		SelectedWaveID:  p.SelectedWaveID,
		CompletedWaves:  []int{},
		UnlockedWaveIDs: []int{},
	}
	for _, id := range fresh.UnlockedWaveIDs {
		out.Unlock(id)
	}
	for _, w := range waves {
		if p.IsUnlocked(w.ID) {
			out.Unlock(w.ID)
		}
		if p.IsCompleted(w.ID) {
			out.MarkCompleted(w.ID)
		}
	}
	if !out.IsUnlocked(out.SelectedWaveID) {
		out.SelectedWaveID = fresh.SelectedWaveID
	}
	return out
}

func (o *orchestrator) save(ctx context.Context) (*saves.SaveData, error) {
	data, err := saves.NewSaveData(o.character, o.progression, o.clock.Now())
	if err != nil {
		return nil, err
	}
	if _, err := o.repo.Save(ctx, saves.SaveInput{Slot: o.slot, Data: data}); err != nil {
		return nil, err
	}
	return data, nil
}

// autosaveLocked saves when autosave is on. Failures are logged only.
func (o *orchestrator) autosaveLocked(ctx context.Context) {
	if !o.autosave || o.character == nil {
		return
	}
	if _, err := o.save(ctx); err != nil {
		o.logger.Error("autosave failed", zap.String("slot", o.slot), zap.Error(err))
		return
	}
	o.logger.Debug("autosaved", zap.String("slot", o.slot))
}

// SaveGame writes the session to the configured slot
func (o *orchestrator) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	data, err := o.save(ctx)
	if err != nil {
		o.logger.Error("save failed", zap.String("slot", o.slot), zap.Error(err))
		return nil, errors.Wrapf(err, "failed to save slot %s", o.slot)
	}

	o.logger.Info("game saved", zap.String("slot", o.slot))
	return &SaveGameOutput{SavedAt: data.SavedAt()}, nil
}

// DeleteSave removes the configured slot
func (o *orchestrator) DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.repo.Delete(ctx, saves.DeleteInput{Slot: o.slot}); err != nil {
		return nil, err
	}

	o.logger.Info("save deleted", zap.String("slot", o.slot))
	return &DeleteSaveOutput{}, nil
}

// GetCharacter returns the character with effective stats
func (o *orchestrator) GetCharacter(_ context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	return &GetCharacterOutput{
		Character:             o.character,
		EffectiveStats:        engine.CalculateEffectiveStats(o.character),
		ExperienceToNextLevel: o.character.ExperienceToNextLevel(),
		PotionCount:           o.character.PotionCount(),
	}, nil
}

// EquipItem moves an inventory item into its slot
func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	item, ok := o.character.InventoryItem(input.ItemID)
	if !ok {
		return nil, errors.NotFoundf("item %s is not in the inventory", input.ItemID)
	}

	displaced, err := o.character.EquipItem(input.ItemID)
	if err != nil {
		return nil, err
	}

	o.autosaveLocked(ctx)
	return &EquipItemOutput{Equipped: item, Displaced: displaced}, nil
}

// UnequipItem moves an equipped item back to the inventory
func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	item, err := o.character.UnequipItem(input.Slot)
	if err != nil {
		return nil, err
	}

	if item != nil {
		o.autosaveLocked(ctx)
	}
	return &UnequipItemOutput{Item: item}, nil
}

// AllocateAttribute spends one attribute point
func (o *orchestrator) AllocateAttribute(ctx context.Context, input *AllocateAttributeInput) (*AllocateAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	allocated, err := o.character.AllocateAttribute(input.Attribute)
	if err != nil {
		return nil, err
	}

	if allocated {
		o.autosaveLocked(ctx)
	}
	return &AllocateAttributeOutput{
		Allocated:       allocated,
		PointsRemaining: o.character.UnallocAttrPts,
		EffectiveStats:  engine.CalculateEffectiveStats(o.character),
	}, nil
}

// ListWaves returns the catalog with progress markers
func (o *orchestrator) ListWaves(_ context.Context, input *ListWavesInput) (*ListWavesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	waves := o.catalog.Waves()
	out := &ListWavesOutput{Waves: make([]WaveStatus, 0, len(waves))}
	for _, w := range waves {
		out.Waves = append(out.Waves, WaveStatus{
			Wave:      w,
			Unlocked:  o.progression.IsUnlocked(w.ID),
			Completed: o.progression.IsCompleted(w.ID),
			Selected:  o.progression.SelectedWaveID == w.ID,
		})
	}
	return out, nil
}

// SelectWave chooses an unlocked wave
func (o *orchestrator) SelectWave(ctx context.Context, input *SelectWaveInput) (*SelectWaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireGame(); err != nil {
		return nil, err
	}

	def, err := o.catalog.Wave(input.WaveID)
	if err != nil {
		return nil, err
	}
	if err := o.progression.Select(def.ID); err != nil {
		return nil, err
	}

	o.autosaveLocked(ctx)
	return &SelectWaveOutput{Wave: def}, nil
}
