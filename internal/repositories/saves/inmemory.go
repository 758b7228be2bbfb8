package saves

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// InMemoryRepository keeps encoded snapshots in a map. Loads return fresh
// copies, so callers never share state with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewInMemory creates an empty in-memory save repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{slots: make(map[string][]byte)}
}

// Save implements Repository
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := checkSave(input); err != nil {
		return nil, err
	}

	data, err := Encode(input.Data)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[input.Slot] = data

	return &SaveOutput{Data: input.Data}, nil
}

// Load implements Repository
func (r *InMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data, ok := r.slots[input.Slot]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("save slot %s not found", input.Slot)
	}

	d, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Data: d}, nil
}

// Delete implements Repository
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[input.Slot]; !ok {
		return nil, errors.NotFoundf("save slot %s not found", input.Slot)
	}
	delete(r.slots, input.Slot)

	return &DeleteOutput{}, nil
}

// Exists implements Repository
func (r *InMemoryRepository) Exists(_ context.Context, input ExistsInput) (*ExistsOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.slots[input.Slot]

	return &ExistsOutput{Exists: ok}, nil
}

// List implements Repository
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slots := make([]string, 0, len(r.slots))
	for slot := range r.slots {
		slots = append(slots, slot)
	}
	slices.Sort(slots)

	return &ListOutput{Slots: slots}, nil
}
