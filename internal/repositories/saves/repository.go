// Package saves persists game snapshots, one per named slot
package saves

//go:generate mockgen -destination=mock/mock_repository.go -package=savesmock github.com/KirkDiggler/rpg-idle/internal/repositories/saves Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

const (
	// DefaultSlot is used when no slot is configured
	DefaultSlot = "default"

	errSlotEmpty = "save slot cannot be empty"
	errDataNil   = "save data cannot be nil"
)

// Repository defines the interface for save persistence
type Repository interface {
	// Save writes data to a slot, replacing anything already there
	// Returns errors.InvalidArgument for an empty slot or nil data
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads the snapshot stored in a slot
	// Returns errors.InvalidArgument for an empty slot
	// Returns errors.NotFound if the slot is empty
	// Returns errors.DataLoss if the stored payload cannot be decoded
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Delete removes a slot
	// Returns errors.InvalidArgument for an empty slot
	// Returns errors.NotFound if the slot is empty
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Exists reports whether a slot holds a snapshot
	// Returns errors.InvalidArgument for an empty slot
	// Returns errors.Internal for storage failures
	Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error)

	// List returns every slot holding a snapshot, sorted by name
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Slot string
	Data *SaveData
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	Data *SaveData
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct {
	Slot string
}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	Data *SaveData
}

// DeleteInput defines the input for deleting a snapshot
type DeleteInput struct {
	Slot string
}

// DeleteOutput defines the output for deleting a snapshot
type DeleteOutput struct{}

// ExistsInput defines the input for checking a slot
type ExistsInput struct {
	Slot string
}

// ExistsOutput defines the output for checking a slot
type ExistsOutput struct {
	Exists bool
}

// ListInput defines the input for listing slots
type ListInput struct{}

// ListOutput defines the output for listing slots
type ListOutput struct {
	Slots []string
}

func checkSlot(slot string) error {
	if slot == "" {
		return errors.InvalidArgument(errSlotEmpty)
	}
	return nil
}

func checkSave(input SaveInput) error {
	if err := checkSlot(input.Slot); err != nil {
		return err
	}
	if input.Data == nil {
		return errors.InvalidArgument(errDataNil)
	}
	return nil
}
