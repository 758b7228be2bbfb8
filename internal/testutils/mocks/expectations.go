// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/saves"
	savesmock "github.com/KirkDiggler/rpg-idle/internal/repositories/saves/mock"
)

// ExpectNoSave sets up a load of an empty slot
func ExpectNoSave(ctx context.Context, repo *savesmock.MockRepository, slot string) *gomock.Call {
	return repo.EXPECT().
		Load(ctx, saves.LoadInput{Slot: slot}).
		Return(nil, errors.NotFoundf("save slot %s not found", slot))
}

// ExpectLoad sets up a successful load of data from slot
func ExpectLoad(ctx context.Context, repo *savesmock.MockRepository, slot string, data *saves.SaveData) *gomock.Call {
	return repo.EXPECT().
		Load(ctx, saves.LoadInput{Slot: slot}).
		Return(&saves.LoadOutput{Data: data}, nil)
}

// ExpectSave accepts a save to slot and hands the written snapshot to
// capture when it is not nil
func ExpectSave(ctx context.Context, repo *savesmock.MockRepository, slot string, capture func(*saves.SaveData)) *gomock.Call {
	return repo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input saves.SaveInput) (*saves.SaveOutput, error) {
			if input.Slot != slot {
				return nil, errors.InvalidArgumentf("unexpected slot %s", input.Slot)
			}
			if capture != nil {
				capture(input.Data)
			}
			return &saves.SaveOutput{Data: input.Data}, nil
		})
}
