// Package errors provides the structured error type used throughout the game
// core.
//
// Every error carries a Code. Callers branch on the code, not the message:
//
//	char, err := repo.Load(ctx, saves.LoadInput{SlotID: slot})
//	if errors.IsNotFound(err) {
//	    // no save yet, start a new game
//	}
//
// # Taxonomy
//
//   - InvalidArgument / FailedPrecondition: the caller broke a contract (unknown
//     item subtype, wave index out of range, locked wave). These are bugs in the
//     collaborator and are never retried.
//   - NotFound: an expected absence (no save in the slot, item not in the
//     inventory).
//   - DataLoss: a snapshot exists but cannot be decoded or fails validation.
//     Load paths recover by starting a fresh character.
//   - Internal / Unavailable: storage backends misbehaving.
//
// Expected empty states (no current enemy, no potion, empty slot) are not
// errors at all; they are nil values.
//
// # Validation
//
// Config structs validate themselves with the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateProbability("BaseDropChance", cfg.BaseDropChance, vb)
//	errors.ValidateMin("MinItems", cfg.MinItems, 0, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
