// Package errors provides the structured error type used across the dungeon engine.
//
// Errors carry a Code, a message, an optional wrapped cause and metadata:
//
//	err := errors.NotFound("creature not found").
//	    WithMeta("creature_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save game")
//	}
//
// # Codes in the engine
//
//   - InvalidArgument: caller handed in a value outside the allowed domain
//     (decrementing integrity by zero, a negative weight limit)
//   - FailedPrecondition: an operation was attempted out of order
//     (adding an item without a successful simulation, a kill at an unvisited point)
//   - AlreadyExists: duplicate registration (achievement ids, archetype ids, unlocks)
//   - NotFound: lookups by id (games, presets, creatures at a location)
//   - Aborted: a battle exceeded the configured turn cap
//   - Unavailable, DataLoss, Internal: storage failures
//
// Caller contract violations are logged as warnings where they happen and
// returned as errors so the turn can continue.
//
// # Validation
//
// Config and preset validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("id", preset.ID, vb)
//	errors.ValidateFraction("hit_rate", preset.HitRate, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
