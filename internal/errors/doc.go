// Package errors provides the structured error type used across void-dice.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata:
//
//	err := errors.InvalidArgumentf("dice count must be non-negative, got %d", n).
//	    WithMeta("count", n)
//
// Wrapping keeps the code of the innermost coded error:
//
//	if err := bucket(); err != nil {
//	    return errors.Wrap(err, "failed to roll sub-round")
//	}
//
// Callers branch on codes with the Is* helpers (IsInvalidArgument,
// IsNotFound, ...) and the CLI maps codes to exit statuses with
// Code.ExitCode.
//
// Validation of config structs goes through ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("base_dice", cfg.BaseDice, 0, cfg.MaxDice, vb)
//	return vb.Build()
package errors
