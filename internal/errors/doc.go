// Package errors provides the structured error type used across rpg-roller.
//
// Every failure the roll core can surface maps onto a Code:
//
//   - InvalidName: a special's name fails the name grammar. Surfaces as
//     CodeInvalidArgument with the offending name in the "name" meta key.
//   - Level out of range: a template was instantiated outside its bounds.
//     Surfaces as CodeOutOfRange with "name", "level", "min" and "max" meta.
//   - Merge invariant violation: an ordered special list lost its shape
//     during a merge. This is a programming defect; the merge code panics
//     with a CodeInternal error instead of returning it.
//
// Duplicate registrations are not errors at the registry layer (Register
// returns false), and malformed free-text tokens degrade to a best-effort
// special rather than producing an error at all.
//
// # Basic Usage
//
//	err := errors.InvalidName("Vicious Strike", "contains whitespace")
//	err := errors.OutOfRangef("level %d outside [%d, %d]", level, lo, hi)
//
// Wrapping keeps the original code:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist template")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("roller_id", input.RollerID, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # gRPC
//
// Collaborators that expose the core over RPC convert with ToGRPCError;
// the core itself never speaks gRPC.
package errors
