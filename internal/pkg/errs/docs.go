// Package errs provides the error vocabulary shared by the loadboard service.
//
// Every error type pairs a sentinel with a struct carrying details:
//   - ObjectNotFoundError (ErrObjectNotFound): a referenced load or booking does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - BusinessRuleViolationError (ErrBusinessRuleViolation): the request is well formed
//     but the current state forbids it
//
// Typed errors unwrap to their sentinel, so adapters classify them with errors.Is
// and map them to transport status codes without string matching.
package errs
