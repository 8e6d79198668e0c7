// Package either holds the conventions shared by the outcome and attempt
// containers: the capability interfaces used by assertion helpers and a few
// small helpers.
//
// The containers themselves live in subpackages:
// - outcome: Success(T) | Error(E), callbacks are never guarded
// - attempt: Success(T) | Failure(error), panics in callbacks become Failure
// - eithertest: testify based assertions for both
package either
