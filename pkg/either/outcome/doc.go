// Package outcome provides Outcome[T, E], a two-variant container holding
// either a Success value of type T or an Error cause of type E.
//
// Errors are ordinary values; nothing in this package recovers panics, so a
// panic raised by a callback reaches the caller unchanged.
//
// Key operations:
// - Success/Error/Of/FromTry: construct an Outcome
// - Map/Bind/MapError: transform the success or the error side
// - Fold/Merge: collapse to a single value
// - Recover/RecoverWith/OrElse: replace an Error
// - OnSuccess/OnError/ForEach: side effects, the Outcome is returned unchanged
// - GetOrElse/GetOrForward/OrPanic/Result: leave the Outcome world
// - Sequence/Traverse: collect many Outcomes, stopping at the first Error
package outcome
