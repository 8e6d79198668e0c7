// Package attempt provides Attempt[T], the result of code that may panic:
// either a Success holding the result or a Failure holding the error the code
// panicked with.
//
// Try, Map, Bind, Recover, RecoverWith, OrElse and TryErr recover panics
// raised by their callbacks and store them in a Failure. Before doing so they
// consult IsFatal; a fatal panic value is raised again untouched and never
// stored. Fold, OnSuccess, OnFailure and ForEach do not recover.
//
// A recovered error is kept as is, so errors.Is and errors.As keep working
// on Err(). Any other panic value is wrapped in *PanicError together with the
// stack at the recovery site; OrPanic raises the original value again.
//
// Key operations:
// - Try/TryErr/Success/Failure/Of: construct an Attempt
// - Map/Bind/Fold: transform or collapse the result
// - Recover/RecoverWith/OrElse: replace a Failure
// - GetOrElse/GetOrForward/OrPanic/OrPanicWith/Result: leave the Attempt world
// - Sequence/Traverse: collect many Attempts, stopping at the first Failure
// - IsFatal/RegisterFatal/Fatal: the fatal classification
package attempt
