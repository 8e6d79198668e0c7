package outcome

import (
	"iter"
	"slices"
)

// Map rewraps f(value) as a new Success. An Error passes through with the same cause.
func Map[T, E, R any](o Outcome[T, E], f func(T) R) Outcome[R, E] {
	if o.ok {
		return Success[R, E](f(o.value))
	}
	return Error[R](o.cause)
}

// Bind returns f(value) on Success. An Error passes through with the same cause.
func Bind[T, E, R any](o Outcome[T, E], f func(T) Outcome[R, E]) Outcome[R, E] {
	if o.ok {
		return f(o.value)
	}
	return Error[R](o.cause)
}

func MapError[T, E, R any](o Outcome[T, E], f func(E) R) Outcome[T, R] {
	if o.ok {
		return Success[T, R](o.value)
	}
	return Error[T](f(o.cause))
}

func Fold[T, E, R any](o Outcome[T, E], onSuccess func(T) R, onError func(E) R) R {
	if o.ok {
		return onSuccess(o.value)
	}
	return onError(o.cause)
}

// Merge returns whichever payload is present when both sides share a type.
func Merge[T any](o Outcome[T, T]) T {
	if o.ok {
		return o.value
	}
	return o.cause
}

// Sequence collects the values of seq in order. It returns the first Error it
// meets and stops pulling from seq at that point.
func Sequence[T, E any](seq iter.Seq[Outcome[T, E]]) Outcome[[]T, E] {
	var values []T
	for o := range seq {
		if !o.ok {
			return Error[[]T](o.cause)
		}
		values = append(values, o.value)
	}
	if len(values) == 0 {
		return EmptyList[T, E]()
	}
	return Success[[]T, E](values)
}

func SequenceSlice[T, E any](items []Outcome[T, E]) Outcome[[]T, E] {
	return Sequence(slices.Values(items))
}

// Traverse applies f to each element of seq from left to right and collects the
// results. f is not called again after the first Error.
func Traverse[T, R, E any](seq iter.Seq[T], f func(T) Outcome[R, E]) Outcome[[]R, E] {
	var values []R
	for item := range seq {
		o := f(item)
		if !o.ok {
			return Error[[]R](o.cause)
		}
		values = append(values, o.value)
	}
	if len(values) == 0 {
		return EmptyList[R, E]()
	}
	return Success[[]R, E](values)
}

func TraverseSlice[T, R, E any](items []T, f func(T) Outcome[R, E]) Outcome[[]R, E] {
	return Traverse(slices.Values(items), f)
}
