package attempt

import (
	"iter"
	"slices"
)

// Map runs f on the result inside Try, so a panic in f becomes a Failure.
func Map[T, R any](a Attempt[T], f func(T) R) Attempt[R] {
	if a.err != nil {
		return Attempt[R]{err: a.err}
	}
	return Try(func() R { return f(a.result) })
}

// Bind returns f(result); a panic raised by f itself becomes a Failure.
func Bind[T, R any](a Attempt[T], f func(T) Attempt[R]) Attempt[R] {
	if a.err != nil {
		return Attempt[R]{err: a.err}
	}
	return runCatching(func() Attempt[R] { return f(a.result) })
}

func Fold[T, R any](a Attempt[T], onSuccess func(T) R, onFailure func(error) R) R {
	if a.err == nil {
		return onSuccess(a.result)
	}
	return onFailure(a.err)
}

// Sequence collects results in order and stops pulling from seq at the first
// Failure, which is returned.
func Sequence[T any](seq iter.Seq[Attempt[T]]) Attempt[[]T] {
	var results []T
	for a := range seq {
		if a.err != nil {
			return Attempt[[]T]{err: a.err}
		}
		results = append(results, a.result)
	}
	if len(results) == 0 {
		return EmptyList[T]()
	}
	return Success(results)
}

func SequenceSlice[T any](items []Attempt[T]) Attempt[[]T] {
	return Sequence(slices.Values(items))
}

// Traverse applies f from left to right and stops at the first Failure. f is
// expected to guard itself, for example with Try; it is not wrapped here.
func Traverse[T, R any](seq iter.Seq[T], f func(T) Attempt[R]) Attempt[[]R] {
	var results []R
	for item := range seq {
		a := f(item)
		if a.err != nil {
			return Attempt[[]R]{err: a.err}
		}
		results = append(results, a.result)
	}
	if len(results) == 0 {
		return EmptyList[R]()
	}
	return Success(results)
}

func TraverseSlice[T, R any](items []T, f func(T) Attempt[R]) Attempt[[]R] {
	return Traverse(slices.Values(items), f)
}
