package attempt

import (
	"errors"
	"fmt"

	"github.com/ib-77/either/pkg/either"
)

// ErrForwardReturned is raised by GetOrForward when the forwarding block
// returns instead of leaving the enclosing flow.
var ErrForwardReturned = errors.New("attempt: GetOrForward block returned normally")

type Unit struct{}

// Attempt holds either the result of a block or the error it failed with.
// An Attempt is a Failure exactly when its error is non-nil.
type Attempt[T any] struct {
	result T
	err    error
}

func Success[T any](r T) Attempt[T] {
	return Attempt[T]{result: r}
}

// Failure builds a failed Attempt. A nil error is replaced by ErrNilFailure
// and a fatal error is panicked instead of being stored.
func Failure[T any](err error) Attempt[T] {
	if either.IsNil(err) {
		err = ErrNilFailure
	}
	if IsFatal(err) {
		panic(err)
	}
	return Attempt[T]{err: err}
}

func Of(b bool) Attempt[bool] {
	if b {
		return Success(true)
	}
	return Success(false)
}

func SuccessUnit() Attempt[Unit] {
	return Success(Unit{})
}

func SuccessZero[T any]() Attempt[T] {
	var zero T
	return Success(zero)
}

func EmptyList[T any]() Attempt[[]T] {
	return Success([]T{})
}

// Try runs block and captures a non-fatal panic as a Failure. Fatal panics
// are raised again with their original value.
func Try[T any](block func() T) (a Attempt[T]) {
	defer func() {
		if r := recover(); r != nil {
			a = capture[T](r)
		}
	}()
	return Success(block())
}

// TryErr is Try for blocks following the (value, error) convention; a returned
// error becomes a Failure as well.
func TryErr[T any](block func() (T, error)) Attempt[T] {
	return runCatching(func() Attempt[T] {
		r, err := block()
		if err != nil {
			return Failure[T](err)
		}
		return Success(r)
	})
}

// runCatching runs a block that already returns an Attempt and captures a
// panic raised by the block itself.
func runCatching[T any](block func() Attempt[T]) (a Attempt[T]) {
	defer func() {
		if r := recover(); r != nil {
			a = capture[T](r)
		}
	}()
	return block()
}

func capture[T any](r any) Attempt[T] {
	if IsFatal(r) {
		panic(r)
	}
	return Attempt[T]{err: fromPanic(r)}
}

func (a Attempt[T]) IsSuccess() bool {
	return a.err == nil
}

func (a Attempt[T]) IsSuccessAnd(pred func(T) bool) bool {
	return a.err == nil && pred(a.result)
}

func (a Attempt[T]) IsFailure() bool {
	return a.err != nil
}

func (a Attempt[T]) IsFailureAnd(pred func(error) bool) bool {
	return a.err != nil && pred(a.err)
}

func (a Attempt[T]) Get() (T, bool) {
	return a.result, a.err == nil
}

func (a Attempt[T]) GetOrZero() T {
	return a.result
}

// Err returns the captured error, nil on Success.
func (a Attempt[T]) Err() error {
	return a.err
}

func (a Attempt[T]) Cause() (error, bool) {
	return a.err, a.err != nil
}

func (a Attempt[T]) GetOrElse(def T) T {
	if a.err == nil {
		return a.result
	}
	return def
}

func (a Attempt[T]) GetOrElseFunc(def func(error) T) T {
	if a.err == nil {
		return a.result
	}
	return def(a.err)
}

// GetOrForward returns the result on Success. On Failure it hands a to
// forward, which must not return.
func (a Attempt[T]) GetOrForward(forward func(Attempt[T])) T {
	if a.err == nil {
		return a.result
	}
	forward(a)
	panic(ErrForwardReturned)
}

// OrPanic returns the result or raises the captured panic value again.
func (a Attempt[T]) OrPanic() T {
	if a.err == nil {
		return a.result
	}
	panic(toPanic(a.err))
}

// OrPanicWith panics with transform(err) on Failure, or with the captured
// value as OrPanic does when transform returns nil.
func (a Attempt[T]) OrPanicWith(transform func(error) error) T {
	if a.err == nil {
		return a.result
	}
	if err := transform(a.err); err != nil {
		panic(err)
	}
	panic(toPanic(a.err))
}

func (a Attempt[T]) Result() (T, error) {
	return a.result, a.err
}

func (a Attempt[T]) OnSuccess(f func(T)) Attempt[T] {
	if a.err == nil {
		f(a.result)
	}
	return a
}

func (a Attempt[T]) OnFailure(f func(error)) Attempt[T] {
	if a.err != nil {
		f(a.err)
	}
	return a
}

func (a Attempt[T]) ForEach(f func(T)) {
	if a.err == nil {
		f(a.result)
	}
}

// Recover turns a Failure into Try(f(err)). A Success is returned as is.
func (a Attempt[T]) Recover(f func(error) T) Attempt[T] {
	if a.err == nil {
		return a
	}
	return Try(func() T { return f(a.err) })
}

func (a Attempt[T]) RecoverWith(f func(error) Attempt[T]) Attempt[T] {
	if a.err == nil {
		return a
	}
	return runCatching(func() Attempt[T] { return f(a.err) })
}

func (a Attempt[T]) OrElse(f func() Attempt[T]) Attempt[T] {
	if a.err == nil {
		return a
	}
	return runCatching(f)
}

func (a Attempt[T]) String() string {
	if a.err == nil {
		return fmt.Sprintf("Success(%v)", a.result)
	}
	return fmt.Sprintf("Failure(%v)", a.err)
}
