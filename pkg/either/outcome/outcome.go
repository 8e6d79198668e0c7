package outcome

import (
	"errors"
	"fmt"
)

// ErrForwardReturned is raised by GetOrForward when the forwarding block
// returns instead of leaving the enclosing flow.
var ErrForwardReturned = errors.New("outcome: GetOrForward block returned normally")

// Unit is the payload of an Outcome that carries no value.
type Unit struct{}

// Outcome holds either a success value of type T or an error cause of type E.
// The zero Outcome is an Error holding the zero E; use the constructors.
type Outcome[T, E any] struct {
	value T
	cause E
	ok    bool
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value: v,
		ok:    true,
	}
}

func Error[T, E any](cause E) Outcome[T, E] {
	return Outcome[T, E]{
		cause: cause,
		ok:    false,
	}
}

// Of returns a successful Outcome holding b.
func Of[E any](b bool) Outcome[bool, E] {
	if b {
		return Success[bool, E](true)
	}
	return Success[bool, E](false)
}

func SuccessUnit[E any]() Outcome[Unit, E] {
	return Success[Unit, E](Unit{})
}

// SuccessZero is the success holding the zero value of T (nil for pointers,
// maps and interfaces).
func SuccessZero[T, E any]() Outcome[T, E] {
	var zero T
	return Success[T, E](zero)
}

// EmptyList is the success holding a non-nil empty slice.
func EmptyList[T, E any]() Outcome[[]T, E] {
	return Success[[]T, E]([]T{})
}

// FromTry lifts a (value, error) pair. A nil error is a success.
func FromTry[T any](v T, err error) Outcome[T, error] {
	if err != nil {
		return Error[T](err)
	}
	return Success[T, error](v)
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.ok
}

// IsSuccessAnd reports whether o is a success whose value satisfies pred.
// pred is not called on an Error.
func (o Outcome[T, E]) IsSuccessAnd(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

func (o Outcome[T, E]) IsError() bool {
	return !o.ok
}

func (o Outcome[T, E]) IsErrorAnd(pred func(E) bool) bool {
	return !o.ok && pred(o.cause)
}

// Get returns the value and true on Success, the zero T and false on Error.
func (o Outcome[T, E]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Outcome[T, E]) GetOrZero() T {
	return o.value
}

// Cause returns the cause and true on Error, the zero E and false on Success.
func (o Outcome[T, E]) Cause() (E, bool) {
	return o.cause, !o.ok
}

func (o Outcome[T, E]) GetOrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Outcome[T, E]) GetOrElseFunc(def func(E) T) T {
	if o.ok {
		return o.value
	}
	return def(o.cause)
}

// GetOrForward returns the value on Success. On Error it hands o to forward,
// which must not return: it should panic, call runtime.Goexit or stop the
// test. A forward that returns makes GetOrForward panic with
// ErrForwardReturned.
func (o Outcome[T, E]) GetOrForward(forward func(Outcome[T, E])) T {
	if o.ok {
		return o.value
	}
	forward(o)
	panic(ErrForwardReturned)
}

// OrPanic returns the value on Success and panics with build(cause) on Error.
// When build returns nil the cause itself is panicked.
func (o Outcome[T, E]) OrPanic(build func(E) error) T {
	if o.ok {
		return o.value
	}
	if err := build(o.cause); err != nil {
		panic(err)
	}
	panic(o.cause)
}

// Result converts o into Go's (value, error) form. An Error always yields a
// non-nil error, even when toErr returns nil.
func (o Outcome[T, E]) Result(toErr func(E) error) (T, error) {
	if o.ok {
		return o.value, nil
	}
	var zero T
	if err := toErr(o.cause); err != nil {
		return zero, err
	}
	return zero, fmt.Errorf("outcome: error %v", o.cause)
}

func (o Outcome[T, E]) OnSuccess(f func(T)) Outcome[T, E] {
	if o.ok {
		f(o.value)
	}
	return o
}

func (o Outcome[T, E]) OnError(f func(E)) Outcome[T, E] {
	if !o.ok {
		f(o.cause)
	}
	return o
}

func (o Outcome[T, E]) ForEach(f func(T)) {
	if o.ok {
		f(o.value)
	}
}

// Recover turns an Error into a Success of f(cause). A Success is returned as is.
func (o Outcome[T, E]) Recover(f func(E) T) Outcome[T, E] {
	if o.ok {
		return o
	}
	return Success[T, E](f(o.cause))
}

func (o Outcome[T, E]) RecoverWith(f func(E) Outcome[T, E]) Outcome[T, E] {
	if o.ok {
		return o
	}
	return f(o.cause)
}

func (o Outcome[T, E]) OrElse(f func() Outcome[T, E]) Outcome[T, E] {
	if o.ok {
		return o
	}
	return f()
}

func (o Outcome[T, E]) String() string {
	if o.ok {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Error(%v)", o.cause)
}
