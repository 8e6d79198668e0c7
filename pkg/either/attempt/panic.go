package attempt

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/ib-77/either/pkg/either"
)

// ErrNilFailure replaces a nil error handed to Failure.
var ErrNilFailure = errors.New("attempt: failure with nil error")

// PanicError carries a recovered panic value that is not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// fromPanic turns a recovered value into the error kept by a Failure.
// Errors, runtime.Error included, are kept as they are.
func fromPanic(r any) error {
	if err, ok := r.(error); ok && !either.IsNil(err) {
		return err
	}
	return &PanicError{Value: r, Stack: debug.Stack()}
}

// toPanic is the inverse of fromPanic: the value to raise again.
func toPanic(err error) any {
	if pe, ok := err.(*PanicError); ok {
		return pe.Value
	}
	return err
}
