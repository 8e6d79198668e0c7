package attempt

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/ib-77/either/pkg/either"
)

// Classifier reports whether a panic value is fatal. Fatal values are never
// turned into a Failure; they are panicked again as they were raised.
type Classifier func(v any) bool

// FatalError marks a panic value that must escape every Attempt boundary.
type FatalError struct {
	Value any
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %v", e.Value)
}

func (e *FatalError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Fatal wraps v so that panic(Fatal(v)) is never captured by an Attempt.
func Fatal(v any) *FatalError {
	return &FatalError{Value: v}
}

type fatalMarker interface {
	Fatal() bool
}

var (
	classifiersMu sync.RWMutex
	classifiers   = []Classifier{isFatalError, isFatalMarker, isAbortHandler}
)

// RegisterFatal adds c to the classifiers consulted by IsFatal.
func RegisterFatal(c Classifier) {
	classifiersMu.Lock()
	defer classifiersMu.Unlock()
	classifiers = append(classifiers, c)
}

// IsFatal reports whether v, a value passed to panic or an error about to be
// stored in a Failure, must not be captured.
//
// The built-in set is *FatalError, any value with a Fatal() bool method
// returning true, and http.ErrAbortHandler. Errors are matched through their
// wrap chain. Out of memory, stack exhaustion and concurrent map writes are
// runtime fatal errors rather than panics and end the process before any
// classifier runs; runtime.Goexit is not a panic and is never seen here.
//
// A classifier that panics counts as "not fatal" for v. Classifiers run
// without the registry lock held, so they may call RegisterFatal.
func IsFatal(v any) bool {
	if v == nil {
		return false
	}

	classifiersMu.RLock()
	current := classifiers[:len(classifiers):len(classifiers)]
	classifiersMu.RUnlock()

	for _, c := range current {
		if classify(c, v) {
			return true
		}
	}
	return false
}

func classify(c Classifier, v any) (fatal bool) {
	defer func() {
		if r := recover(); r != nil {
			fatal = false
		}
	}()
	return c(v)
}

// CancellationIsFatal classifies context cancellation and deadline errors as
// fatal. It is not part of the built-in set; opt in with RegisterFatal.
func CancellationIsFatal(v any) bool {
	err, ok := v.(error)
	return ok && either.IsCancellationError(err)
}

func isFatalError(v any) bool {
	if _, ok := v.(*FatalError); ok {
		return true
	}
	err, ok := v.(error)
	if !ok {
		return false
	}
	var fe *FatalError
	return errors.As(err, &fe)
}

func isFatalMarker(v any) bool {
	if m, ok := v.(fatalMarker); ok && m.Fatal() {
		return true
	}
	err, ok := v.(error)
	if !ok {
		return false
	}
	var m fatalMarker
	return errors.As(err, &m) && m.Fatal()
}

func isAbortHandler(v any) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, http.ErrAbortHandler)
}
