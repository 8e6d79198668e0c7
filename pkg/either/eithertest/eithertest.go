// Package eithertest contains testify based assertions for outcome.Outcome
// and attempt.Attempt values.
//
// The Require* helpers stop the test on a mismatch, the Assert* helpers
// record the failure and report it through their boolean result. Failure
// messages name the expected variant, the actual variant and the rendered
// container.
package eithertest

import (
	"fmt"

	"github.com/ib-77/either/pkg/either"
	"github.com/stretchr/testify/assert"
)

// TestingT is the subset of *testing.T the helpers need.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

type tHelper interface {
	Helper()
}

// AssertSuccess checks that c is a Success and returns its payload.
func AssertSuccess[T any](t TestingT, c either.ValueProvider[T], msgAndArgs ...interface{}) (T, bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	v, ok := c.Get()
	if !ok {
		return v, assert.Fail(t, mismatch("Success", c), msgAndArgs...)
	}
	return v, true
}

// AssertError checks that an Outcome is an Error and returns its cause.
func AssertError[E any](t TestingT, c either.CauseProvider[E], msgAndArgs ...interface{}) (E, bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assertCause(t, "Error", c, msgAndArgs...)
}

// AssertFailure checks that an Attempt is a Failure and returns its error.
func AssertFailure(t TestingT, c either.CauseProvider[error], msgAndArgs ...interface{}) (error, bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assertCause(t, "Failure", c, msgAndArgs...)
}

func assertCause[E any](t TestingT, variant string, c either.CauseProvider[E], msgAndArgs ...interface{}) (E, bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	e, ok := c.Cause()
	if !ok {
		return e, assert.Fail(t, mismatch(variant, c), msgAndArgs...)
	}
	return e, true
}

func RequireSuccess[T any](t TestingT, c either.ValueProvider[T], msgAndArgs ...interface{}) T {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	v, ok := AssertSuccess(t, c, msgAndArgs...)
	if !ok {
		t.FailNow()
	}
	return v
}

func RequireError[E any](t TestingT, c either.CauseProvider[E], msgAndArgs ...interface{}) E {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	e, ok := AssertError(t, c, msgAndArgs...)
	if !ok {
		t.FailNow()
	}
	return e
}

func RequireFailure(t TestingT, c either.CauseProvider[error], msgAndArgs ...interface{}) error {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	err, ok := AssertFailure(t, c, msgAndArgs...)
	if !ok {
		t.FailNow()
	}
	return err
}

func mismatch(expected string, c either.Variant) string {
	return fmt.Sprintf("expected %s but was %s", expected, c)
}
