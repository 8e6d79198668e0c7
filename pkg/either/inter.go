package either

import "fmt"

// Variant is implemented by every two-variant container in this module.
type Variant interface {
	fmt.Stringer
	// IsSuccess returns true if the container holds the success variant
	IsSuccess() bool
}

// ValueProvider exposes the success payload of a container
type ValueProvider[T any] interface {
	Variant
	// Get returns the success payload and true, or the zero value and false
	Get() (T, bool)
}

// CauseProvider exposes the failure payload of a container
type CauseProvider[E any] interface {
	Variant
	// Cause returns the failure payload and true, or the zero value and false
	Cause() (E, bool)
}
