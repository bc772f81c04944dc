package shadow

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstraint is returned when minimum/maximum sizes are malformed.
	ErrInvalidConstraint = errors.New("invalid size constraint")

	// ErrInvalidDirection is returned for a base direction other than LTR or RTL.
	ErrInvalidDirection = errors.New("invalid base direction")

	// ErrLayoutSolveFailure wraps every engine failure during a layout pass.
	ErrLayoutSolveFailure = errors.New("layout solve failure")

	// ErrNodeAttached is returned when attaching a node that already has a
	// parent, is a root, or is an ancestor of the target.
	ErrNodeAttached = errors.New("node already attached")

	// ErrUnknownSurface is returned by Registry for unregistered surface IDs.
	ErrUnknownSurface = errors.New("unknown surface")
)

// ConstraintError describes a rejected SetSizeConstraints call.
type ConstraintError struct {
	Minimum Size
	Maximum Size
	Reason  string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v: %s (minimum %dx%d, maximum %dx%d)",
		ErrInvalidConstraint, e.Reason,
		e.Minimum.Width, e.Minimum.Height, e.Maximum.Width, e.Maximum.Height)
}

func (e *ConstraintError) Unwrap() error {
	return ErrInvalidConstraint
}

// validateConstraints rejects negative components and min > max on either axis.
func validateConstraints(minimum, maximum Size) error {
	switch {
	case minimum.Width < 0 || minimum.Height < 0:
		return &ConstraintError{Minimum: minimum, Maximum: maximum, Reason: "negative minimum"}
	case maximum.Width < 0 || maximum.Height < 0:
		return &ConstraintError{Minimum: minimum, Maximum: maximum, Reason: "negative maximum"}
	case minimum.Width > maximum.Width:
		return &ConstraintError{Minimum: minimum, Maximum: maximum, Reason: "minimum width exceeds maximum"}
	case minimum.Height > maximum.Height:
		return &ConstraintError{Minimum: minimum, Maximum: maximum, Reason: "minimum height exceeds maximum"}
	}
	return nil
}
