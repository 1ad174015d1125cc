package outline

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is wrapped by every [InterpolationError].
	ErrIncompatible = errors.New("outlines are not compatible")
	// ErrIndexOutOfRange is wrapped by every [IndexError].
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrMalformedPath is wrapped by every [StructureError].
	ErrMalformedPath = errors.New("malformed path")
)

// InterpolationError reports that two outlines cannot be combined
// arithmetically because their structures differ.
type InterpolationError struct {
	// Reason names the mismatch, e.g. "contour count" or "point count".
	Reason string
	// Contour is the index of the first mismatching contour, or -1 if the
	// mismatch is not about a specific contour.
	Contour int
	// Left and Right are the mismatching quantities of the receiver and
	// the other operand.
	Left, Right int
}

func (e *InterpolationError) Error() string {
	if e.Contour < 0 {
		return fmt.Sprintf("paths are not compatible: %s differs (%d vs. %d)", e.Reason, e.Left, e.Right)
	}
	return fmt.Sprintf("paths are not compatible: %s of contour %d differs (%d vs. %d)", e.Reason, e.Contour, e.Left, e.Right)
}

func (e *InterpolationError) Unwrap() error { return ErrIncompatible }

// IndexError reports an out-of-range contour or point index.
type IndexError struct {
	// What is "contourIndex", "contourPointIndex" or "pointIndex".
	What  string
	Index int
	// Len is the number of valid positions at the time of the call.
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s out of bounds: %d (length %d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// StructureError reports a packed path, packed contour or plain value
// whose parts do not fit together.
type StructureError struct {
	Msg string
}

func (e *StructureError) Error() string {
	return "malformed path: " + e.Msg
}

func (e *StructureError) Unwrap() error { return ErrMalformedPath }

func structErrorf(format string, args ...any) error {
	return &StructureError{Msg: fmt.Sprintf(format, args...)}
}
