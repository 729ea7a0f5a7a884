package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize matches any InvalidSizeError.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrIndexOutOfRange matches any IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("cell index out of range")
	// ErrLengthMismatch matches any LengthMismatchError.
	ErrLengthMismatch = errors.New("cell count mismatch")
	// ErrNegativeVitality matches any NegativeVitalityError.
	ErrNegativeVitality = errors.New("negative vitality")
)

// InvalidSizeError reports a grid constructed with a non-positive size.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid grid size %d: must be positive", e.Size)
}

func (e *InvalidSizeError) Is(target error) bool { return target == ErrInvalidSize }

// IndexOutOfRangeError reports an index outside [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("cell index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

// LengthMismatchError reports a replacement generation of the wrong size.
type LengthMismatchError struct {
	Want, Got int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("generation has %d cells, grid has %d", e.Got, e.Want)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// NegativeVitalityError reports a replacement generation holding a value below zero.
type NegativeVitalityError struct {
	Index, Value int
}

func (e *NegativeVitalityError) Error() string {
	return fmt.Sprintf("cell %d has negative vitality %d", e.Index, e.Value)
}

func (e *NegativeVitalityError) Is(target error) bool { return target == ErrNegativeVitality }

// ErrUnknownRule is returned when a rule name has no registered Rule.
var ErrUnknownRule = errors.New("unknown rule")
