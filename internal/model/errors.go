package model

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by constructors. Packing itself never fails once
// its inputs have been validated; a box that fits nowhere is reported in the
// remainder, not as an error.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrNoBins           = errors.New("no bins")
)

// DimensionError describes a box or bin built with a zero or negative side.
// It unwraps to ErrInvalidDimension.
type DimensionError struct {
	Subject string // "box" or "bin"
	Width   int
	Height  int
}

func (e *DimensionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s %dx%d: width and height must be positive",
		ErrInvalidDimension, e.Subject, e.Width, e.Height)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

func checkDimensions(subject string, w, h int) error {
	if w <= 0 || h <= 0 {
		return &DimensionError{Subject: subject, Width: w, Height: h}
	}
	return nil
}
