package lattice

import (
	"fmt"

	"github.com/pkg/errors"
)

// Domain errors for lattice operations.
var (
	// ErrParse indicates a malformed input grid.
	ErrParse = errors.New("lattice: malformed grid")

	// ErrConfig indicates an invalid dimension or round count.
	ErrConfig = errors.New("lattice: invalid configuration")

	// ErrDimensionMismatch indicates a coordinate whose length differs from
	// the dimension of the state it was presented to.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")
)

// ParseError locates a grid defect. Row and Col are zero-based.
type ParseError struct {
	Row    int
	Col    int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d col %d: %s", ErrParse.Error(), e.Row, e.Col, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// DimensionMismatchError reports a coordinate of the wrong length.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: want %d components, got %d", ErrDimensionMismatch.Error(), e.Want, e.Got)
}

func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

// CheckDimension returns a wrapped ErrConfig unless 2 <= d <= MaxDimension.
func CheckDimension(d int) error {
	if d < 2 {
		return errors.Wrapf(ErrConfig, "dimension must be at least 2, got %d", d)
	}
	if d > MaxDimension {
		return errors.Wrapf(ErrConfig, "dimension must be at most %d, got %d", MaxDimension, d)
	}
	return nil
}

// CheckRounds returns a wrapped ErrConfig for a negative round count.
func CheckRounds(rounds int) error {
	if rounds < 0 {
		return errors.Wrapf(ErrConfig, "rounds must be non-negative, got %d", rounds)
	}
	return nil
}
