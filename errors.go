package base256

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch matches any DimensionError via errors.Is.
var ErrDimensionMismatch = errors.New("base256: dimension mismatch")

// ErrNegativeScalar matches any ScalarError via errors.Is.
var ErrNegativeScalar = errors.New("base256: negative scalar")

// DimensionError is returned by Add when the operand lengths differ.
type DimensionError struct {
	LeftLen  int
	RightLen int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("base256: dimension mismatch: %d vs %d", e.LeftLen, e.RightLen)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// ScalarError is returned by Multiply when the scalar is negative.
type ScalarError struct {
	Scalar int
}

func (e *ScalarError) Error() string {
	return fmt.Sprintf("base256: negative scalar %d", e.Scalar)
}

func (e *ScalarError) Is(target error) bool {
	return target == ErrNegativeScalar
}
