// Package base256 implements fixed-base arithmetic over ordered byte
// sequences.
//
// A Vector wraps an immutable sequence of bytes and supports element-wise
// addition and scalar multiplication, with each element taken modulo 256:
//
//	a := base256.New([]byte{1, 2, 3})
//	b := base256.New([]byte{1, 2, 3})
//
//	sum, err := a.Add(b)          // [2 4 6]
//	tripled, err := a.Multiply(3) // [3 6 9]
//
// Addition requires operands of equal length and fails with a
// DimensionError otherwise; it never truncates or pads. Scalar
// multiplication rejects negative scalars and is defined as repeated
// addition, so v.Multiply(0) is the all-zero vector of v's length.
//
// Vectors are never mutated by arithmetic, so values can be shared across
// goroutines without synchronization.
package base256
