package base256

import (
	"bytes"
	"fmt"
	"strings"
)

// Vector is an immutable ordered sequence of bytes. Arithmetic on vectors is
// element-wise with every result taken modulo 256; operations return new
// vectors and leave their operands untouched.
//
// The zero value is the empty vector.
type Vector struct {
	data []byte
}

// New returns a Vector holding a copy of data, preserving order and length.
func New(data []byte) Vector {
	d := make([]byte, len(data))
	copy(d, data)
	return Vector{data: d}
}

// Empty returns the zero-length vector.
func Empty() Vector {
	return Vector{}
}

// Zero returns an all-zero vector of length n.
func Zero(n int) Vector {
	return Vector{data: make([]byte, n)}
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return len(v.data)
}

// At returns the element at index i, panicking if i is out of range.
func (v Vector) At(i int) byte {
	return v.data[i]
}

// Bytes returns a copy of the underlying bytes.
func (v Vector) Bytes() []byte {
	d := make([]byte, len(v.data))
	copy(d, v.data)
	return d
}

// Equal reports whether v and other have the same length and identical
// values at every index.
func (v Vector) Equal(other Vector) bool {
	return bytes.Equal(v.data, other.data)
}

// Add returns the element-wise sum of v and other, each element taken
// modulo 256. The operands must have equal length; a DimensionError is
// returned otherwise, never a truncated or padded result.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v.data) != len(other.data) {
		return Vector{}, &DimensionError{LeftLen: len(v.data), RightLen: len(other.data)}
	}
	res := make([]byte, len(v.data))
	for i := range v.data {
		res[i] = v.data[i] + other.data[i]
	}
	return Vector{data: res}, nil
}

// Multiply returns the scalar multiple of v by n, each element taken modulo
// 256. It is equivalent to summing n copies of v, so n of 0 yields the
// all-zero vector of v's length. Negative scalars fail with a ScalarError.
func (v Vector) Multiply(n int) (Vector, error) {
	if n < 0 {
		return Vector{}, &ScalarError{Scalar: n}
	}
	res := make([]byte, len(v.data))
	for i, b := range v.data {
		// conversion to byte keeps the low 8 bits, which is the mod-256 result
		res[i] = byte(int(b) * n)
	}
	return Vector{data: res}, nil
}

// Xor returns the per-index xor of v and other. Unlike Add, the operands may
// differ in length: the unmatched tail of the longer operand is copied
// through unchanged.
func (v Vector) Xor(other Vector) Vector {
	short, long := v.data, other.data
	if len(short) > len(long) {
		short, long = long, short
	}
	res := make([]byte, len(long))
	copy(res, long)
	for i := range short {
		res[i] ^= short[i]
	}
	return Vector{data: res}
}

// String renders the vector as space-separated lowercase hex.
func (v Vector) String() string {
	parts := make([]string, len(v.data))
	for i, b := range v.data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}
