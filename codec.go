package base256

import (
	"encoding/json"

	"github.com/ccoveille/go-safecast"
	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// MarshalJSON encodes the vector as an array of numbers, one per element.
func (v Vector) MarshalJSON() ([]byte, error) {
	nums := make([]int, len(v.data))
	for i, b := range v.data {
		nums[i] = int(b)
	}
	return json.Marshal(nums)
}

// UnmarshalJSON decodes an array of numbers, rejecting any value outside the
// byte range.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var nums []int64
	if err := json.Unmarshal(data, &nums); err != nil {
		return errors.Wrap(err, "base256: decoding json vector")
	}
	d := make([]byte, len(nums))
	for i, n := range nums {
		b, err := safecast.ToUint8(n)
		if err != nil {
			return errors.Wrapf(err, "base256: element %d out of byte range", i)
		}
		d[i] = b
	}
	v.data = d
	return nil
}

// MarshalBinary encodes the vector as a CBOR byte string.
func (v Vector) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(v.data)
}

// UnmarshalBinary decodes a CBOR byte string.
func (v *Vector) UnmarshalBinary(data []byte) error {
	var d []byte
	if err := cbor.Unmarshal(data, &d); err != nil {
		return errors.Wrap(err, "base256: decoding cbor vector")
	}
	v.data = d
	return nil
}

// MarshalText encodes the vector as base58.
func (v Vector) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(v.data)), nil
}

// UnmarshalText decodes a base58 string.
func (v *Vector) UnmarshalText(text []byte) error {
	d, err := base58.Decode(string(text))
	if err != nil {
		return errors.Wrap(err, "base256: decoding base58 vector")
	}
	v.data = d
	return nil
}
