package base256

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(New([]byte{0, 128, 255}))
	require.NoError(t, err)
	assert.JSONEq(t, `[0,128,255]`, string(out))

	out, err = json.Marshal(Empty())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out))
}

func TestUnmarshalJSON(t *testing.T) {
	var v Vector
	require.NoError(t, json.Unmarshal([]byte(`[1,2,3]`), &v))
	assert.True(t, New([]byte{1, 2, 3}).Equal(v))
}

func TestUnmarshalJSONRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too large", `[1,256]`},
		{"negative", `[-1]`},
		{"fractional", `[1.5]`},
		{"not an array", `"abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Vector
			assert.Error(t, json.Unmarshal([]byte(tt.input), &v))
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := New([]byte{0, 1, 127, 128, 254, 255})
	out, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Vector
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, orig.Equal(back))
}

func TestBinaryRoundTrip(t *testing.T) {
	orig := New([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	out, err := orig.MarshalBinary()
	require.NoError(t, err)

	var back Vector
	require.NoError(t, back.UnmarshalBinary(out))
	assert.True(t, orig.Equal(back))
}

func TestUnmarshalBinaryBadInput(t *testing.T) {
	var v Vector
	assert.Error(t, v.UnmarshalBinary([]byte{0xFF, 0xFF}))
}

func TestTextRoundTrip(t *testing.T) {
	orig := New([]byte{1, 2, 3, 4, 5})
	out, err := orig.MarshalText()
	require.NoError(t, err)

	var back Vector
	require.NoError(t, back.UnmarshalText(out))
	assert.True(t, orig.Equal(back))
}

func TestUnmarshalTextBadInput(t *testing.T) {
	var v Vector
	assert.Error(t, v.UnmarshalText([]byte("0OIl")))
}
