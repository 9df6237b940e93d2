package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_nrzi_roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var bits = rapid.SliceOf(rapid.IntRange(0, 1)).Draw(t, "bits")
		var in = make([]byte, len(bits))
		for i, b := range bits {
			in[i] = byte(b)
		}

		var enc = NewNRZI(0)
		var line = enc.Encode(in)

		var dec = NewNRZI(0)
		var out = dec.Decode(line)

		assert.Equal(t, in, out)
	})
}

func Test_manchester_roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var bits = rapid.SliceOf(rapid.IntRange(0, 1)).Draw(t, "bits")
		var in = make([]byte, len(bits))
		for i, b := range bits {
			in[i] = byte(b)
		}

		var line = ManchesterEncode(in)
		assert.Equal(t, len(in)*2, len(line))

		var out = ManchesterDecode(line)
		assert.Equal(t, in, out)
	})
}

func Test_manchester_encoding_known_values(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0, 1}, ManchesterEncode([]byte{1, 0}))
}
