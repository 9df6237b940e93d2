package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_interleave_roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var rows = rapid.IntRange(1, 16).Draw(t, "rows")
		var data = rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(t, "data")

		var interleaved = Interleave(rows, data)
		var recovered = Deinterleave(rows, interleaved, len(data))

		assert.Equal(t, data, recovered)
	})
}

func Test_interleave_spreads_burst_across_columns(t *testing.T) {
	var data = []byte{1, 2, 3, 4, 5, 6, 7, 8}
	var interleaved = Interleave(4, data)

	// row-major in, column-major out: row 0 = {1,2}, row1={3,4}, row2={5,6}, row3={7,8}
	assert.Equal(t, []byte{1, 3, 5, 7, 2, 4, 6, 8}, interleaved)
}
