package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_scrambler_is_involution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var data = rapid.SliceOf(rapid.Byte()).Draw(t, "data")

		var s1 = NewScrambler(defaultScramblerMask, defaultScramblerSeed)
		var scrambled = s1.Process(append([]byte{}, data...))

		var s2 = NewScrambler(defaultScramblerMask, defaultScramblerSeed)
		var recovered = s2.Process(scrambled)

		assert.Equal(t, data, recovered)
	})
}

func Test_scrambler_changes_data(t *testing.T) {
	var s = NewScrambler(defaultScramblerMask, defaultScramblerSeed)
	var data = []byte{0x00, 0x00, 0x00, 0x00}
	var out = s.Process(data)
	assert.NotEqual(t, data, out)
}
