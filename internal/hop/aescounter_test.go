package hop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6: all-zero key, counter=0, N=50: deterministic and reproducible on
// reseed(0); two instances with the same key emit identical sequences.
func Test_S6_counter_deterministic_and_reseedable(t *testing.T) {
	var plan = ChannelPlan{NumChannels: 50, CenterFreqHz: 915e6, ChannelSpacing: 150e3}
	var key = make([]byte, 32)

	var sched, err = NewAESCounterScheduler(plan, key, 0)
	require.NoError(t, err)

	var first []int
	for i := 0; i < 5; i++ {
		var c, _ = sched.Trigger()
		first = append(first, c)
	}

	require.NoError(t, sched.Reseed(0))
	var second []int
	for i := 0; i < 5; i++ {
		var c, _ = sched.Trigger()
		second = append(second, c)
	}

	assert.Equal(t, first, second)
}

func Test_S6_counter_two_instances_same_key_match(t *testing.T) {
	var plan = ChannelPlan{NumChannels: 50, CenterFreqHz: 915e6, ChannelSpacing: 150e3}
	var key = make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	var schedA, _ = NewAESCounterScheduler(plan, key, 0)
	var schedB, _ = NewAESCounterScheduler(plan, key, 0)

	for i := 0; i < 8; i++ {
		var ca, _ = schedA.Trigger()
		var cb, _ = schedB.Trigger()
		assert.Equal(t, ca, cb)
	}
}

func Test_counter_rejects_bad_num_channels(t *testing.T) {
	var plan = ChannelPlan{NumChannels: 0}
	var _, err = NewAESCounterScheduler(plan, make([]byte, 32), 0)
	assert.Error(t, err)
}
