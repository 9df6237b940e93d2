package hop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_tod_same_dwell_window_matches(t *testing.T) {
	var plan = ChannelPlan{NumChannels: 50, CenterFreqHz: 915e6, ChannelSpacing: 150e3}
	var key = make([]byte, 32)

	var schedA, err = NewTODScheduler(plan, key, 200*time.Millisecond, 0)
	require.NoError(t, err)
	var schedB, errB = NewTODScheduler(plan, key, 200*time.Millisecond, 0)
	require.NoError(t, errB)

	var fixed = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	schedA.now = func() time.Time { return fixed }
	schedB.now = func() time.Time { return fixed }

	var ca, _ = schedA.Trigger()
	var cb, _ = schedB.Trigger()
	assert.Equal(t, ca, cb)
}

func Test_tod_one_second_later_is_a_different_epoch(t *testing.T) {
	var plan = ChannelPlan{NumChannels: 2, CenterFreqHz: 915e6, ChannelSpacing: 150e3}
	var key = make([]byte, 32)

	var sched, err = NewTODScheduler(plan, key, 200*time.Millisecond, 0)
	require.NoError(t, err)

	var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sched.now = func() time.Time { return t0 }
	var e0 = sched.epoch()

	sched.now = func() time.Time { return t0.Add(time.Second) }
	var e1 = sched.epoch()

	assert.NotEqual(t, e0, e1)
}

func Test_tod_reseed_errors(t *testing.T) {
	var plan = ChannelPlan{NumChannels: 50, CenterFreqHz: 915e6, ChannelSpacing: 150e3}
	var sched, _ = NewTODScheduler(plan, make([]byte, 32), 200*time.Millisecond, 0)
	assert.Error(t, sched.Reseed(5))
}
