package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// feedFrame drives wire bytes through rx bit by bit and returns the
// first fully-resolved frame, or nil if the stream never completed one.
func feedFrame(rx *Receiver, wire []byte) *ReceivedFrame {
	for _, b := range wire {
		for bitPos := 7; bitPos >= 0; bitPos-- {
			var bit = (b >> uint(bitPos)) & 1
			if out := rx.PushBit(bit); out != nil {
				return out
			}
		}
	}
	return nil
}

func feedFrameComplemented(rx *Receiver, wire []byte) *ReceivedFrame {
	for _, b := range wire {
		for bitPos := 7; bitPos >= 0; bitPos-- {
			var bit = (b >> uint(bitPos)) & 1
			if out := rx.PushBit(bit ^ 1); out != nil {
				return out
			}
		}
	}
	return nil
}

func Test_S1_all_options_off(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.FEC = FECNone
	cfg.ScrambleOn = false
	cfg.Rows = 1

	var tx, err = NewTransmitter(cfg)
	require.NoError(t, err)
	var wire, subErr = tx.Submit([]byte("Opal:Minimalist"), 0)
	require.NoError(t, subErr)

	var rx, rxErr = NewReceiver(cfg)
	require.NoError(t, rxErr)

	var rf = feedFrame(rx, wire)
	require.NotNil(t, rf)
	assert.True(t, rf.Diagnostics.CRCOK)
	assert.Equal(t, byte(0), rf.Diagnostics.MessageType)
	assert.Equal(t, 0, rf.Diagnostics.FECCorrections)
	assert.Equal(t, 100.0, rf.Diagnostics.AvgConfidencePct)
	assert.Equal(t, []byte("Opal:Minimalist"), rf.Payload)
}

func Test_S2_fec_only(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.FEC = FECRS1511
	cfg.ScrambleOn = false
	cfg.Rows = 1

	var tx, _ = NewTransmitter(cfg)
	var wire, _ = tx.Submit([]byte("Opal:FEC"), 0)

	var rx, _ = NewReceiver(cfg)
	var rf = feedFrame(rx, wire)

	require.NotNil(t, rf)
	assert.True(t, rf.Diagnostics.CRCOK)
	assert.Equal(t, 0, rf.Diagnostics.FECCorrections)
	assert.Equal(t, []byte("Opal:FEC"), rf.Payload)
}

func Test_S3_full_hardening_no_dsss(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.FEC = FECRS1511
	cfg.Rows = 8
	cfg.ScrambleOn = true
	cfg.NRZIOn = true
	cfg.DSSSOn = false

	var tx, err = NewTransmitter(cfg)
	require.NoError(t, err)
	var wire, subErr = tx.Submit([]byte("Opal:Full Hardening"), 0)
	require.NoError(t, subErr)

	var rx, _ = NewReceiver(cfg)
	var rf = feedFrame(rx, wire)

	require.NotNil(t, rf)
	assert.True(t, rf.Diagnostics.CRCOK)
	assert.Equal(t, []byte("Opal:Full Hardening"), rf.Payload)
}

func Test_S4_link16_profile(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.FEC = FECRS3115
	cfg.Rows = 8
	cfg.ScrambleOn = true
	cfg.NRZIOn = true
	cfg.CRC = CRC16

	var tx, err = NewTransmitter(cfg)
	require.NoError(t, err)
	var wire, subErr = tx.Submit([]byte("LINK-16 SECURE DATA TEST"), 0)
	require.NoError(t, subErr)

	var rx, _ = NewReceiver(cfg)
	var rf = feedFrame(rx, wire)

	require.NotNil(t, rf)
	assert.True(t, rf.Diagnostics.CRCOK)
	assert.Equal(t, []byte("LINK-16 SECURE DATA TEST"), rf.Payload)
}

func Test_S7_polarity_inversion(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.FEC = FECNone
	cfg.ScrambleOn = false
	cfg.Rows = 1

	var tx, _ = NewTransmitter(cfg)
	var wire, _ = tx.Submit([]byte("Opal:Minimalist"), 0)

	var rx, _ = NewReceiver(cfg)
	var rf = feedFrameComplemented(rx, wire)

	require.NotNil(t, rf)
	assert.True(t, rf.Diagnostics.CRCOK)
	assert.True(t, rf.Diagnostics.PolarityInverted)
	assert.Equal(t, []byte("Opal:Minimalist"), rf.Payload)
}

// P1: every payload under the cap round-trips under every configuration.
func Test_P1_roundtrip_every_config(t *testing.T) {
	var configs = allTestConfigs()

	rapid.Check(t, func(t *rapid.T) {
		var payload = rapid.SliceOfN(rapid.Byte(), 0, maxPayloadLen).Draw(t, "payload")
		var msgType = byte(rapid.IntRange(0, 255).Draw(t, "type"))
		var cfgIdx = rapid.IntRange(0, len(configs)-1).Draw(t, "cfg")
		var cfg = configs[cfgIdx]

		var tx, err = NewTransmitter(cfg)
		require.NoError(t, err)
		var wire, subErr = tx.Submit(payload, msgType)
		require.NoError(t, subErr)

		var rx, rxErr = NewReceiver(cfg)
		require.NoError(t, rxErr)
		var rf = feedFrame(rx, wire)

		require.NotNil(t, rf)
		assert.True(t, rf.Diagnostics.CRCOK)
		assert.Equal(t, payload, rf.Payload)
	})
}

// P2: P1 holds under a global polarity inversion, and is reported as such.
func Test_P2_roundtrip_under_polarity_inversion(t *testing.T) {
	var configs = allTestConfigs()

	rapid.Check(t, func(t *rapid.T) {
		var payload = rapid.SliceOfN(rapid.Byte(), 0, maxPayloadLen).Draw(t, "payload")
		var cfgIdx = rapid.IntRange(0, len(configs)-1).Draw(t, "cfg")
		var cfg = configs[cfgIdx]

		var tx, err = NewTransmitter(cfg)
		require.NoError(t, err)
		var wire, subErr = tx.Submit(payload, 0)
		require.NoError(t, subErr)

		var rx, rxErr = NewReceiver(cfg)
		require.NoError(t, rxErr)
		var rf = feedFrameComplemented(rx, wire)

		require.NotNil(t, rf)
		assert.True(t, rf.Diagnostics.CRCOK)
		assert.True(t, rf.Diagnostics.PolarityInverted)
		assert.Equal(t, payload, rf.Payload)
	})
}

func allTestConfigs() []Config {
	var base = DefaultConfig()

	var noFEC = base
	noFEC.FEC = FECNone
	noFEC.Rows = 1
	noFEC.ScrambleOn = false

	var fecOnly = base
	fecOnly.FEC = FECRS1511
	fecOnly.Rows = 1

	var interleavedFull = base
	interleavedFull.FEC = FECRS1511
	interleavedFull.Rows = 8
	interleavedFull.NRZIOn = true

	var link16 = base
	link16.FEC = FECRS3115
	link16.Rows = 8
	link16.NRZIOn = true

	var nrziAndManchester = base
	nrziAndManchester.FEC = FECRS1511
	nrziAndManchester.Rows = 8
	nrziAndManchester.NRZIOn = true
	nrziAndManchester.ManchesterOn = true

	return []Config{noFEC, fecOnly, interleavedFull, link16, nrziAndManchester}
}
