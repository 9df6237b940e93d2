package hop

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"time"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Time-of-day synchronized hop sequence generator: the same
 *		AES-256 keystream mechanism as AESCounterScheduler, but
 *		keyed by a wall-clock epoch number instead of a counter
 *		that advances per trigger. Two nodes with clocks agreeing
 *		within one dwell period land on the same epoch, and so the
 *		same channel, without exchanging any synchronization
 *		message.
 *
 *------------------------------------------------------------------*/

// TODScheduler is a Scheduler backed by the wall clock: the epoch
// feeding the keystream is floor((now + lookahead) / dwell).
type TODScheduler struct {
	plan     ChannelPlan
	cipher   cipher.Block
	dwell    time.Duration
	lookahead time.Duration
	now      func() time.Time
}

// NewTODScheduler returns a TODScheduler keyed by key (32 bytes for
// AES-256), advancing epochs every dwell and peeking lookahead ahead of
// the current time when computing the active epoch.
func NewTODScheduler(plan ChannelPlan, key []byte, dwell, lookahead time.Duration) (*TODScheduler, error) {
	if plan.NumChannels <= 0 {
		return nil, fmt.Errorf("hop: NumChannels must be > 0, got %d", plan.NumChannels)
	}
	if dwell <= 0 {
		return nil, fmt.Errorf("hop: dwell must be > 0, got %s", dwell)
	}
	var block, err = aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("hop: initializing AES cipher: %w", err)
	}
	return &TODScheduler{plan: plan, cipher: block, dwell: dwell, lookahead: lookahead, now: time.Now}, nil
}

func (s *TODScheduler) epoch() uint64 {
	var t = s.now().Add(s.lookahead)
	return uint64(t.UnixNano() / s.dwell.Nanoseconds())
}

func (s *TODScheduler) Trigger() (int, float64) {
	var epoch = s.epoch()

	var plaintext [16]byte
	binary.BigEndian.PutUint64(plaintext[8:], epoch)

	var keystream [16]byte
	s.cipher.Encrypt(keystream[:], plaintext[:])

	var randVal = binary.BigEndian.Uint32(keystream[:4])
	var channel = int(randVal) % s.plan.NumChannels
	return channel, s.plan.carrierHz(channel)
}

// Reseed is a no-op for TODScheduler: its state is wall-clock time, not
// an internal counter. It returns an error so callers relying on
// Reseed to resynchronize know the call had no effect.
func (s *TODScheduler) Reseed(x uint64) error {
	return fmt.Errorf("hop: TODScheduler has no seed to set; synchronization comes from clock agreement")
}
