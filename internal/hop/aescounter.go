package hop

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"sync"
)

/*------------------------------------------------------------------
 *
 * Purpose:	AES-256 counter-mode keystream hop sequence generator.
 *
 * Description:	Each trigger encrypts a 16-byte big-endian block (0,
 *		counter) under AES-256 in ECB mode and takes the first 4
 *		keystream bytes, big-endian, mod NumChannels. Go's standard
 *		library provides the AES block cipher itself
 *		(crypto/aes) but, deliberately, no ECB cipher.Mode --
 *		ECB is unauthenticated and leaks block-repetition patterns,
 *		so the standard library only ships CBC/CTR/GCM wrappers.
 *		Single-block ECB-of-a-counter here is exactly CTR-mode
 *		keystream generation with one block per trigger, so the
 *		cipher.Block.Encrypt call is applied directly rather than
 *		importing a third-party ECB shim for a single block.
 *
 *------------------------------------------------------------------*/

// AESCounterScheduler is a Scheduler backed by an AES-256 counter-mode
// keystream. Reseed sets the counter value, not the key.
type AESCounterScheduler struct {
	plan    ChannelPlan
	cipher  cipher.Block
	counter uint64
	mu      sync.Mutex
}

// NewAESCounterScheduler returns an AESCounterScheduler keyed by key (32
// bytes for AES-256), starting the counter at initialCounter.
func NewAESCounterScheduler(plan ChannelPlan, key []byte, initialCounter uint64) (*AESCounterScheduler, error) {
	if plan.NumChannels <= 0 {
		return nil, fmt.Errorf("hop: NumChannels must be > 0, got %d", plan.NumChannels)
	}
	var block, err = aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("hop: initializing AES cipher: %w", err)
	}
	return &AESCounterScheduler{plan: plan, cipher: block, counter: initialCounter}, nil
}

func (s *AESCounterScheduler) Trigger() (int, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var channel = s.channelForCounter(s.counter)
	s.counter++
	return channel, s.plan.carrierHz(channel)
}

func (s *AESCounterScheduler) channelForCounter(counter uint64) int {
	var plaintext [16]byte
	binary.BigEndian.PutUint64(plaintext[8:], counter)

	var keystream [16]byte
	s.cipher.Encrypt(keystream[:], plaintext[:])

	var randVal = binary.BigEndian.Uint32(keystream[:4])
	return int(randVal) % s.plan.NumChannels
}

func (s *AESCounterScheduler) Reseed(x uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter = x
	return nil
}
