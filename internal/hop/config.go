package hop

import (
	"encoding/hex"
	"fmt"
	"time"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Construct a Scheduler from the hopping configuration knobs
 *		(hopping.* in the YAML config), dispatching to whichever
 *		variant sync_mode names.
 *
 *------------------------------------------------------------------*/

// SyncMode selects a hop scheduler implementation.
type SyncMode string

const (
	SyncLFSR       SyncMode = "LFSR"
	SyncAESCounter SyncMode = "AES_COUNTER"
	SyncTOD        SyncMode = "TOD"
)

// Config holds every knob needed to build any of the three scheduler
// variants; fields irrelevant to the selected SyncMode are ignored.
type Config struct {
	SyncMode       SyncMode
	AESKeyHex      string // 64 hex chars = 32 bytes, for AES_COUNTER and TOD
	NumChannels    int
	CenterFreqHz   float64
	ChannelSpacing float64
	DwellMs        int
	LookaheadMs    int
	InitialSeed    uint64
}

// Build constructs the Scheduler named by cfg.SyncMode.
func Build(cfg Config) (Scheduler, error) {
	var plan = ChannelPlan{
		NumChannels:    cfg.NumChannels,
		CenterFreqHz:   cfg.CenterFreqHz,
		ChannelSpacing: cfg.ChannelSpacing,
	}

	switch cfg.SyncMode {
	case SyncLFSR:
		return NewLFSRScheduler(plan, uint16(cfg.InitialSeed))
	case SyncAESCounter:
		var key, err = decodeAESKey(cfg.AESKeyHex)
		if err != nil {
			return nil, err
		}
		return NewAESCounterScheduler(plan, key, cfg.InitialSeed)
	case SyncTOD:
		var key, err = decodeAESKey(cfg.AESKeyHex)
		if err != nil {
			return nil, err
		}
		return NewTODScheduler(plan, key, time.Duration(cfg.DwellMs)*time.Millisecond, time.Duration(cfg.LookaheadMs)*time.Millisecond)
	default:
		return nil, fmt.Errorf("hop: unknown sync_mode %q", cfg.SyncMode)
	}
}

func decodeAESKey(hexKey string) ([]byte, error) {
	var key, err = hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("hop: aes_key is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("hop: aes_key must be 32 bytes (AES-256), got %d", len(key))
	}
	return key, nil
}
