package main

import (
	"fmt"

	"github.com/creack/pty"

	"github.com/mtmann213/opal-vanguard/internal/link"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Demonstrate the TX/RX pipeline over an actual bitstream
 *		transport: a pseudo-terminal pair stands in for the
 *		modulator/demodulator link, so the pipeline is exercised
 *		through a real byte-oriented channel rather than an
 *		in-memory slice.
 *
 *------------------------------------------------------------------*/

// runLoopback opens a pty pair, writes one TX-encoded frame to the
// master side, reads it back bit by bit from the slave side through an
// RX pipeline, and reports the resulting diagnostics.
func runLoopback(cfg link.Config, payload []byte, msgType byte) (*link.ReceivedFrame, error) {
	var ptmx, pts, err = pty.Open()
	if err != nil {
		return nil, fmt.Errorf("loopback: opening pty pair: %w", err)
	}
	defer ptmx.Close()
	defer pts.Close()

	var tx, txErr = link.NewTransmitter(cfg)
	if txErr != nil {
		return nil, fmt.Errorf("loopback: constructing transmitter: %w", txErr)
	}

	var wire, subErr = tx.Submit(payload, msgType)
	if subErr != nil {
		return nil, fmt.Errorf("loopback: transmitting: %w", subErr)
	}

	go func() {
		ptmx.Write(wire)
	}()

	var rx, rxErr = link.NewReceiver(cfg)
	if rxErr != nil {
		return nil, fmt.Errorf("loopback: constructing receiver: %w", rxErr)
	}

	var buf = make([]byte, len(wire))
	var total int
	for total < len(buf) {
		var n, readErr = pts.Read(buf[total:])
		if readErr != nil {
			return nil, fmt.Errorf("loopback: reading pty: %w", readErr)
		}
		total += n
	}

	for _, b := range buf[:total] {
		for bitPos := 7; bitPos >= 0; bitPos-- {
			var bit = (b >> uint(bitPos)) & 1
			if out := rx.PushBit(bit); out != nil && out.Diagnostics.CRCOK {
				return out, nil
			}
		}
	}

	return nil, fmt.Errorf("loopback: no frame recovered from %d bytes", total)
}
