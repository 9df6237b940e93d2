package link

import "fmt"

/*------------------------------------------------------------------
 *
 * Purpose:	Frame assembler (C2): wraps an application payload with
 *		its header, FEC body, and checksum, padded out to an
 *		interleaver block when interleaving is active.
 *
 *------------------------------------------------------------------*/

const (
	maxPayloadLen = 128
	headerLen     = 3
)

// Frame holds the three header fields that open every logical,
// pre-transform byte block (header || FEC body || CRC).
type Frame struct {
	MessageType byte
	Sequence    byte
	PayloadLen  byte
}

// assembleFrame builds the header||body||CRC byte block for payload,
// padded to the interleaver block size when cfg enables interleaving.
func assembleFrame(cfg Config, payload []byte, msgType, seq byte) ([]byte, error) {
	if len(payload) > maxPayloadLen {
		return nil, fmt.Errorf("link: payload length %d exceeds maximum %d", len(payload), maxPayloadLen)
	}

	var body = fecEncode(cfg.FEC, payload)

	var out = make([]byte, 0, headerLen+len(body)+cfg.CRC.Len())
	out = append(out, msgType, seq, byte(len(payload)))
	out = append(out, body...)
	out = appendCRC(cfg.CRC, out)

	if cfg.interleaved() {
		out = zeroPadTo(out, interleaverBlockSize(cfg))
	}
	return out, nil
}

// interleaverBlockSize returns the fixed block length the interleaved
// regime pads every frame to, per FEC variant: 256 bytes for RS(31,15)
// (the higher-hardening code), 120 bytes otherwise.
func interleaverBlockSize(cfg Config) int {
	if cfg.FEC == FECRS3115 {
		return 256
	}
	return 120
}

// parseHeader reads (type, seq, payloadLen) from the front of a
// recovered byte block and reports whether it looks plausible.
func parseHeader(data []byte) (msgType, seq, payloadLen byte, ok bool) {
	if len(data) < headerLen {
		return 0, 0, 0, false
	}
	msgType, seq, payloadLen = data[0], data[1], data[2]
	if payloadLen > maxPayloadLen {
		return msgType, seq, payloadLen, false
	}
	return msgType, seq, payloadLen, true
}
