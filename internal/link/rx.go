package link

/*------------------------------------------------------------------
 *
 * Purpose:	Receive pipeline (C4): a two-state machine (SEARCH,
 *		COLLECT) that consumes one demodulated hard bit at a time,
 *		finds the syncword (with polarity detection), despreads,
 *		undoes line coding and scrambling, and delivers payloads
 *		with per-frame diagnostics.
 *
 *------------------------------------------------------------------*/

type rxState int

const (
	rxSearch rxState = iota
	rxCollect
)

// Diagnostics is the per-frame telemetry record the receiver emits
// alongside (or instead of) a delivered payload.
type Diagnostics struct {
	CRCOK               bool
	PolarityInverted    bool
	MessageType         byte
	Sequence            byte
	FECCorrections      int
	AvgConfidencePct     float64
	SeqGap              int
}

// ReceivedFrame is what PushBit returns on a fully decoded frame.
type ReceivedFrame struct {
	MessageType byte
	Sequence    byte
	Payload     []byte
	Diagnostics Diagnostics
}

// Receiver holds all per-stream RX state: the sync search register and
// everything accumulated for the frame currently in COLLECT.
type Receiver struct {
	cfg Config

	state    rxState
	shiftReg uint32

	polarity byte // 0 or 1; 1 means the channel is inverted

	recovered []byte // line bits since the last sync match

	chipWindow []int8
	corrSum    float64
	windowCnt  int

	activePktLen int // -1 until the header peek (non-interleaved path) resolves it

	haveLastSeq bool
	lastSeq     byte
}

// NewReceiver validates cfg and returns a Receiver idling in SEARCH.
func NewReceiver(cfg Config) (*Receiver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Receiver{cfg: cfg, state: rxSearch, activePktLen: -1}, nil
}

// PushBit feeds one demodulated hard bit (0 or 1) into the receiver. It
// returns a *ReceivedFrame whenever a complete frame resolves (whether
// or not its CRC passed); callers inspect Diagnostics.CRCOK before
// trusting Payload.
func (r *Receiver) PushBit(bit byte) *ReceivedFrame {
	r.shiftReg = (r.shiftReg << 1) | uint32(bit&1)

	if r.shiftReg == r.cfg.Syncword || r.shiftReg == ^r.cfg.Syncword {
		var inverted byte
		if r.shiftReg == ^r.cfg.Syncword {
			inverted = 1
		}
		r.enterCollect(inverted)
		return nil
	}

	if r.state != rxCollect {
		return nil
	}

	r.consume(bit)

	var targetBits, ready = r.targetBits()
	if !ready {
		return nil
	}
	if len(r.recovered) < targetBits {
		return nil
	}

	var out = r.finishFrame(targetBits)
	r.reset()
	return out
}

func (r *Receiver) enterCollect(inverted byte) {
	r.state = rxCollect
	r.polarity = inverted
	r.recovered = r.recovered[:0]
	r.chipWindow = r.chipWindow[:0]
	r.corrSum = 0
	r.windowCnt = 0
	r.activePktLen = -1
}

func (r *Receiver) reset() {
	r.state = rxSearch
	r.shiftReg = 0
	r.recovered = nil
	r.chipWindow = nil
	r.corrSum = 0
	r.windowCnt = 0
	r.activePktLen = -1
}

// consume pushes one raw demodulated bit through despreading (if
// enabled) and appends the resulting line bit(s) to recovered.
func (r *Receiver) consume(bit byte) {
	if !r.cfg.DSSSOn {
		r.recovered = append(r.recovered, bit^r.polarity)
		return
	}

	var chip int8 = -1
	if bit != 0 {
		chip = 1
	}
	if r.polarity == 1 {
		chip = -chip
	}
	r.chipWindow = append(r.chipWindow, chip)

	var code = r.cfg.DSSSCode
	if len(r.chipWindow) < len(code) {
		return
	}

	var corr int
	for i, c := range code {
		corr += int(r.chipWindow[i]) * int(c)
	}
	r.chipWindow = r.chipWindow[:0]
	r.windowCnt++
	r.corrSum += absFloat(float64(corr))

	var out byte
	if corr > 0 {
		out = 1
	}
	r.recovered = append(r.recovered, out)
}

func (r *Receiver) manchesterMultiplier() int {
	if r.cfg.ManchesterOn {
		return 2
	}
	return 1
}

// targetBits reports how many recovered line bits make up the current
// frame, and whether that count is known yet. In the interleaved
// regime it's fixed by configuration; otherwise it depends on a header
// peek once enough bits have arrived.
func (r *Receiver) targetBits() (int, bool) {
	if r.cfg.interleaved() {
		return interleaverBlockSize(r.cfg) * 8 * r.manchesterMultiplier(), true
	}

	if r.activePktLen >= 0 {
		return r.activePktLen * 8 * r.manchesterMultiplier(), true
	}

	var headerBits = headerLen * 8 * r.manchesterMultiplier()
	if len(r.recovered) < headerBits {
		return 0, false
	}

	var headerBytes = r.decodeLineBits(r.recovered[:headerBits])
	var _, _, payloadLen, ok = parseHeader(headerBytes)
	if !ok {
		logger.Debug("header peek implausible, returning to search", "payload_len", payloadLen)
		r.reset()
		return 0, false
	}

	var fecLen = fecBodyLen(r.cfg.FEC, int(payloadLen))
	r.activePktLen = headerLen + fecLen + r.cfg.CRC.Len()
	return r.activePktLen * 8 * r.manchesterMultiplier(), true
}

// decodeLineBits runs Manchester decode, NRZ-I decode, and descramble
// (in that order) over a front-aligned slice of line bits, using fresh
// throwaway coder instances so this can be used for the non-mutating
// header peek as well as the final frame decode.
func (r *Receiver) decodeLineBits(bits []byte) []byte {
	if r.cfg.ManchesterOn {
		bits = ManchesterDecode(bits)
	}
	if r.cfg.NRZIOn {
		// consume() already un-inverts for polarity (rx.go's bit/chip
		// negation), so the recovered bits here are already normal
		// polarity; NRZ-I decode always starts from a prior of 0,
		// matching depacketizer.py.
		var nrzi = NewNRZI(0)
		bits = nrzi.Decode(bits)
	}

	var packed = bitSliceToBytes(bits)

	if r.cfg.ScrambleOn {
		var scr = NewScrambler(r.cfg.ScramblerMask, r.cfg.ScramblerSeed)
		packed = scr.Process(packed)
	}
	return packed
}

func (r *Receiver) finishFrame(targetBits int) *ReceivedFrame {
	var confidence = 100.0
	if r.cfg.DSSSOn && r.windowCnt > 0 {
		confidence = r.corrSum / (float64(r.windowCnt) * float64(len(r.cfg.DSSSCode))) * 100.0
	}

	var bytesOut = r.decodeLineBits(r.recovered[:targetBits])

	if r.cfg.interleaved() {
		bytesOut = Deinterleave(r.cfg.Rows, bytesOut, len(bytesOut))
	}

	var msgType, seq, payloadLen, ok = parseHeader(bytesOut)
	if !ok {
		logger.Debug("implausible header after full collect, dropping frame")
		return &ReceivedFrame{Diagnostics: Diagnostics{CRCOK: false, PolarityInverted: r.polarity == 1, AvgConfidencePct: confidence}}
	}

	var fecLen = fecBodyLen(r.cfg.FEC, int(payloadLen))
	var frameLen = headerLen + fecLen + r.cfg.CRC.Len()
	if frameLen > len(bytesOut) {
		logger.Debug("header claims a frame length past the collected block", "frame_len", frameLen, "block_len", len(bytesOut))
		return &ReceivedFrame{Diagnostics: Diagnostics{CRCOK: false, PolarityInverted: r.polarity == 1, MessageType: msgType, Sequence: seq, AvgConfidencePct: confidence}}
	}
	var frame = bytesOut[:frameLen]

	if !verifyCRC(r.cfg.CRC, frame) {
		logger.Debug("crc mismatch, dropping frame", "sequence", seq)
		return &ReceivedFrame{Diagnostics: Diagnostics{CRCOK: false, PolarityInverted: r.polarity == 1, MessageType: msgType, Sequence: seq, AvgConfidencePct: confidence}}
	}

	var body = frame[headerLen : headerLen+fecLen]
	var payload, corrections = fecDecode(r.cfg.FEC, body, int(payloadLen))

	var gap = 0
	if r.haveLastSeq {
		gap = int(seq-r.lastSeq) - 1
		if gap < 0 {
			gap += 256
		}
	}
	r.haveLastSeq = true
	r.lastSeq = seq

	return &ReceivedFrame{
		MessageType: msgType,
		Sequence:    seq,
		Payload:     payload,
		Diagnostics: Diagnostics{
			CRCOK:            true,
			PolarityInverted: r.polarity == 1,
			MessageType:      msgType,
			Sequence:         seq,
			FECCorrections:   corrections,
			AvgConfidencePct: confidence,
			SeqGap:           gap,
		},
	}
}
