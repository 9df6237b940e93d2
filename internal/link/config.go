package link

import "fmt"

/*------------------------------------------------------------------
 *
 * Purpose:	Link-layer configuration: the knob set that tx.go and
 *		rx.go both read to stay in lockstep. Validated once, at
 *		construction, so the hot path never has to guard against
 *		a malformed setting.
 *
 *------------------------------------------------------------------*/

// Config bundles every link-layer parameter a TX/RX pair must agree on.
type Config struct {
	CRC   CRCType
	FEC   FECVariant
	Rows  int // interleaver row count; 0 or 1 disables interleaving

	ScramblerMask byte
	ScramblerSeed byte
	ScrambleOn    bool

	NRZIOn  bool
	ManchesterOn bool

	DSSSOn   bool
	DSSSCode DSSSCode

	Preamble  byte // repeated preamble byte, typically 0xAA
	PreambleLen int
	Syncword  uint32
}

// DefaultConfig returns the reference parameter set: CRC-16, RS(15,11)
// FEC, no interleaving, scrambling on with the default mask/seed, no
// line coding, no spreading.
func DefaultConfig() Config {
	return Config{
		CRC:           CRC16,
		FEC:           FECRS1511,
		Rows:          1,
		ScramblerMask: defaultScramblerMask,
		ScramblerSeed: defaultScramblerSeed,
		ScrambleOn:    true,
		NRZIOn:        false,
		ManchesterOn:  false,
		DSSSOn:        false,
		DSSSCode:      DefaultDSSSCode,
		Preamble:      0xAA,
		PreambleLen:   8,
		Syncword:      0x3D4C5B6A,
	}
}

// Validate rejects configurations that tx.go/rx.go cannot actually run,
// rather than letting them fail confusingly deep in the pipeline.
func (c Config) Validate() error {
	if c.Rows < 0 {
		return fmt.Errorf("link: interleaver rows must be >= 0, got %d", c.Rows)
	}
	if c.DSSSOn && len(c.DSSSCode) == 0 {
		return fmt.Errorf("link: DSSS enabled with an empty spreading code")
	}
	if c.PreambleLen < 0 {
		return fmt.Errorf("link: preamble length must be >= 0, got %d", c.PreambleLen)
	}
	switch c.FEC {
	case FECNone, FECRS1511, FECRS3115:
	default:
		return fmt.Errorf("link: unknown FEC variant %d", c.FEC)
	}
	switch c.CRC {
	case CRCNone, CRC16, CRC32:
	default:
		return fmt.Errorf("link: unknown CRC type %d", c.CRC)
	}
	return nil
}

// interleaved reports whether Rows actually engages the interleaver;
// Rows of 0 or 1 is a degenerate (no-op) matrix.
func (c Config) interleaved() bool {
	return c.Rows > 1
}
