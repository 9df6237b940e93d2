package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mtmann213/opal-vanguard/internal/hop"
	"github.com/mtmann213/opal-vanguard/internal/link"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Load the link-layer and hop-scheduler configuration from a
 *		YAML file, mapping directly onto link.Config and
 *		hop.Config rather than growing a third parallel schema.
 *
 *------------------------------------------------------------------*/

// File is the top-level YAML document shape.
type File struct {
	LinkLayer LinkLayer `yaml:"link_layer"`
	DSSS      DSSS      `yaml:"dsss"`
	Hopping   Hopping   `yaml:"hopping"`
}

type LinkLayer struct {
	CRCType          string `yaml:"crc_type"`
	UseFEC           bool   `yaml:"use_fec"`
	FECVariant       string `yaml:"fec_variant"`
	UseInterleaving  bool   `yaml:"use_interleaving"`
	InterleaverRows  int    `yaml:"interleaver_rows"`
	UseWhitening     bool   `yaml:"use_whitening"`
	ScramblerMask    int    `yaml:"scrambler_mask"`
	ScramblerSeed    int    `yaml:"scrambler_seed"`
	UseManchester    bool   `yaml:"use_manchester"`
	UseNRZI          bool   `yaml:"use_nrzi"`
	MissionID        string `yaml:"mission_id"`
}

type DSSS struct {
	Enabled         bool  `yaml:"enabled"`
	SpreadingFactor int   `yaml:"spreading_factor"`
	ChippingCode    []int `yaml:"chipping_code"`
}

type Hopping struct {
	SyncMode       string  `yaml:"sync_mode"`
	AESKeyHex      string  `yaml:"aes_key"`
	NumChannels    int     `yaml:"num_channels"`
	CenterFreqHz   float64 `yaml:"center_freq_hz"`
	ChannelSpacing float64 `yaml:"channel_spacing"`
	DwellTimeMs    int     `yaml:"dwell_time_ms"`
	LookaheadMs    int     `yaml:"lookahead_ms"`
	InitialSeed    uint64  `yaml:"initial_seed"`
}

// Load reads and parses path into a File.
func Load(path string) (*File, error) {
	var raw, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return &f, nil
}

// LinkConfig builds a link.Config from the link_layer and dsss
// sections. mission_id "LINK-16" forces the RS(31,15) code regardless
// of fec_variant, per the reference's mission-based code selection.
func (f *File) LinkConfig() (link.Config, error) {
	var cfg = link.DefaultConfig()

	switch f.LinkLayer.CRCType {
	case "NONE":
		cfg.CRC = link.CRCNone
	case "CRC16", "":
		cfg.CRC = link.CRC16
	case "CRC32":
		cfg.CRC = link.CRC32
	default:
		return cfg, fmt.Errorf("config: unknown crc_type %q", f.LinkLayer.CRCType)
	}

	cfg.FEC = link.FECNone
	if f.LinkLayer.UseFEC {
		cfg.FEC = link.FECRS1511
		if f.LinkLayer.FECVariant == "RS_31_15" || f.LinkLayer.MissionID == "LINK-16" {
			cfg.FEC = link.FECRS3115
		}
	}

	cfg.Rows = 1
	if f.LinkLayer.UseInterleaving {
		cfg.Rows = f.LinkLayer.InterleaverRows
		if cfg.Rows == 0 {
			cfg.Rows = 8
		}
	}

	cfg.ScrambleOn = f.LinkLayer.UseWhitening
	if f.LinkLayer.ScramblerMask != 0 {
		cfg.ScramblerMask = byte(f.LinkLayer.ScramblerMask)
	}
	if f.LinkLayer.ScramblerSeed != 0 {
		cfg.ScramblerSeed = byte(f.LinkLayer.ScramblerSeed)
	}

	cfg.ManchesterOn = f.LinkLayer.UseManchester
	cfg.NRZIOn = f.LinkLayer.UseNRZI

	cfg.DSSSOn = f.DSSS.Enabled
	if f.DSSS.Enabled && len(f.DSSS.ChippingCode) > 0 {
		var code = make(link.DSSSCode, len(f.DSSS.ChippingCode))
		for i, v := range f.DSSS.ChippingCode {
			if v >= 0 {
				code[i] = 1
			} else {
				code[i] = -1
			}
		}
		cfg.DSSSCode = code
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// HopConfig builds an hop.Config from the hopping section.
func (f *File) HopConfig() hop.Config {
	return hop.Config{
		SyncMode:       hop.SyncMode(f.Hopping.SyncMode),
		AESKeyHex:      f.Hopping.AESKeyHex,
		NumChannels:    f.Hopping.NumChannels,
		CenterFreqHz:   f.Hopping.CenterFreqHz,
		ChannelSpacing: f.Hopping.ChannelSpacing,
		DwellMs:        f.Hopping.DwellTimeMs,
		LookaheadMs:    f.Hopping.LookaheadMs,
		InitialSeed:    f.Hopping.InitialSeed,
	}
}
