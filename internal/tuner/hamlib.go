package tuner

import (
	"fmt"

	"github.com/xylo04/goHamlib"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Tuner backed by a real (or rigctld-emulated) radio via
 *		Hamlib, so the hop scheduler can retune hardware at each
 *		dwell boundary instead of only producing channel numbers.
 *
 *------------------------------------------------------------------*/

// HamlibTuner drives one rig handle opened against a Hamlib model and
// serial/network port.
type HamlibTuner struct {
	rig *goHamlib.Rig
	vfo goHamlib.VFO
}

// NewHamlibTuner opens the rig identified by model over port (a device
// path like /dev/ttyUSB0, or host:port for rigctld-backed network rigs).
func NewHamlibTuner(model int, port string) (*HamlibTuner, error) {
	var rig = &goHamlib.Rig{}

	if err := rig.Init(model); err != nil {
		return nil, fmt.Errorf("tuner: initializing hamlib rig model %d: %w", model, err)
	}
	rig.SetConf("rig_pathname", port)

	if err := rig.Open(); err != nil {
		return nil, fmt.Errorf("tuner: opening rig on %q: %w", port, err)
	}

	return &HamlibTuner{rig: rig, vfo: goHamlib.RIG_VFO_CURR}, nil
}

// SetFrequency retunes the rig's current VFO to hz.
func (t *HamlibTuner) SetFrequency(hz float64) error {
	if err := t.rig.SetFreq(t.vfo, hz); err != nil {
		return fmt.Errorf("tuner: setting frequency to %.0f Hz: %w", hz, err)
	}
	return nil
}

// Close releases the underlying rig handle.
func (t *HamlibTuner) Close() error {
	return t.rig.Close()
}
