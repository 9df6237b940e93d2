package tuner

/*------------------------------------------------------------------
 *
 * Purpose:	The collaborator interface the hop scheduler's trigger
 *		loop drives: "move the radio to this carrier frequency
 *		before the next dwell begins." Kept narrow so a test
 *		double, or a future non-Hamlib backend, can stand in for
 *		real hardware.
 *
 *------------------------------------------------------------------*/

// Tuner retunes a radio to a carrier frequency in Hz.
type Tuner interface {
	SetFrequency(hz float64) error
	Close() error
}

// NullTuner discards every SetFrequency call; useful for loopback
// demos and tests where no radio is attached.
type NullTuner struct{}

func (NullTuner) SetFrequency(hz float64) error { return nil }
func (NullTuner) Close() error                  { return nil }
