package main

import (
	"fmt"

	"github.com/pkg/term"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Interactive raw-mode console for driving the hop
 *		scheduler by hand: each keypress triggers one dwell, so a
 *		human can watch channel/frequency selection happen live
 *		without waiting on a real dwell clock.
 *
 *------------------------------------------------------------------*/

// runConsole opens the controlling terminal in raw mode and calls
// onTrigger once per keypress until 'q' is pressed.
func runConsole(devicename string, onTrigger func()) error {
	var t, err = term.Open(devicename, term.RawMode)
	if err != nil {
		return fmt.Errorf("console: opening %q in raw mode: %w", devicename, err)
	}
	defer t.Restore()
	defer t.Close()

	var buf = make([]byte, 1)
	for {
		var n, readErr = t.Read(buf)
		if readErr != nil {
			return fmt.Errorf("console: reading keypress: %w", readErr)
		}
		if n == 0 {
			continue
		}
		if buf[0] == 'q' {
			return nil
		}
		onTrigger()
	}
}
