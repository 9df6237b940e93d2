package link

import (
	"os"

	"github.com/charmbracelet/log"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Structured logging for the link package. Replaces the
 *		reference's colored-text diagnostic printing with a
 *		charmbracelet/log logger; callers may swap it out (e.g.
 *		to route through a shared application logger) via
 *		SetLogger.
 *
 *------------------------------------------------------------------*/

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "link",
})

// SetLogger replaces the package logger, e.g. with one sharing an
// application's destination and level.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}
