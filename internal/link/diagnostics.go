package link

/*------------------------------------------------------------------
 *
 * Purpose:	Optional CSV sink for received-frame diagnostics, with
 *		daily file rotation. Separate from the hot receive path:
 *		PushBit never blocks on this, callers feed it the
 *		ReceivedFrame records they want archived.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DiagnosticsSink appends one CSV row per received frame to a daily
// log file. Use for offline review of link quality over a session.
type DiagnosticsSink struct {
	dir       string
	pattern   *strftime.Strftime
	openName  string
	file      *os.File
	writer    *csv.Writer
}

// NewDiagnosticsSink creates a sink that writes daily files named
// link-YYYY-MM-DD.csv under dir. dir is created if it does not exist.
func NewDiagnosticsSink(dir string) (*DiagnosticsSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("link: creating diagnostics directory: %w", err)
	}

	var pattern, err = strftime.New("link-%Y-%m-%d.csv")
	if err != nil {
		return nil, fmt.Errorf("link: compiling diagnostics filename pattern: %w", err)
	}

	return &DiagnosticsSink{dir: dir, pattern: pattern}, nil
}

// Write appends one row for rf, rotating to a new day's file as needed.
func (s *DiagnosticsSink) Write(rf *ReceivedFrame) error {
	var name = s.pattern.FormatString(time.Now().UTC())

	if name != s.openName {
		if s.file != nil {
			s.writer.Flush()
			s.file.Close()
		}

		var fullPath = filepath.Join(s.dir, name)
		var exists = fileExists(fullPath)

		var f, err = os.OpenFile(fullPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("link: opening diagnostics file %q: %w", fullPath, err)
		}

		s.file = f
		s.writer = csv.NewWriter(f)
		s.openName = name

		if !exists {
			s.writer.Write([]string{"timestamp", "crc_ok", "polarity_inverted", "message_type", "sequence", "fec_corrections", "avg_confidence_pct", "seq_gap"})
		}
	}

	var d = rf.Diagnostics
	var row = []string{
		time.Now().UTC().Format(time.RFC3339),
		strconv.FormatBool(d.CRCOK),
		strconv.FormatBool(d.PolarityInverted),
		strconv.Itoa(int(d.MessageType)),
		strconv.Itoa(int(d.Sequence)),
		strconv.Itoa(d.FECCorrections),
		strconv.FormatFloat(d.AvgConfidencePct, 'f', 2, 64),
		strconv.Itoa(d.SeqGap),
	}
	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("link: writing diagnostics row: %w", err)
	}
	s.writer.Flush()
	return s.writer.Error()
}

// Close flushes and closes the currently open diagnostics file, if any.
func (s *DiagnosticsSink) Close() error {
	if s.file == nil {
		return nil
	}
	s.writer.Flush()
	return s.file.Close()
}

func fileExists(path string) bool {
	var _, err = os.Stat(path)
	return err == nil
}
