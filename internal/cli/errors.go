package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/wordfreq/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// reportedError marks an error whose diagnostic was already written.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return reportedError{err: err}
}

func isReported(err error) bool {
	var re reportedError
	return errors.As(err, &re)
}

func diagnostic(w io.Writer, msg string) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("9"))
	fmt.Fprintln(w, style.Render(msg))
}

func missingFileMessage(path string) string {
	return fmt.Sprintf("File: \"%s\" does not exist.", path)
}

func reportRejectedInput(w io.Writer, r domain.Report) {
	if r.Input.Fallback {
		diagnostic(w, missingFileMessage(r.Input.Rejected))
	}
}

// reportLocateError writes the diagnostic for a missing default input and
// returns err marked as reported. Other errors are returned unchanged.
func reportLocateError(w io.Writer, err error) error {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Kind == domain.KindNotFound {
		diagnostic(w, missingFileMessage(oe.Path))
		return reported(err)
	}
	return err
}

func reportReadError(w io.Writer, r domain.Report) {
	if r.ReadErr != nil {
		diagnostic(w, causeMessage(r.ReadErr))
	}
}

// causeMessage strips the operation context from err.
func causeMessage(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Err != nil {
		return oe.Err.Error()
	}
	return err.Error()
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "config.") {
				return "Config file not found: " + oe.Path
			}
			return "File not found: " + oe.Path

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			return "Invalid config " + base + ": " + causeMessage(err)

		case domain.KindRead:
			return "Could not read " + oe.Path + ": " + causeMessage(err)
		}
	}

	return err.Error()
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
