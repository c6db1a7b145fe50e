// Package diag implements the severity/detail/diagnostic data model: tagged
// error values carrying a severity, a stable code, an optional cause chain,
// an optional captured stack, and (for parse diagnostics) source quotes.
package diag

import (
	"fmt"
	"strings"
)

// Severity is a totally ordered classification of a diagnostic's gravity.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Failure
	Critical
)

// IsError reports whether s is at least Error.
func (s Severity) IsError() bool { return s >= Error }

// IsRecoverable reports whether s is below Failure.
func (s Severity) IsRecoverable() bool { return s < Failure }

// String renders the word used in the diagnostic's display line. Error and
// Failure both render as "error": Failure is a severity distinction for
// recoverability, not a distinct word in prose.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error, Failure:
		return "error"
	case Critical:
		return "critical error"
	default:
		return "unknown"
	}
}

// CodeChar returns the single-letter wire code for s.
func (s Severity) CodeChar() byte {
	switch s {
	case Info:
		return 'I'
	case Warning:
		return 'W'
	case Error:
		return 'E'
	case Failure:
		return 'F'
	case Critical:
		return 'C'
	default:
		return '?'
	}
}

// ParseSeverity parses a severity from its full name or single-letter code,
// case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "info", "i":
		return Info, nil
	case "warning", "w":
		return Warning, nil
	case "error", "e":
		return Error, nil
	case "failure", "f":
		return Failure, nil
	case "critical", "c":
		return Critical, nil
	default:
		return 0, fmt.Errorf("diag: unrecognised severity %q", s)
	}
}

// FormatCode renders "<letter><code:04>", e.g. "E0101".
func FormatCode(sev Severity, code uint32) string {
	return fmt.Sprintf("%c%04d", sev.CodeChar(), code)
}
