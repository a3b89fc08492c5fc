package logger

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognised names.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity is the display severity of a log statement. Severities do not
// filter output: an enabled logger emits at every severity.
type Severity int

const (
	// DebugSeverity is written to stdout.
	DebugSeverity Severity = iota
	// InfoSeverity is written to stdout.
	InfoSeverity
	// WarnSeverity is written to stderr.
	WarnSeverity
	// ErrorSeverity is written to stderr.
	ErrorSeverity
)

// Severities returns every severity in ascending order.
func Severities() []Severity {
	return []Severity{DebugSeverity, InfoSeverity, WarnSeverity, ErrorSeverity}
}

// String returns the upper-case label used in output.
func (s Severity) String() string {
	switch s {
	case DebugSeverity:
		return "DEBUG"
	case InfoSeverity:
		return "INFO"
	case WarnSeverity:
		return "WARN"
	case ErrorSeverity:
		return "ERROR"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

func (s Severity) valid() bool {
	return s >= DebugSeverity && s <= ErrorSeverity
}

// ParseSeverity parses a severity name, ignoring case.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugSeverity, nil
	case "info":
		return InfoSeverity, nil
	case "warn", "warning":
		return WarnSeverity, nil
	case "error":
		return ErrorSeverity, nil
	}
	return InfoSeverity, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}

// journaldPrefix returns the journald priority prefix for s.
func journaldPrefix(s Severity) string {
	switch s {
	case DebugSeverity:
		return "<7>"
	case InfoSeverity:
		return "<6>"
	case WarnSeverity:
		return "<4>"
	case ErrorSeverity:
		return "<3>"
	default:
		return ""
	}
}
