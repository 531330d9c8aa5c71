package cacik

import (
	"strings"
	"time"
)

// Raw step outcomes as reported by Cucumber engines. Engines are not
// consistent about case or surrounding spaces, so compare with IsStatus.
const (
	StatusPassed    = "passed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
	StatusPending   = "pending"
	StatusUndefined = "undefined"
	StatusAmbiguous = "ambiguous"
)

// Result holds the outcome of a single step or hook.
type Result struct {
	// Status is the raw engine outcome ("passed", "failed", ...).
	Status string

	// ErrorMessage is the failure message or stack trace. Empty when the
	// step did not fail.
	ErrorMessage string

	// Duration is the wall-clock execution time, zero when unknown.
	Duration time.Duration
}

// Is reports whether the raw status of r is status.
func (r Result) Is(status string) bool {
	return IsStatus(r.Status, status)
}

// IsStatus reports whether the raw engine outcome equals status, ignoring
// case and surrounding whitespace.
func IsStatus(raw, status string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), status)
}

// Match identifies the step definition or hook an engine matched.
type Match struct {
	// Location is the definition location ("steps.go:42") or, for
	// undefined steps, the feature location of the step.
	Location string
}
