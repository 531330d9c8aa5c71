package reporter

import rp "github.com/denizgursoy/cacik-rp/pkg/reportportal"

// Join folds next into current following PASSED < SKIPPED < FAILED.
// Equal statuses are unchanged, FAILED absorbs everything and any other
// mismatch yields SKIPPED.
func Join(current, next rp.Status) rp.Status {
	if current == next {
		return current
	}
	if current == rp.StatusFailed || next == rp.StatusFailed {
		return rp.StatusFailed
	}
	return rp.StatusSkipped
}
