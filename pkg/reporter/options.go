package reporter

import (
	"context"
	"time"

	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	rp "github.com/denizgursoy/cacik-rp/pkg/reportportal"
)

// LaunchSettings describe the launch opened at the start of a run.
type LaunchSettings struct {
	Name        string
	Description string
	Tags        []string
	Mode        rp.Mode
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLogger sets the logger for local warnings and backend failures.
func WithLogger(logger cacik.Logger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// WithFlavor sets the hierarchy layout.
func WithFlavor(flavor Flavor) Option {
	return func(r *Reporter) {
		r.flavor = flavor
	}
}

// WithContext sets the context passed to every backend call.
func WithContext(ctx context.Context) Option {
	return func(r *Reporter) {
		r.ctx = ctx
	}
}

// WithClock replaces time.Now for start, end and log timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		r.clock = now
	}
}

// WithLaunch sets the launch name, description, tags and mode.
func WithLaunch(settings LaunchSettings) Option {
	return func(r *Reporter) {
		r.launch = settings
	}
}
