package reporter

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	rp "github.com/denizgursoy/cacik-rp/pkg/reportportal"
)

// NewService builds the backend selected by cfg. Console output goes to out.
func NewService(cfg *cacik.Config, out io.Writer) (rp.Service, error) {
	switch cfg.Backend {
	case cacik.BackendConsole:
		return rp.NewConsoleService(out, !cfg.NoColor), nil
	case cacik.BackendHTTP:
		return rp.NewClient(rp.ClientConfig{
			Endpoint: cfg.Endpoint,
			Project:  cfg.Project,
			APIKey:   cfg.APIKey,
		}, &http.Client{Timeout: cfg.Timeout}), nil
	default:
		return nil, fmt.Errorf("%w: %q", cacik.ErrInvalidBackend, cfg.Backend)
	}
}

// NewFromConfig validates cfg and builds a Reporter with the configured
// backend, flavor, launch settings and logger. Options are applied last.
func NewFromConfig(cfg *cacik.Config, out io.Writer, opts ...Option) (*Reporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reportportal config: %w", err)
	}

	flavor, err := FlavorByName(cfg.Flavor)
	if err != nil {
		return nil, err
	}

	service, err := NewService(cfg, out)
	if err != nil {
		return nil, err
	}

	var logger cacik.Logger = slog.Default()
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	base := []Option{
		WithFlavor(flavor),
		WithLogger(logger),
		WithLaunch(LaunchSettings{
			Name:        cfg.Launch,
			Description: cfg.Description,
			Tags:        cfg.Tags,
			Mode:        rp.Mode(cfg.Mode),
		}),
	}

	return New(service, append(base, opts...)...), nil
}
