//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=app
package app

import (
	"context"
	"io"

	"github.com/denizgursoy/cacik-rp/internal/generator"
	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	"github.com/denizgursoy/cacik-rp/pkg/reporter"
)

type (
	ListenerFactory interface {
		NewListener(cfg *cacik.Config, out io.Writer) (reporter.Listener, error)
	}
	SuiteGenerator interface {
		Generate(ctx context.Context, opts generator.Options) (string, error)
	}
)
