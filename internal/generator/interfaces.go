//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=generator
package generator

import "context"

type (
	InitializerScanner interface {
		ScanInitializers(context.Context, string) (*Output, error)
	}
)
