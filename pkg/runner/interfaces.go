//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=runner
package runner

import messages "github.com/cucumber/messages/go/v21"

type (
	// Executor runs the pickles of one document at a time between Begin and
	// End.
	Executor interface {
		Begin()
		Execute(document *messages.GherkinDocument, pickles []*messages.Pickle) error
		End()
	}
)
