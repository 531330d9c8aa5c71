package suite

import (
	"context"

	"github.com/cucumber/godog"
)

func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Step(`^an open invoice$`, anOpenInvoice)
}

func initializePayments(sc *godog.ScenarioContext) {
	sc.Step(`^the customer pays it$`, func() error { return nil })
}

func InitializeSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {})
}

func anOpenInvoice(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

func notAnInitializer(ctx *godog.ScenarioContext, name string) {}

type steps struct{}

func (s *steps) Initialize(ctx *godog.ScenarioContext) {}
