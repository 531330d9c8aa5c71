//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=reporter
package reporter

import "github.com/denizgursoy/cacik-rp/pkg/cacik"

type (
	// Listener receives the Cucumber lifecycle of a run, one event at a time.
	Listener interface {
		RunStarted()
		URI(uri string)
		Feature(feature cacik.Feature)
		ScenarioOutline(outline cacik.Scenario)
		Examples(examples cacik.Examples)
		StartOfScenarioLifeCycle(scenario cacik.Scenario)
		Background(background cacik.Background)
		Scenario(scenario cacik.Scenario)
		Step(step cacik.Step)
		Match(match cacik.Match)
		Result(result cacik.Result)
		HooksStarted(isBefore bool)
		HooksFinished(isBefore bool)
		HookFinished(match cacik.Match, result cacik.Result, isBefore bool)
		Embedding(mimeType string, data []byte)
		Write(text string)
		EndOfScenarioLifeCycle(scenario cacik.Scenario)
		FeatureEnd()
		RunEnded()
	}
)
