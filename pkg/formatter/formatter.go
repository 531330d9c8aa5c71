// Package formatter plugs the lifecycle reporter into godog as a formatter.
//
// godog reports pickles, not Gherkin blocks, so the formatter indexes every
// feature document and declares the background and scenario steps of each
// pickle before its first step runs. godog has no hook or pickle-end
// callbacks: a scenario closes when the next pickle, feature or the summary
// arrives.
//
// Run godog with Concurrency 1. The formatter serializes its callbacks but a
// single Listener cannot follow interleaved scenarios.
package formatter

import (
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	"github.com/denizgursoy/cacik-rp/pkg/reporter"
)

const (
	// FormatName is the name the formatter is registered under.
	FormatName        = "reportportal"
	formatDescription = "Reports the run to ReportPortal."
)

// Formatter is a godog formatter forwarding the run to a reporter.Listener.
type Formatter struct {
	mu       sync.Mutex
	listener reporter.Listener
	logger   cacik.Logger

	uri         string
	index       *documentIndex
	featureOpen bool
	current     *cacik.Scenario
	outlines    map[string]bool
	blocks      map[string]bool
}

var _ godog.Formatter = (*Formatter)(nil)

// Option configures a Formatter.
type Option func(*Formatter)

// WithLogger sets the logger for events the formatter cannot map.
func WithLogger(logger cacik.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// New creates a Formatter forwarding to listener.
func New(listener reporter.Listener, opts ...Option) *Formatter {
	f := &Formatter{
		listener: listener,
		logger:   cacik.NoopLogger(),
		index:    indexDocument(nil),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var (
	registerOnce sync.Once
	registered   atomic.Pointer[Formatter]
)

// Register creates a Formatter and makes it the one godog uses for
// FormatName. godog keeps the first formatter registered under a name, so
// the name is registered once and later calls replace the Formatter behind
// it. The returned Formatter accepts attachments from step code.
func Register(listener reporter.Listener, opts ...Option) *Formatter {
	f := New(listener, opts...)
	registered.Store(f)
	registerOnce.Do(func() {
		godog.Format(FormatName, formatDescription, func(string, io.Writer) godog.Formatter {
			return registered.Load()
		})
	})
	return f
}

// Func returns a godog.FormatterFunc handing out f. The suite name and
// output writer are not used.
func (f *Formatter) Func() godog.FormatterFunc {
	return func(string, io.Writer) godog.Formatter {
		return f
	}
}

// TestRunStarted opens the launch.
func (f *Formatter) TestRunStarted() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listener.RunStarted()
}

// Feature closes the previous feature and opens the one in doc.
func (f *Formatter) Feature(doc *messages.GherkinDocument, uri string, _ []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closeScenario()
	f.closeFeature()

	f.uri = uri
	f.index = indexDocument(doc)
	f.outlines = make(map[string]bool)
	f.blocks = make(map[string]bool)

	if doc == nil || doc.Feature == nil {
		f.logger.Warn("feature document without a feature", "uri", uri)
		return
	}

	f.listener.URI(uri)
	f.listener.Feature(cacik.FeatureFromMessage(doc.Feature))
	f.featureOpen = true
}

// Pickle closes the previous scenario and declares the next one with all
// of its steps.
func (f *Formatter) Pickle(pickle *messages.Pickle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closeScenario()

	scenario := f.scenarioOf(pickle)
	f.listener.StartOfScenarioLifeCycle(scenario)
	f.current = &scenario

	var background *messages.Background
	ownSteps := false
	for _, ps := range pickle.Steps {
		step, bg := f.index.step(ps)
		if bg != nil && !ownSteps {
			if bg != background {
				f.listener.Background(cacik.BackgroundFromMessage(bg))
				background = bg
			}
		} else if !ownSteps {
			f.listener.Scenario(scenario)
			ownSteps = true
		}
		f.listener.Step(stepOf(ps, step))
	}
	if !ownSteps {
		f.listener.Scenario(scenario)
	}
}

// Defined announces the step about to run.
func (f *Formatter) Defined(_ *messages.Pickle, step *messages.PickleStep, def *godog.StepDefinition) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == nil {
		f.logger.Warn("step defined outside a pickle", "step", step.Text)
		return
	}
	f.listener.Match(cacik.Match{Location: f.location(step, def)})
}

// Passed reports a passed step.
func (f *Formatter) Passed(_ *messages.Pickle, _ *messages.PickleStep, _ *godog.StepDefinition) {
	f.result(cacik.StatusPassed, nil)
}

// Failed reports a failed step with its error.
func (f *Formatter) Failed(_ *messages.Pickle, _ *messages.PickleStep, _ *godog.StepDefinition, err error) {
	f.result(cacik.StatusFailed, err)
}

// Skipped reports a skipped step.
func (f *Formatter) Skipped(_ *messages.Pickle, _ *messages.PickleStep, _ *godog.StepDefinition) {
	f.result(cacik.StatusSkipped, nil)
}

// Undefined reports a step without a definition.
func (f *Formatter) Undefined(_ *messages.Pickle, _ *messages.PickleStep, _ *godog.StepDefinition) {
	f.result(cacik.StatusUndefined, nil)
}

// Pending reports a step returning godog.ErrPending.
func (f *Formatter) Pending(_ *messages.Pickle, _ *messages.PickleStep, _ *godog.StepDefinition) {
	f.result(cacik.StatusPending, nil)
}

// Ambiguous reports a step matching several definitions.
func (f *Formatter) Ambiguous(_ *messages.Pickle, _ *messages.PickleStep, _ *godog.StepDefinition, err error) {
	f.result(cacik.StatusAmbiguous, err)
}

// Summary closes whatever is open and ends the run.
func (f *Formatter) Summary() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closeScenario()
	f.closeFeature()
	f.listener.RunEnded()
}

// Embed attaches data to the running step or scenario.
func (f *Formatter) Embed(mimeType string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listener.Embedding(mimeType, data)
}

// Write logs free text against the running step or scenario.
func (f *Formatter) Write(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listener.Write(text)
}

func (f *Formatter) result(status string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == nil {
		f.logger.Warn("step result outside a pickle", "status", status)
		return
	}

	result := cacik.Result{Status: status}
	if err != nil {
		result.ErrorMessage = err.Error()
	}
	f.listener.Result(result)
}

func (f *Formatter) closeScenario() {
	if f.current == nil {
		return
	}
	f.listener.EndOfScenarioLifeCycle(*f.current)
	f.current = nil
}

func (f *Formatter) closeFeature() {
	if !f.featureOpen {
		return
	}
	f.listener.FeatureEnd()
	f.featureOpen = false
}

// scenarioOf builds the scenario of a pickle, announcing the outline and
// its examples block the first time one of their instances shows up.
func (f *Formatter) scenarioOf(pickle *messages.Pickle) cacik.Scenario {
	var sc *messages.Scenario
	if len(pickle.AstNodeIds) > 0 {
		sc = f.index.scenarios[pickle.AstNodeIds[0]]
	}
	if sc == nil {
		f.logger.Warn("pickle without a scenario in the feature document", "pickle", pickle.Name)
		return cacik.Scenario{
			Keyword: "Scenario",
			Name:    pickle.Name,
			Tags:    cacik.TagsFromPickle(pickle.Tags),
		}
	}

	scenario := cacik.ScenarioFromMessage(sc)
	scenario.Name = pickle.Name
	scenario.Tags = cacik.TagsFromPickle(pickle.Tags)

	if len(pickle.AstNodeIds) < 2 {
		return scenario
	}

	rowID := pickle.AstNodeIds[1]
	if !f.outlines[sc.Id] {
		f.outlines[sc.Id] = true
		f.listener.ScenarioOutline(cacik.ScenarioFromMessage(sc))
		for _, step := range sc.Steps {
			f.listener.Step(cacik.StepFromMessage(step))
		}
	}
	if ex := f.index.examples[rowID]; ex != nil && !f.blocks[ex.Id] {
		f.blocks[ex.Id] = true
		f.listener.Examples(cacik.ExamplesFromMessage(ex))
	}
	if row := f.index.rows[rowID]; row != nil && row.Location != nil {
		scenario.Line = row.Location.Line
	}
	return scenario
}

// location names the definition handling step, or the step itself when it
// has none.
func (f *Formatter) location(step *messages.PickleStep, def *godog.StepDefinition) string {
	if def != nil && def.Handler != nil {
		v := reflect.ValueOf(def.Handler)
		if v.Kind() == reflect.Func {
			if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
				file, line := fn.FileLine(fn.Entry())
				return fmt.Sprintf("%s:%d", filepath.Base(file), line)
			}
		}
	}

	if ast, _ := f.index.step(step); ast != nil && ast.Location != nil {
		return fmt.Sprintf("%s:%d", f.uri, ast.Location.Line)
	}
	return f.uri
}

func stepOf(ps *messages.PickleStep, ast *messages.Step) cacik.Step {
	if ast == nil {
		return cacik.StepFromPickle(ps, keywordOf(ps.Type), 0)
	}
	var line int64
	if ast.Location != nil {
		line = ast.Location.Line
	}
	return cacik.StepFromPickle(ps, ast.Keyword, line)
}

func keywordOf(t messages.PickleStepType) string {
	switch t {
	case messages.PickleStepType_CONTEXT:
		return "Given "
	case messages.PickleStepType_ACTION:
		return "When "
	case messages.PickleStepType_OUTCOME:
		return "Then "
	default:
		return "* "
	}
}
