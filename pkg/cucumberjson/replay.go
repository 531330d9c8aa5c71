package cucumberjson

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	"github.com/denizgursoy/cacik-rp/pkg/reporter"
)

// Replayer turns parsed reports into lifecycle events.
type Replayer struct {
	listener reporter.Listener
	logger   cacik.Logger
}

// Option configures a Replayer.
type Option func(*Replayer)

// WithLogger sets the logger for entries that cannot be replayed.
func WithLogger(logger cacik.Logger) Option {
	return func(r *Replayer) {
		r.logger = logger
	}
}

// NewReplayer creates a Replayer sending events to listener.
func NewReplayer(listener reporter.Listener, opts ...Option) *Replayer {
	r := &Replayer{
		listener: listener,
		logger:   cacik.NoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Replay emits one run containing every feature in order.
func (r *Replayer) Replay(features []Feature) {
	r.listener.RunStarted()
	for _, feature := range features {
		r.replayFeature(feature)
	}
	r.listener.RunEnded()
}

func (r *Replayer) replayFeature(feature Feature) {
	r.listener.URI(feature.URI)
	r.listener.Feature(cacik.Feature{
		Keyword:     feature.Keyword,
		Name:        feature.Name,
		Description: strings.TrimSpace(feature.Description),
		Line:        feature.Line,
		Tags:        tagsOf(feature.Tags),
	})

	var background *Element
	var previous *instance
	for i := range feature.Elements {
		el := &feature.Elements[i]
		if el.Type == ElementBackground {
			background = el
			continue
		}

		current, ok := outlineInstance(el)
		switch {
		case !ok:
			previous = nil
		case previous == nil || !current.follows(*previous):
			r.announceOutline(el, countInstances(feature.Elements[i:]))
			previous = &current
		default:
			previous = &current
		}

		r.replayScenario(el, background)
		background = nil
	}

	r.listener.FeatureEnd()
}

func (r *Replayer) announceOutline(el *Element, instances int) {
	r.listener.ScenarioOutline(scenarioOf(el))

	rows := make([][]string, 0, instances+1)
	rows = append(rows, []string{"example"})
	for n := 1; n <= instances; n++ {
		rows = append(rows, []string{fmt.Sprint(n)})
	}
	r.listener.Examples(cacik.Examples{Keyword: "Examples", Rows: cacik.NewTable(rows)})
}

func (r *Replayer) replayScenario(el *Element, background *Element) {
	scenario := scenarioOf(el)
	r.listener.StartOfScenarioLifeCycle(scenario)

	r.replayHooks(el.Before, true)

	if background != nil {
		r.listener.Background(cacik.Background{Keyword: background.Keyword, Name: background.Name, Line: background.Line})
		for _, step := range background.Steps {
			r.listener.Step(stepOf(step))
		}
	}
	r.listener.Scenario(scenario)
	for _, step := range el.Steps {
		r.listener.Step(stepOf(step))
	}

	if background != nil {
		r.replaySteps(background.Steps)
	}
	r.replaySteps(el.Steps)

	r.replayHooks(el.After, false)

	r.listener.EndOfScenarioLifeCycle(scenario)
}

func (r *Replayer) replaySteps(steps []Step) {
	for _, step := range steps {
		r.listener.Match(cacik.Match{Location: step.Match.Location})
		r.replayAttachments(step.Embeddings, step.Output)
		r.listener.Result(resultOf(step.Result))
	}
}

func (r *Replayer) replayHooks(hooks []Hook, isBefore bool) {
	if len(hooks) == 0 {
		return
	}

	r.listener.HooksStarted(isBefore)
	for _, hook := range hooks {
		r.listener.HookFinished(cacik.Match{Location: hook.Match.Location}, resultOf(hook.Result), isBefore)
		r.replayAttachments(hook.Embeddings, hook.Output)
	}
	r.listener.HooksFinished(isBefore)
}

func (r *Replayer) replayAttachments(embeddings []Embedding, output []string) {
	for _, e := range embeddings {
		data, err := base64.StdEncoding.DecodeString(e.Data)
		if err != nil {
			r.logger.Warn("skipping embedding with invalid base64 data", "mime_type", e.MimeType, "err", err)
			continue
		}
		r.listener.Embedding(e.MimeType, data)
	}
	for _, text := range output {
		r.listener.Write(text)
	}
}

// instance locates an outline instance by its examples block and row.
// Instance ids end with ";<examples>;<row>".
type instance struct {
	examples string
	row      int
}

func (i instance) follows(previous instance) bool {
	return i.examples == previous.examples && i.row > previous.row
}

func outlineInstance(el *Element) (instance, bool) {
	keyword := strings.ToLower(el.Keyword)
	if !strings.Contains(keyword, "outline") && !strings.Contains(keyword, "template") {
		return instance{}, false
	}

	parts := strings.Split(el.ID, ";")
	if len(parts) < 3 {
		return instance{examples: el.ID}, true
	}
	row, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return instance{examples: el.ID}, true
	}
	return instance{examples: parts[len(parts)-2], row: row}, true
}

// countInstances counts the consecutive instances of the outline starting
// at elements[0].
func countInstances(elements []Element) int {
	var previous *instance
	n := 0
	for i := range elements {
		el := &elements[i]
		if el.Type == ElementBackground {
			continue
		}
		current, ok := outlineInstance(el)
		if !ok || (previous != nil && !current.follows(*previous)) {
			break
		}
		previous = &current
		n++
	}
	return n
}

func scenarioOf(el *Element) cacik.Scenario {
	return cacik.Scenario{
		Keyword:     el.Keyword,
		Name:        el.Name,
		Description: strings.TrimSpace(el.Description),
		Line:        el.Line,
		Tags:        tagsOf(el.Tags),
	}
}

func stepOf(s Step) cacik.Step {
	step := cacik.Step{
		Keyword: s.Keyword,
		Text:    s.Name,
		Line:    s.Line,
	}
	if len(s.Rows) > 0 {
		data := make([][]string, len(s.Rows))
		for i, row := range s.Rows {
			data[i] = row.Cells
		}
		table := cacik.NewTable(data)
		step.Rows = &table
	}
	if s.DocString != nil {
		step.DocString = &cacik.DocString{ContentType: s.DocString.ContentType, Value: s.DocString.Value}
	}
	return step
}

func resultOf(r Result) cacik.Result {
	result := cacik.Result{
		Status:       r.Status,
		ErrorMessage: r.ErrorMessage,
	}
	if r.Duration != nil {
		result.Duration = time.Duration(*r.Duration)
	}
	return result
}

func tagsOf(tags []Tag) []cacik.Tag {
	result := make([]cacik.Tag, 0, len(tags))
	for _, t := range tags {
		result = append(result, cacik.Tag{Name: t.Name})
	}
	return result
}
