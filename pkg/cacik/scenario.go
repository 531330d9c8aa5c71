package cacik

import (
	"strings"

	messages "github.com/cucumber/messages/go/v21"
)

// Tag is a Gherkin tag as written in the feature file (e.g. "@smoke").
type Tag struct {
	Name string
}

// Feature holds metadata about the Feature block of a .feature file.
type Feature struct {
	// Keyword is "Feature" or its localized equivalent.
	Keyword string

	// Name is the feature name after the keyword.
	Name string

	// Description is the optional free-text description below the
	// Feature: line.
	Description string

	// Line is the source file line number where the feature is defined.
	Line int64

	// Tags contains the tags attached to the feature.
	Tags []Tag
}

// Background holds metadata about a Background block.
type Background struct {
	Keyword string
	Name    string
	Line    int64
}

// Scenario holds metadata about a scenario, or one concrete instance of a
// Scenario Outline.
type Scenario struct {
	// Keyword is "Scenario", "Scenario Outline", "Example", ...
	Keyword string

	// Name is the scenario name. For outline instances produced by an
	// engine this may already contain substituted values.
	Name string

	// Description is the optional free-text description below the
	// Scenario: line.
	Description string

	// Line is the source file line number where the scenario is defined.
	Line int64

	// Tags contains the tags attached to the scenario, including inherited
	// ones when the engine reports them.
	Tags []Tag
}

// Examples holds an Examples block of a Scenario Outline.
// Rows always starts with the header row.
type Examples struct {
	Keyword string
	Name    string
	Line    int64
	Tags    []Tag
	Rows    Table
}

// DocString is a doc string argument attached to a step.
type DocString struct {
	ContentType string
	Value       string
}

// Step holds metadata about a declared step.
type Step struct {
	// Keyword is the Gherkin keyword including trailing whitespace
	// (e.g. "Given ", "When ", "Then ", "And ", "But ").
	Keyword string

	// Text is the step text after the keyword.
	Text string

	// Line is the source file line number where the step is defined.
	Line int64

	// Rows is the DataTable argument, nil when the step has none.
	Rows *Table

	// DocString is the doc string argument, nil when the step has none.
	DocString *DocString
}

// TagsFromMessages converts parsed Gherkin tags.
func TagsFromMessages(tags []*messages.Tag) []Tag {
	result := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t == nil {
			continue
		}
		result = append(result, Tag{Name: t.Name})
	}
	return result
}

// TagsFromPickle converts the tags of a compiled pickle. Pickle tags already
// include the tags inherited from the feature, rule and examples.
func TagsFromPickle(tags []*messages.PickleTag) []Tag {
	result := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t == nil {
			continue
		}
		result = append(result, Tag{Name: t.Name})
	}
	return result
}

// FeatureFromMessage converts a parsed Gherkin Feature message.
func FeatureFromMessage(f *messages.Feature) Feature {
	return Feature{
		Keyword:     f.Keyword,
		Name:        f.Name,
		Description: strings.TrimSpace(f.Description),
		Line:        lineOf(f.Location),
		Tags:        TagsFromMessages(f.Tags),
	}
}

// BackgroundFromMessage converts a parsed Gherkin Background message.
func BackgroundFromMessage(b *messages.Background) Background {
	return Background{
		Keyword: b.Keyword,
		Name:    b.Name,
		Line:    lineOf(b.Location),
	}
}

// ScenarioFromMessage converts a parsed Gherkin Scenario message.
func ScenarioFromMessage(s *messages.Scenario) Scenario {
	return Scenario{
		Name:        s.Name,
		Tags:        TagsFromMessages(s.Tags),
		Description: strings.TrimSpace(s.Description),
		Keyword:     s.Keyword,
		Line:        lineOf(s.Location),
	}
}

// ExamplesFromMessage converts an Examples block. The header row becomes the
// first row of the table.
func ExamplesFromMessage(e *messages.Examples) Examples {
	data := make([][]string, 0, len(e.TableBody)+1)
	if e.TableHeader != nil {
		data = append(data, cellValues(e.TableHeader.Cells))
	}
	for _, row := range e.TableBody {
		data = append(data, cellValues(row.Cells))
	}
	return Examples{
		Keyword: e.Keyword,
		Name:    e.Name,
		Line:    lineOf(e.Location),
		Tags:    TagsFromMessages(e.Tags),
		Rows:    NewTable(data),
	}
}

// StepFromMessage converts a parsed Gherkin Step message, including its
// DataTable or DocString argument.
func StepFromMessage(s *messages.Step) Step {
	step := Step{
		Keyword: s.Keyword,
		Text:    s.Text,
		Line:    lineOf(s.Location),
	}
	if s.DataTable != nil {
		table := NewTableFromDataTable(s.DataTable)
		step.Rows = &table
	}
	if s.DocString != nil {
		step.DocString = &DocString{ContentType: s.DocString.MediaType, Value: s.DocString.Content}
	}
	return step
}

// StepFromPickle converts a compiled pickle step. Keyword and line come from
// the Gherkin step the pickle step was compiled from, the text and arguments
// from the pickle step itself (outline placeholders already substituted).
func StepFromPickle(s *messages.PickleStep, keyword string, line int64) Step {
	step := Step{
		Keyword: keyword,
		Text:    s.Text,
		Line:    line,
	}
	if s.Argument == nil {
		return step
	}
	if s.Argument.DataTable != nil {
		table := NewTableFromPickleTable(s.Argument.DataTable)
		step.Rows = &table
	}
	if s.Argument.DocString != nil {
		step.DocString = &DocString{
			ContentType: s.Argument.DocString.MediaType,
			Value:       s.Argument.DocString.Content,
		}
	}
	return step
}

func cellValues(cells []*messages.TableCell) []string {
	values := make([]string, len(cells))
	for i, c := range cells {
		values[i] = c.Value
	}
	return values
}

func lineOf(l *messages.Location) int64 {
	if l == nil {
		return 0
	}
	return l.Line
}
