package runner

import (
	"errors"
	"fmt"

	messages "github.com/cucumber/messages/go/v21"
	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
	"github.com/denizgursoy/cacik-rp/pkg/gherkin_parser"
)

type (
	CucumberRunner struct {
		featureDirectories []string
		tags               string
		executor           Executor
	}
)

func NewCucumberRunner(exec Executor) *CucumberRunner {
	return &CucumberRunner{
		executor: exec,
	}
}

func (c *CucumberRunner) WithFeaturesDirectories(directories ...string) *CucumberRunner {
	c.featureDirectories = directories

	return c
}

// WithTags keeps only the scenarios whose tags satisfy expression, e.g.
// "@smoke and not @slow". An empty expression keeps everything.
func (c *CucumberRunner) WithTags(expression string) *CucumberRunner {
	c.tags = expression

	return c
}

// Run loads every feature file, filters its pickles by tag and hands the
// survivors to the executor. Features left without pickles are skipped.
func (c *CucumberRunner) Run() error {
	evaluator, err := tagexpressions.Parse(c.tags)
	if err != nil {
		return fmt.Errorf("invalid tag expression %q: %w", c.tags, err)
	}

	directories := c.featureDirectories
	if len(directories) == 0 {
		directories = []string{"."}
	}

	files, err := gherkin_parser.LoadFeatures(directories)
	if err != nil {
		return err
	}

	c.executor.Begin()
	defer c.executor.End()

	var errs []error
	for _, file := range files {
		pickles := filterPickles(file.Pickles, evaluator)
		if len(pickles) == 0 {
			continue
		}
		if err := c.executor.Execute(file.Document, pickles); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file.Path, err))
		}
	}

	return errors.Join(errs...)
}

// filterPickles keeps the pickles matching evaluator. Pickle tags already
// carry the feature, rule and examples tags.
func filterPickles(pickles []*messages.Pickle, evaluator tagexpressions.Evaluatable) []*messages.Pickle {
	filtered := make([]*messages.Pickle, 0, len(pickles))
	for _, pickle := range pickles {
		if evaluator.Evaluate(extractTagNames(pickle.Tags)) {
			filtered = append(filtered, pickle)
		}
	}
	return filtered
}

func extractTagNames(tags []*messages.PickleTag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
