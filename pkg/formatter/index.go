package formatter

import (
	messages "github.com/cucumber/messages/go/v21"
)

// documentIndex resolves the AST node ids carried by pickles back to the
// Gherkin nodes they were compiled from.
type documentIndex struct {
	steps       map[string]*messages.Step
	backgrounds map[string]*messages.Background // keyed by step id
	scenarios   map[string]*messages.Scenario
	examples    map[string]*messages.Examples // keyed by body row id
	rows        map[string]*messages.TableRow
}

func indexDocument(doc *messages.GherkinDocument) *documentIndex {
	idx := &documentIndex{
		steps:       make(map[string]*messages.Step),
		backgrounds: make(map[string]*messages.Background),
		scenarios:   make(map[string]*messages.Scenario),
		examples:    make(map[string]*messages.Examples),
		rows:        make(map[string]*messages.TableRow),
	}
	if doc == nil || doc.Feature == nil {
		return idx
	}

	for _, child := range doc.Feature.Children {
		switch {
		case child.Background != nil:
			idx.addBackground(child.Background)
		case child.Scenario != nil:
			idx.addScenario(child.Scenario)
		case child.Rule != nil:
			for _, rc := range child.Rule.Children {
				if rc.Background != nil {
					idx.addBackground(rc.Background)
				}
				if rc.Scenario != nil {
					idx.addScenario(rc.Scenario)
				}
			}
		}
	}
	return idx
}

func (idx *documentIndex) addBackground(bg *messages.Background) {
	for _, step := range bg.Steps {
		idx.steps[step.Id] = step
		idx.backgrounds[step.Id] = bg
	}
}

func (idx *documentIndex) addScenario(sc *messages.Scenario) {
	idx.scenarios[sc.Id] = sc
	for _, step := range sc.Steps {
		idx.steps[step.Id] = step
	}
	for _, ex := range sc.Examples {
		for _, row := range ex.TableBody {
			idx.examples[row.Id] = ex
			idx.rows[row.Id] = row
		}
	}
}

func (idx *documentIndex) step(ps *messages.PickleStep) (*messages.Step, *messages.Background) {
	if len(ps.AstNodeIds) == 0 {
		return nil, nil
	}
	id := ps.AstNodeIds[0]
	return idx.steps[id], idx.backgrounds[id]
}
