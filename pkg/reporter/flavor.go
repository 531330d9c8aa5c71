package reporter

import (
	"fmt"

	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	rp "github.com/denizgursoy/cacik-rp/pkg/reportportal"
)

// RootItem is a synthetic node every feature is nested under.
type RootItem struct {
	Name        string
	Description string
	Type        rp.ItemType
}

// Flavor decides how the Gherkin hierarchy maps onto ReportPortal items.
type Flavor struct {
	Name string

	// FeatureType and ScenarioType are the item types of feature and
	// scenario nodes.
	FeatureType  rp.ItemType
	ScenarioType rp.ItemType

	// Root, when set, is opened once per launch and parents every feature.
	Root *RootItem

	// StepItems reports steps as STEP items and hooks as BEFORE_TEST /
	// AFTER_TEST items. Otherwise both become log entries of the scenario.
	StepItems bool
}

var (
	// ScenarioFlavor nests scenarios as steps of a single user story; steps
	// and hooks are log entries.
	ScenarioFlavor = Flavor{
		Name:         cacik.FlavorScenario,
		FeatureType:  rp.ItemTypeTest,
		ScenarioType: rp.ItemTypeStep,
		Root: &RootItem{
			Name:        "Root User Story",
			Description: "dummy-root-user-story",
			Type:        rp.ItemTypeStory,
		},
	}

	// StepFlavor maps features to suites, scenarios to tests and steps to
	// nested step items.
	StepFlavor = Flavor{
		Name:         cacik.FlavorStep,
		FeatureType:  rp.ItemTypeSuite,
		ScenarioType: rp.ItemTypeTest,
		StepItems:    true,
	}
)

// FlavorByName returns the flavor registered under name.
func FlavorByName(name string) (Flavor, error) {
	switch name {
	case ScenarioFlavor.Name:
		return ScenarioFlavor, nil
	case StepFlavor.Name:
		return StepFlavor, nil
	default:
		return Flavor{}, fmt.Errorf("unknown flavor %q", name)
	}
}

// LogTarget returns the item log entries go to: the open step, else the open
// hook item, else the scenario itself.
func (f Flavor) LogTarget(s *scenarioState) string {
	if s == nil {
		return ""
	}
	if f.StepItems {
		if s.stepID != "" {
			return s.stepID
		}
		if s.hookID != "" {
			return s.hookID
		}
	}
	return s.id
}

func hookItem(isBefore bool) (string, rp.ItemType) {
	if isBefore {
		return "Before hooks", rp.ItemTypeBeforeTest
	}
	return "After hooks", rp.ItemTypeAfterTest
}
