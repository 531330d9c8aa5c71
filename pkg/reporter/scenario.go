package reporter

import (
	"strings"
	"time"

	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	rp "github.com/denizgursoy/cacik-rp/pkg/reportportal"
)

// phase is the position of the open scenario in its lifecycle.
type phase int

const (
	phaseBeforeHooks phase = iota
	phaseBackground
	phaseSteps
	phaseAfterHooks
)

func (p phase) String() string {
	switch p {
	case phaseBeforeHooks:
		return "before-hooks"
	case phaseBackground:
		return "background"
	case phaseSteps:
		return "steps"
	case phaseAfterHooks:
		return "after-hooks"
	default:
		return "unknown"
	}
}

// declaredStep is a step announced for the open scenario together with the
// prefix in effect when it was declared.
type declaredStep struct {
	step   cacik.Step
	prefix string
}

// scenarioState is everything the reporter knows about the open scenario.
// Steps are only appended; cursor points at the next step to match.
type scenarioState struct {
	id     string
	steps  []declaredStep
	cursor int
	status rp.Status
	issues []string
	phase  phase

	// prefix is applied to steps declared inside a Background block.
	prefix string

	// open step and hook items, used when steps are reported as items
	stepID      string
	stepStarted time.Time
	hookID      string
	hookBefore  bool
	hookStatus  rp.Status
}

func newScenarioState(id string) *scenarioState {
	return &scenarioState{
		id:     id,
		status: rp.StatusPassed,
		phase:  phaseBeforeHooks,
	}
}

func (s *scenarioState) declare(step cacik.Step) {
	s.steps = append(s.steps, declaredStep{step: step, prefix: s.prefix})
}

// next returns the step at the cursor and advances it.
func (s *scenarioState) next() (declaredStep, bool) {
	if s.cursor >= len(s.steps) {
		return declaredStep{}, false
	}
	step := s.steps[s.cursor]
	s.cursor++
	return step, true
}

func (s *scenarioState) drained() bool {
	return s.cursor >= len(s.steps)
}

// remaining returns the declared steps that were never matched.
func (s *scenarioState) remaining() []declaredStep {
	return s.steps[s.cursor:]
}

func (s *scenarioState) fold(status rp.Status) {
	s.status = Join(s.status, status)
}

func (s *scenarioState) addIssue(comment string) {
	s.issues = append(s.issues, comment)
}

func (s *scenarioState) issueComments() string {
	return strings.Join(s.issues, "\n")
}
