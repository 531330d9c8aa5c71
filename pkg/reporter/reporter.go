// Package reporter turns the Cucumber lifecycle of a run into a
// ReportPortal launch: it keeps the open feature, scenario, step and hook
// nodes, folds step outcomes into scenario status and decides when each
// remote node opens and closes.
//
// Backend failures never stop a run. They are logged and the state machine
// carries on as if the call had not happened.
package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	rp "github.com/denizgursoy/cacik-rp/pkg/reportportal"
)

const undeclaredStepName = "undeclared step"

// Reporter is a Listener reporting to a ReportPortal Service.
// It is not safe for concurrent use.
type Reporter struct {
	service rp.Service
	flavor  Flavor
	logger  cacik.Logger
	ctx     context.Context
	clock   func() time.Time
	launch  LaunchSettings

	// latest is the end of the last step finished from its reported
	// duration. Later timestamps never go before it.
	latest time.Time

	launchAttempted bool
	launchID        string
	rootID          string

	featureOpen bool
	featureID   string
	featureURI  string

	// outline holds the suffixes of the outline instances still to come.
	outline  []string
	scenario *scenarioState
}

var _ Listener = (*Reporter)(nil)

// New creates a Reporter sending to service.
func New(service rp.Service, opts ...Option) *Reporter {
	r := &Reporter{
		service: service,
		flavor:  StepFlavor,
		ctx:     context.Background(),
		clock:   time.Now,
		launch:  LaunchSettings{Name: "cacik-rp", Mode: rp.ModeDefault},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// RunStarted opens the launch and, when the flavor has one, the root item.
func (r *Reporter) RunStarted() {
	r.startLaunch()
}

// URI records the location of the feature about to start.
func (r *Reporter) URI(uri string) {
	r.featureURI = uri
}

// Feature opens a feature node. A feature or scenario left open is closed
// first.
func (r *Reporter) Feature(feature cacik.Feature) {
	r.startLaunch()

	if r.scenario != nil {
		r.logger.Warn("scenario left open at feature start, closing it")
		r.endScenario()
	}
	if r.featureOpen {
		r.logger.Warn("feature left open at next feature start, closing it", "feature_id", r.featureID)
		r.endFeature()
	}

	r.outline = nil
	r.featureID = r.startItem(
		r.rootID,
		BuildStatementName("", feature.Keyword, colonInfix, feature.Name, ""),
		r.featureURI,
		ExtractTags(feature.Tags),
		r.flavor.FeatureType,
	)
	r.featureOpen = true
}

// ScenarioOutline announces an outline template. Its steps are declared
// while no scenario is open and are ignored. Suffixes left over from a
// previous outline are dropped.
func (r *Reporter) ScenarioOutline(outline cacik.Scenario) {
	if len(r.outline) > 0 {
		r.logger.Debug("dropping unused outline suffixes", "count", len(r.outline))
	}
	r.outline = nil
	r.logger.Debug("scenario outline", "name", outline.Name, "line", outline.Line)
}

// Examples queues one name suffix per data row.
func (r *Reporter) Examples(examples cacik.Examples) {
	rows := examples.Rows.Len()
	for i := 1; i < rows; i++ {
		r.outline = append(r.outline, fmt.Sprintf(" [%d]", i))
	}
}

// StartOfScenarioLifeCycle opens a scenario node and its before-hook window.
func (r *Reporter) StartOfScenarioLifeCycle(scenario cacik.Scenario) {
	r.startLaunch()

	if r.scenario != nil {
		r.logger.Warn("scenario left open at next scenario start, closing it", "scenario_id", r.scenario.id)
		r.endScenario()
	}
	if !r.featureOpen {
		r.logger.Warn("scenario started outside a feature", "scenario", scenario.Name)
	}

	var suffix string
	if len(r.outline) > 0 {
		suffix, r.outline = r.outline[0], r.outline[1:]
	}

	id := r.startItem(
		r.featureID,
		BuildStatementName("", scenario.Keyword, colonInfix, scenario.Name, suffix),
		fmt.Sprintf("%s:%d", r.featureURI, scenario.Line),
		ExtractTags(scenario.Tags),
		r.flavor.ScenarioType,
	)
	r.scenario = newScenarioState(id)
}

// Background closes the before-hook window and marks the following steps
// as background steps.
func (r *Reporter) Background(background cacik.Background) {
	s := r.scenario
	if s == nil {
		r.logger.Warn("background outside a scenario", "line", background.Line)
		return
	}

	r.closeHookWindow(true)
	s.phase = phaseBackground
	s.prefix = strings.ToUpper(background.Keyword) + colonInfix
}

// Scenario starts the scenario's own steps.
func (r *Reporter) Scenario(scenario cacik.Scenario) {
	s := r.scenario
	if s == nil {
		r.logger.Warn("scenario block outside a scenario lifecycle", "scenario", scenario.Name)
		return
	}

	r.closeHookWindow(true)
	s.phase = phaseSteps
	s.prefix = ""
}

// Step declares a step of the open scenario.
func (r *Reporter) Step(step cacik.Step) {
	if r.scenario == nil {
		return
	}
	r.scenario.declare(step)
}

// Match begins the next declared step.
func (r *Reporter) Match(match cacik.Match) {
	s := r.scenario
	if s == nil {
		r.logger.Warn("step match outside a scenario", "location", match.Location)
		return
	}

	if s.phase == phaseBeforeHooks {
		r.closeHookWindow(true)
		s.phase = phaseSteps
	}
	r.closeHookItem()

	step, ok := s.next()
	if !ok {
		r.logger.Warn("step match without a declared step", "scenario_id", s.id, "location", match.Location)
		name := match.Location
		if name == "" {
			name = undeclaredStepName
		}
		step = declaredStep{step: cacik.Step{Text: name}}
	}

	r.beginStep(step)
}

// Result reports the outcome of the running step.
func (r *Reporter) Result(result cacik.Result) {
	s := r.scenario
	if s == nil {
		r.logger.Warn("step result outside a scenario", "status", result.Status)
		return
	}

	var message string
	if !r.flavor.StepItems {
		message = decorate("STEP " + strings.ToUpper(strings.TrimSpace(result.Status)))
	}
	r.reportResult(result, message)

	if s.stepID != "" {
		r.finishItemAt(s.stepID, MapStatus(result.Status), "", r.stepEnd(result))
		s.stepID = ""
	}

	if s.phase == phaseSteps && s.drained() {
		r.openAfterHooks()
	}
}

// HooksStarted opens a hook window. Re-opening a window is a no-op.
func (r *Reporter) HooksStarted(isBefore bool) {
	s := r.scenario
	if s == nil {
		return
	}
	if isBefore {
		if s.phase != phaseBeforeHooks {
			r.logger.Debug("before hooks started after the before window closed", "phase", s.phase)
		}
		return
	}
	r.openAfterHooks()
}

// HooksFinished closes a hook window. Closing a closed window is a no-op.
func (r *Reporter) HooksFinished(isBefore bool) {
	if r.scenario == nil {
		return
	}
	r.closeHookWindow(isBefore)
}

// HookFinished reports the outcome of one hook like a step result, without
// moving to the next step.
func (r *Reporter) HookFinished(match cacik.Match, result cacik.Result, isBefore bool) {
	s := r.scenario
	if s == nil {
		r.logger.Warn("hook finished outside a scenario", "location", match.Location)
		return
	}

	if !isBefore {
		r.openAfterHooks()
	}

	var message string
	if r.flavor.StepItems {
		r.ensureHookItem(isBefore)
		s.hookStatus = Join(s.hookStatus, MapStatus(result.Status))
		if isBefore {
			message = "Before hook: " + match.Location
		} else {
			message = "After hook: " + match.Location
		}
	} else {
		if isBefore {
			message = "@Before\n" + match.Location
		} else {
			message = "@After\n" + match.Location
		}
	}

	r.reportResult(result, message)
}

// Embedding logs an attachment against the current log target.
func (r *Reporter) Embedding(mimeType string, data []byte) {
	name := AttachmentName(r.logger, mimeType)
	r.sendLog(r.flavor.LogTarget(r.scenario), name, rp.LevelUnknown, &rp.File{
		Name:        name,
		ContentType: mimeType,
		Content:     data,
	})
}

// Write logs free text against the current log target.
func (r *Reporter) Write(text string) {
	r.sendLog(r.flavor.LogTarget(r.scenario), text, rp.LevelInfo, nil)
}

// EndOfScenarioLifeCycle closes the scenario with its aggregated status.
func (r *Reporter) EndOfScenarioLifeCycle(scenario cacik.Scenario) {
	if r.scenario == nil {
		r.logger.Warn("scenario end without an open scenario", "scenario", scenario.Name)
		return
	}
	r.endScenario()
}

// FeatureEnd closes the feature node.
func (r *Reporter) FeatureEnd() {
	if r.scenario != nil {
		r.logger.Warn("scenario left open at feature end, closing it", "scenario_id", r.scenario.id)
		r.endScenario()
	}
	if !r.featureOpen {
		r.logger.Warn("feature end without an open feature")
		return
	}
	r.endFeature()
}

// RunEnded closes whatever is still open, then the root item and the
// launch. The reporter is ready for another run afterwards.
func (r *Reporter) RunEnded() {
	if r.scenario != nil {
		r.endScenario()
	}
	if r.featureOpen {
		r.endFeature()
	}

	if r.rootID != "" {
		r.finishItem(r.rootID, "", "")
	}

	if r.launchAttempted {
		r.finishLaunch()
	}

	r.launchAttempted = false
	r.launchID = ""
	r.rootID = ""
	r.outline = nil
}

func (r *Reporter) startLaunch() {
	if r.launchAttempted {
		return
	}
	r.launchAttempted = true

	rs, err := r.service.StartLaunch(r.ctx, &rp.StartLaunchRQ{
		Name:        r.launch.Name,
		Description: r.launch.Description,
		StartTime:   rp.NewTimestamp(r.now()),
		Attributes:  rp.AttributesFromTags(r.launch.Tags),
		Mode:        r.launch.Mode,
	})
	if err != nil {
		r.logger.Error("cannot start the launch", "launch", r.launch.Name, "err", err)
		return
	}
	r.launchID = rs.ID

	if root := r.flavor.Root; root != nil {
		r.rootID = r.startItem("", root.Name, root.Description, nil, root.Type)
	}
}

func (r *Reporter) finishLaunch() {
	if r.launchID == "" {
		r.logger.Warn("trying to finish an unstarted launch", "launch", r.launch.Name)
		return
	}

	err := r.service.FinishLaunch(r.ctx, r.launchID, &rp.FinishExecutionRQ{EndTime: rp.NewTimestamp(r.now())})
	if err != nil {
		r.logger.Error("cannot finish launch", "launch_id", r.launchID, "err", err)
	}
}

func (r *Reporter) endFeature() {
	r.finishItem(r.featureID, "", "")
	r.featureID = ""
	r.featureURI = ""
	r.featureOpen = false
	r.outline = nil
}

func (r *Reporter) endScenario() {
	s := r.scenario

	r.closeHookItem()
	if s.stepID != "" {
		r.logger.Warn("step left open at scenario end", "step_id", s.stepID)
		r.finishItem(s.stepID, "", "")
		s.stepID = ""
	}
	if rest := s.remaining(); len(rest) > 0 {
		r.logger.Debug("discarding steps that never ran", "scenario_id", s.id, "count", len(rest))
	}

	r.finishItem(s.id, s.status, s.issueComments())
	r.scenario = nil
}

func (r *Reporter) beginStep(step declaredStep) {
	s := r.scenario
	name := BuildStatementName(step.prefix, step.step.Keyword, "", step.step.Text, "")
	argument := BuildMultilineArgument(step.step)

	if r.flavor.StepItems {
		if s.stepID != "" {
			r.logger.Warn("step left open at next step match", "step_id", s.stepID)
			r.finishItem(s.stepID, "", "")
		}
		s.stepStarted = r.now()
		s.stepID = r.startItemAt(s.id, name, argument, nil, rp.ItemTypeStep, s.stepStarted)
		return
	}

	r.sendLog(s.id, decorate(name)+argument, rp.LevelInfo, nil)
}

// reportResult logs the error message and message of a step or hook result
// and folds its status and commentary into the scenario.
func (r *Reporter) reportResult(result cacik.Result, message string) {
	s := r.scenario
	target := r.flavor.LogTarget(s)
	level := MapLevel(result.Status)

	if result.ErrorMessage != "" {
		r.sendLog(target, result.ErrorMessage, level, nil)
	}
	if message != "" {
		r.sendLog(target, message, level, nil)
	}

	s.fold(MapStatus(result.Status))
	if comment := IssueComment(result.Status); comment != "" {
		s.addIssue(comment)
	}
}

func (r *Reporter) openAfterHooks() {
	s := r.scenario
	if s.phase == phaseAfterHooks {
		return
	}
	r.closeHookItem()
	s.phase = phaseAfterHooks
}

func (r *Reporter) closeHookWindow(isBefore bool) {
	s := r.scenario
	if s.hookID != "" && s.hookBefore == isBefore {
		r.closeHookItem()
	}
	if isBefore && s.phase == phaseBeforeHooks {
		s.phase = phaseSteps
	}
}

func (r *Reporter) ensureHookItem(isBefore bool) {
	s := r.scenario
	if s.hookID != "" && s.hookBefore == isBefore {
		return
	}
	r.closeHookItem()

	name, itemType := hookItem(isBefore)
	s.hookID = r.startItem(s.id, name, "", nil, itemType)
	s.hookBefore = isBefore
	s.hookStatus = rp.StatusPassed
}

func (r *Reporter) closeHookItem() {
	s := r.scenario
	if s.hookID == "" {
		return
	}
	r.finishItem(s.hookID, s.hookStatus, "")
	s.hookID = ""
}

// stepEnd is the end time of the open step item: its start plus the
// reported duration when there is one, the clock otherwise.
func (r *Reporter) stepEnd(result cacik.Result) time.Time {
	s := r.scenario
	if result.Duration <= 0 || s.stepStarted.IsZero() {
		return r.now()
	}
	end := s.stepStarted.Add(result.Duration)
	if end.After(r.latest) {
		r.latest = end
	}
	return end
}

func (r *Reporter) now() time.Time {
	t := r.clock()
	if t.Before(r.latest) {
		return r.latest
	}
	return t
}

func (r *Reporter) startItem(parentID, name, description string, tags []string, itemType rp.ItemType) string {
	return r.startItemAt(parentID, name, description, tags, itemType, r.now())
}

func (r *Reporter) startItemAt(parentID, name, description string, tags []string, itemType rp.ItemType, start time.Time) string {
	if r.launchID == "" {
		r.logger.Warn("cannot start test item without a launch", "name", name)
		return ""
	}

	rs, err := r.service.StartTestItem(r.ctx, parentID, &rp.StartTestItemRQ{
		LaunchID:    r.launchID,
		Name:        name,
		Description: description,
		Attributes:  rp.AttributesFromTags(tags),
		StartTime:   rp.NewTimestamp(start),
		Type:        itemType,
	})
	if err != nil {
		r.logger.Error("cannot create test item", "name", name, "parent_id", parentID, "err", err)
		return ""
	}
	return rs.ID
}

func (r *Reporter) finishItem(itemID string, status rp.Status, comments string) {
	r.finishItemAt(itemID, status, comments, r.now())
}

func (r *Reporter) finishItemAt(itemID string, status rp.Status, comments string, end time.Time) {
	if itemID == "" {
		r.logger.Warn("trying to finish unspecified test item")
		return
	}

	err := r.service.FinishTestItem(r.ctx, itemID, &rp.FinishTestItemRQ{
		LaunchID: r.launchID,
		EndTime:  rp.NewTimestamp(end),
		Status:   status,
		Issue:    IssueFor(status, comments),
	})
	if err != nil {
		r.logger.Error("cannot finish test item", "item_id", itemID, "err", err)
	}
}

func (r *Reporter) sendLog(itemID, message string, level rp.Level, file *rp.File) {
	if itemID == "" {
		r.logger.Warn("trying to send log while no test item is in progress", "level", level)
		return
	}

	err := r.service.Log(r.ctx, &rp.SaveLogRQ{
		LaunchID: r.launchID,
		ItemID:   itemID,
		Time:     rp.NewTimestamp(r.now()),
		Message:  message,
		Level:    level,
		File:     file,
	})
	if err != nil {
		r.logger.Error("cannot send log to item", "item_id", itemID, "err", err)
	}
}
