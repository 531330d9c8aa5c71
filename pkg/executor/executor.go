package executor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/formatters"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/denizgursoy/cacik-rp/pkg/cacik"
)

var (
	errAmbiguous = errors.New("ambiguous step definition")

	contextType   = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	tableType     = reflect.TypeOf(cacik.Table{})
	docStringType = reflect.TypeOf(cacik.DocString{})
)

// StepDefinition holds a compiled regex pattern and its associated function
type StepDefinition struct {
	Pattern  *regexp.Regexp
	Function any
}

func (d *StepDefinition) formatterDefinition() *formatters.StepDefinition {
	if d == nil {
		return nil
	}
	return &formatters.StepDefinition{Expr: d.Pattern, Handler: d.Function}
}

// StepExecutor runs compiled pickles against registered step definitions
// and reports every step to a godog formatter.
type StepExecutor struct {
	steps      []StepDefinition
	patternSet map[string]bool // Track registered patterns for duplicate detection
	formatter  formatters.Formatter
	dryRun     bool
}

// NewStepExecutor creates a new StepExecutor reporting to formatter
func NewStepExecutor(formatter formatters.Formatter) *StepExecutor {
	return &StepExecutor{
		steps:      make([]StepDefinition, 0),
		patternSet: make(map[string]bool),
		formatter:  formatter,
	}
}

// WithDryRun reports every step as skipped without running it.
func (e *StepExecutor) WithDryRun(dryRun bool) *StepExecutor {
	e.dryRun = dryRun
	return e
}

// RegisterStep registers a step definition with its regex pattern and function
func (e *StepExecutor) RegisterStep(pattern string, fn any) error {
	// Check for duplicate pattern
	if e.patternSet[pattern] {
		return fmt.Errorf("duplicate step pattern: %s", pattern)
	}

	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid step pattern %q: %w", pattern, err)
	}

	// Validate function signature
	fnType := reflect.TypeOf(fn)
	if fnType == nil || fnType.Kind() != reflect.Func {
		return fmt.Errorf("step handler must be a function, got %T", fn)
	}

	e.steps = append(e.steps, StepDefinition{
		Pattern:  compiled,
		Function: fn,
	})
	e.patternSet[pattern] = true
	return nil
}

// Begin starts the run.
func (e *StepExecutor) Begin() {
	e.formatter.TestRunStarted()
}

// End finishes the run.
func (e *StepExecutor) End() {
	e.formatter.Summary()
}

// Execute runs the pickles of one document. Every scenario runs even when
// an earlier one failed; the failures are joined into the returned error.
func (e *StepExecutor) Execute(document *messages.GherkinDocument, pickles []*messages.Pickle) error {
	if document == nil || document.Feature == nil || len(pickles) == 0 {
		return nil
	}

	e.formatter.Feature(document, document.Uri, nil)

	var errs []error
	for _, pickle := range pickles {
		if err := e.executePickle(pickle); err != nil {
			errs = append(errs, fmt.Errorf("scenario %q: %w", pickle.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (e *StepExecutor) executePickle(pickle *messages.Pickle) error {
	e.formatter.Pickle(pickle)

	ctx := context.Background()
	var scenarioErr error

	for _, step := range pickle.Steps {
		if e.dryRun {
			e.formatter.Defined(pickle, step, nil)
			e.formatter.Skipped(pickle, step, nil)
			continue
		}

		def, err := e.match(step.Text)
		e.formatter.Defined(pickle, step, def.formatterDefinition())

		switch {
		case errors.Is(err, godog.ErrUndefined):
			e.formatter.Undefined(pickle, step, nil)
			scenarioErr = firstError(scenarioErr, err)
			continue
		case err != nil:
			e.formatter.Ambiguous(pickle, step, def.formatterDefinition(), err)
			scenarioErr = firstError(scenarioErr, err)
			continue
		case scenarioErr != nil:
			e.formatter.Skipped(pickle, step, def.formatterDefinition())
			continue
		}

		ctx, err = e.executeStep(ctx, def, step)

		switch {
		case err == nil:
			e.formatter.Passed(pickle, step, def.formatterDefinition())
		case errors.Is(err, godog.ErrPending):
			e.formatter.Pending(pickle, step, def.formatterDefinition())
			scenarioErr = err
		case errors.Is(err, godog.ErrSkip):
			e.formatter.Skipped(pickle, step, def.formatterDefinition())
			scenarioErr = firstError(scenarioErr, err)
		default:
			e.formatter.Failed(pickle, step, def.formatterDefinition(), err)
			scenarioErr = fmt.Errorf("step %q failed: %w", step.Text, err)
		}
	}

	// a skipped scenario is not a failure
	if errors.Is(scenarioErr, godog.ErrSkip) {
		return nil
	}
	return scenarioErr
}

// match finds the definition for stepText. When several match, the first
// registered one is returned together with errAmbiguous.
func (e *StepExecutor) match(stepText string) (*StepDefinition, error) {
	var found []*StepDefinition
	for i := range e.steps {
		if e.steps[i].Pattern.MatchString(stepText) {
			found = append(found, &e.steps[i])
		}
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: no matching step definition found for: %s", godog.ErrUndefined, stepText)
	case 1:
		return found[0], nil
	default:
		patterns := make([]string, len(found))
		for i, def := range found {
			patterns[i] = def.Pattern.String()
		}
		return found[0], fmt.Errorf("%w %q matches %s", errAmbiguous, stepText, strings.Join(patterns, ", "))
	}
}

// executeStep invokes the definition with the captured arguments of the
// step and returns the context for the next step.
func (e *StepExecutor) executeStep(ctx context.Context, def *StepDefinition, step *messages.PickleStep) (newCtx context.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			newCtx = ctx
			err = fmt.Errorf("step panicked: %v", r)
		}
	}()

	// Extract capture groups (skip the full match at index 0)
	capturedArgs := def.Pattern.FindStringSubmatch(step.Text)[1:]

	returned, err := e.invokeStepFunction(ctx, def.Function, capturedArgs, step.Argument)
	if returned == nil {
		returned = ctx
	}
	return returned, err
}

// invokeStepFunction calls the step function with proper argument conversion
func (e *StepExecutor) invokeStepFunction(ctx context.Context, fn any, args []string, argument *messages.PickleStepArgument) (context.Context, error) {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()

	// Build argument list
	callArgs, err := buildCallArgs(ctx, fnType, args, argument)
	if err != nil {
		return nil, err
	}

	// Call the function
	results := fnValue.Call(callArgs)

	// Process return values
	return processReturnValues(fnType, results)
}

// buildCallArgs constructs the argument slice for function invocation
func buildCallArgs(ctx context.Context, fnType reflect.Type, capturedArgs []string, argument *messages.PickleStepArgument) ([]reflect.Value, error) {
	numParams := fnType.NumIn()
	callArgs := make([]reflect.Value, 0, numParams)

	capturedIndex := 0

	for i := 0; i < numParams; i++ {
		paramType := fnType.In(i)

		switch {
		case paramType.Implements(contextType):
			callArgs = append(callArgs, reflect.ValueOf(ctx))
			continue
		case paramType == tableType:
			if argument == nil || argument.DataTable == nil {
				return nil, fmt.Errorf("step has no data table for parameter %d", i)
			}
			callArgs = append(callArgs, reflect.ValueOf(cacik.NewTableFromPickleTable(argument.DataTable)))
			continue
		case paramType == docStringType:
			if argument == nil || argument.DocString == nil {
				return nil, fmt.Errorf("step has no doc string for parameter %d", i)
			}
			callArgs = append(callArgs, reflect.ValueOf(cacik.DocString{
				ContentType: argument.DocString.MediaType,
				Value:       argument.DocString.Content,
			}))
			continue
		}

		// Otherwise, consume from captured arguments
		if capturedIndex >= len(capturedArgs) {
			return nil, fmt.Errorf("not enough captured arguments: expected %d more, have %d", numParams-i, len(capturedArgs)-capturedIndex)
		}

		arg := capturedArgs[capturedIndex]
		capturedIndex++

		converted, err := convertArg(arg, paramType)
		if err != nil {
			return nil, fmt.Errorf("failed to convert argument %q to %s: %w", arg, paramType, err)
		}
		callArgs = append(callArgs, converted)
	}

	return callArgs, nil
}

// processReturnValues extracts context and error from function return values
func processReturnValues(fnType reflect.Type, results []reflect.Value) (context.Context, error) {
	var newCtx context.Context
	var retErr error

	for i := 0; i < len(results); i++ {
		result := results[i]
		resultType := fnType.Out(i)

		switch {
		case resultType.Implements(contextType):
			if !result.IsNil() {
				newCtx = result.Interface().(context.Context)
			}
		case resultType.Implements(errorType):
			if !result.IsNil() {
				retErr = result.Interface().(error)
			}
		}
	}

	return newCtx, retErr
}

// convertArg converts a string argument to the target type. Named types
// are converted from their underlying kind.
func convertArg(arg string, targetType reflect.Type) (reflect.Value, error) {
	var v any

	switch targetType.Kind() {
	case reflect.String:
		v = arg

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(arg, 10, targetType.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v = n

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(arg, 10, targetType.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v = n

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(arg, targetType.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v = f

	case reflect.Bool:
		b, err := parseBool(arg)
		if err != nil {
			return reflect.Value{}, err
		}
		v = b

	default:
		return reflect.Value{}, fmt.Errorf("unsupported parameter type: %s", targetType.Kind())
	}

	return reflect.ValueOf(v).Convert(targetType), nil
}

func parseBool(arg string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "true", "yes", "on", "enabled", "1":
		return true, nil
	case "false", "no", "off", "disabled", "0":
		return false, nil
	default:
		return false, fmt.Errorf("cannot parse %q as bool", arg)
	}
}

func firstError(current, next error) error {
	if current != nil {
		return current
	}
	return next
}
