package generator

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, output *Output) string {
	t.Helper()

	builder := &strings.Builder{}
	require.NoError(t, output.Generate(builder))

	_, err := parser.ParseFile(token.NewFileSet(), "reportportal_test.go", builder.String(), 0)
	require.NoError(t, err, builder.String())

	return builder.String()
}

func TestOutput_Generate(t *testing.T) {
	t.Run("should reference a single initializer directly", func(t *testing.T) {
		code := generate(t, &Output{
			PackageName:          "billing",
			ScenarioInitializers: []*FunctionLocator{{FunctionName: "InitializeScenario"}},
			FeaturePaths:         []string{"features"},
		})

		require.True(t, strings.HasPrefix(code, "// Code generated by cacik-rp. DO NOT EDIT."))
		require.Contains(t, code, "package billing")
		require.Contains(t, code, "func TestReportPortal(t *testing.T)")
		require.Contains(t, code, `cacik.ResolveConfig("")`)
		require.Contains(t, code, "reporter.NewFromConfig(config, os.Stdout)")
		require.Contains(t, code, "formatter.Register(listener)")
		require.Regexp(t, `ScenarioInitializer:\s+InitializeScenario,`, code)
		require.Regexp(t, `Format:\s+formatter.FormatName,`, code)
		require.Regexp(t, `Concurrency:\s+1,`, code)
		require.NotContains(t, code, "TestSuiteInitializer")
		require.NotContains(t, code, "Tags:")
	})

	t.Run("should chain several initializers", func(t *testing.T) {
		code := generate(t, &Output{
			PackageName: "billing",
			ScenarioInitializers: []*FunctionLocator{
				{FunctionName: "InitializeInvoices"},
				{FunctionName: "InitializePayments"},
			},
			SuiteInitializers: []*FunctionLocator{{FunctionName: "InitializeSuite"}},
			FeaturePaths:      []string{"features/a", "features/b"},
			Tags:              "@smoke",
		})

		require.Contains(t, code, "func(ctx *godog.ScenarioContext) {")
		require.Contains(t, code, "InitializeInvoices(ctx)")
		require.Contains(t, code, "InitializePayments(ctx)")
		require.Regexp(t, `TestSuiteInitializer:\s+InitializeSuite,`, code)
		require.Contains(t, code, `[]string{"features/a", "features/b"}`)
		require.Regexp(t, `Tags:\s+"@smoke",`, code)
	})

	t.Run("should qualify initializers of other packages", func(t *testing.T) {
		code := generate(t, &Output{
			CurrentPackagePath: "example.com/app/tests",
			ScenarioInitializers: []*FunctionLocator{
				{FullPackageName: "example.com/app/steps", FunctionName: "Initialize"},
				{FullPackageName: "example.com/app/tests", FunctionName: "Local"},
			},
		})

		require.Contains(t, code, "package main")
		require.Contains(t, code, `"example.com/app/steps"`)
		require.Contains(t, code, "steps.Initialize(ctx)")
		require.Contains(t, code, "\t\t\tLocal(ctx)")
	})
}
