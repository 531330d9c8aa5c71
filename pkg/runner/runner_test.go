package runner

import (
	"errors"
	"testing"

	messages "github.com/cucumber/messages/go/v21"
	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_extractTagNames(t *testing.T) {
	t.Run("extracts tag names with @ prefix", func(t *testing.T) {
		tags := []*messages.PickleTag{
			{Name: "@smoke"},
			{Name: "@fast"},
		}
		names := extractTagNames(tags)
		require.Equal(t, []string{"@smoke", "@fast"}, names)
	})

	t.Run("returns empty slice for no tags", func(t *testing.T) {
		names := extractTagNames([]*messages.PickleTag{})
		require.Empty(t, names)
	})
}

func Test_filterPickles(t *testing.T) {
	pickles := []*messages.Pickle{
		{Name: "Smoke Fast", Tags: []*messages.PickleTag{{Name: "@smoke"}}},
		{Name: "UI Fast", Tags: []*messages.PickleTag{{Name: "@ui"}}},
		{Name: "Smoke Slow", Tags: []*messages.PickleTag{{Name: "@smoke"}, {Name: "@slow"}}},
		{Name: "Other", Tags: []*messages.PickleTag{{Name: "@other"}}},
	}

	tests := []struct {
		expression string
		expected   []string
	}{
		{"", []string{"Smoke Fast", "UI Fast", "Smoke Slow", "Other"}},
		{"@smoke", []string{"Smoke Fast", "Smoke Slow"}},
		{"@smoke and @slow", []string{"Smoke Slow"}},
		{"@ui or @other", []string{"UI Fast", "Other"}},
		{"not @slow", []string{"Smoke Fast", "UI Fast", "Other"}},
		{"(@smoke or @ui) and not @slow", []string{"Smoke Fast", "UI Fast"}},
		{"@nonexistent", nil},
	}

	for _, tt := range tests {
		t.Run("handles "+tt.expression, func(t *testing.T) {
			evaluator, err := tagexpressions.Parse(tt.expression)
			require.NoError(t, err)

			var names []string
			for _, p := range filterPickles(pickles, evaluator) {
				names = append(names, p.Name)
			}
			require.Equal(t, tt.expected, names)
		})
	}
}

// executed records the pickle names each document was executed with.
func executed(calls map[string][]string) func(*messages.GherkinDocument, []*messages.Pickle) error {
	return func(doc *messages.GherkinDocument, pickles []*messages.Pickle) error {
		for _, p := range pickles {
			calls[doc.Feature.Name] = append(calls[doc.Feature.Name], p.Name)
		}
		return nil
	}
}

func TestCucumberRunner_Run(t *testing.T) {
	t.Run("executes every feature when no tags specified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := NewMockExecutor(ctrl)
		calls := map[string][]string{}

		gomock.InOrder(
			exec.EXPECT().Begin(),
			exec.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(executed(calls)).Times(2),
			exec.EXPECT().End(),
		)

		err := NewCucumberRunner(exec).WithFeaturesDirectories("testdata").Run()

		require.NoError(t, err)
		require.Equal(t, []string{"Pay an invoice", "Export every invoice"}, calls["Invoices"])
		require.Equal(t, []string{"Show name", "Show email", "Edit own profile"}, calls["Profile"])
	})

	t.Run("inherits feature tags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := NewMockExecutor(ctrl)
		calls := map[string][]string{}

		exec.EXPECT().Begin()
		exec.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(executed(calls))
		exec.EXPECT().End()

		err := NewCucumberRunner(exec).
			WithFeaturesDirectories("testdata").
			WithTags("@billing and not @slow").
			Run()

		require.NoError(t, err)
		require.Equal(t, map[string][]string{"Invoices": {"Pay an invoice"}}, calls)
	})

	t.Run("filters examples and rules by tag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := NewMockExecutor(ctrl)
		calls := map[string][]string{}

		exec.EXPECT().Begin()
		exec.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(executed(calls))
		exec.EXPECT().End()

		err := NewCucumberRunner(exec).
			WithFeaturesDirectories("testdata/other").
			WithTags("@ui or @smoke").
			Run()

		require.NoError(t, err)
		require.Equal(t, []string{"Show name", "Edit own profile"}, calls["Profile"])
	})

	t.Run("does not execute features if tags do not match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := NewMockExecutor(ctrl)

		exec.EXPECT().Begin()
		exec.EXPECT().End()

		err := NewCucumberRunner(exec).
			WithFeaturesDirectories("testdata").
			WithTags("@nonexistent").
			Run()

		require.NoError(t, err)
	})

	t.Run("keeps running after a failing feature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := NewMockExecutor(ctrl)

		exec.EXPECT().Begin()
		exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(errors.New("step failed"))
		exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)
		exec.EXPECT().End()

		err := NewCucumberRunner(exec).WithFeaturesDirectories("testdata").Run()

		require.Error(t, err)
		require.Contains(t, err.Error(), "testdata/billing/invoice.feature")
		require.Contains(t, err.Error(), "step failed")
	})

	t.Run("returns error for invalid tag expression", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := NewMockExecutor(ctrl)

		err := NewCucumberRunner(exec).
			WithFeaturesDirectories("testdata").
			WithTags("invalid expression ((").
			Run()

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid tag expression")
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exec := NewMockExecutor(ctrl)

		err := NewCucumberRunner(exec).WithFeaturesDirectories("testdata/missing").Run()

		require.Error(t, err)
	})
}
