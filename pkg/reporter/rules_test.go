package reporter

import (
	"testing"

	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	rp "github.com/denizgursoy/cacik-rp/pkg/reportportal"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(msg string, args ...any) {}
func (l *recordingLogger) Info(msg string, args ...any)  {}
func (l *recordingLogger) Warn(msg string, args ...any)  { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(msg string, args ...any) {}

func TestJoin(t *testing.T) {
	statuses := []rp.Status{rp.StatusPassed, rp.StatusSkipped, rp.StatusFailed}

	t.Run("should follow the lattice", func(t *testing.T) {
		tests := []struct {
			current, next, expected rp.Status
		}{
			{rp.StatusPassed, rp.StatusPassed, rp.StatusPassed},
			{rp.StatusPassed, rp.StatusSkipped, rp.StatusSkipped},
			{rp.StatusPassed, rp.StatusFailed, rp.StatusFailed},
			{rp.StatusSkipped, rp.StatusPassed, rp.StatusSkipped},
			{rp.StatusSkipped, rp.StatusSkipped, rp.StatusSkipped},
			{rp.StatusSkipped, rp.StatusFailed, rp.StatusFailed},
			{rp.StatusFailed, rp.StatusPassed, rp.StatusFailed},
			{rp.StatusFailed, rp.StatusSkipped, rp.StatusFailed},
			{rp.StatusFailed, rp.StatusFailed, rp.StatusFailed},
		}
		for _, tt := range tests {
			require.Equal(t, tt.expected, Join(tt.current, tt.next), "%s + %s", tt.current, tt.next)
		}
	})

	t.Run("should be independent of result order", func(t *testing.T) {
		fold := func(seq []rp.Status) rp.Status {
			status := rp.StatusPassed
			for _, s := range seq {
				status = Join(status, s)
			}
			return status
		}

		for _, a := range statuses {
			for _, b := range statuses {
				for _, c := range statuses {
					expected := fold([]rp.Status{a, b, c})
					require.Equal(t, expected, fold([]rp.Status{a, c, b}))
					require.Equal(t, expected, fold([]rp.Status{b, a, c}))
					require.Equal(t, expected, fold([]rp.Status{b, c, a}))
					require.Equal(t, expected, fold([]rp.Status{c, a, b}))
					require.Equal(t, expected, fold([]rp.Status{c, b, a}))
				}
			}
		}
	})

	t.Run("should never lower a failed status", func(t *testing.T) {
		for _, next := range statuses {
			require.Equal(t, rp.StatusFailed, Join(rp.StatusFailed, next))
		}
	})
}

func TestMapStatusAndLevel(t *testing.T) {
	tests := []struct {
		raw    string
		status rp.Status
		level  rp.Level
	}{
		{"passed", rp.StatusPassed, rp.LevelInfo},
		{"PASSED", rp.StatusPassed, rp.LevelInfo},
		{"skipped", rp.StatusSkipped, rp.LevelWarn},
		{"Skipped", rp.StatusSkipped, rp.LevelWarn},
		{" passed", rp.StatusPassed, rp.LevelInfo},
		{"SKIPPED\n", rp.StatusSkipped, rp.LevelWarn},
		{"failed", rp.StatusFailed, rp.LevelError},
		{"undefined", rp.StatusFailed, rp.LevelError},
		{"pending", rp.StatusFailed, rp.LevelError},
		{"ambiguous", rp.StatusFailed, rp.LevelError},
		{"", rp.StatusFailed, rp.LevelError},
	}

	for _, tt := range tests {
		t.Run("should map "+tt.raw, func(t *testing.T) {
			require.Equal(t, tt.status, MapStatus(tt.raw))
			require.Equal(t, tt.level, MapLevel(tt.raw))
		})
	}
}

func TestIssueComment(t *testing.T) {
	require.Equal(t, "Pending step", IssueComment("pending"))
	require.Equal(t, "Undefined step", IssueComment("UNDEFINED"))
	require.Equal(t, "Pending step", IssueComment(" Pending "))
	require.Empty(t, IssueComment("failed"))
	require.Empty(t, IssueComment("passed"))
}

func TestIssueFor(t *testing.T) {
	t.Run("should mark skipped items as not an issue", func(t *testing.T) {
		require.Equal(t, &rp.Issue{IssueType: rp.IssueNotIssue}, IssueFor(rp.StatusSkipped, "Pending step"))
	})

	t.Run("should attach commentary as automation bug", func(t *testing.T) {
		require.Equal(t, &rp.Issue{IssueType: rp.IssueAutomationBug, Comment: "Undefined step"}, IssueFor(rp.StatusFailed, "Undefined step"))
	})

	t.Run("should attach nothing without commentary", func(t *testing.T) {
		require.Nil(t, IssueFor(rp.StatusFailed, ""))
		require.Nil(t, IssueFor(rp.StatusPassed, ""))
	})
}

func TestBuildStatementName(t *testing.T) {
	require.Equal(t, "Scenario: Outline Demo [1]", BuildStatementName("", "Scenario", ": ", "Outline Demo", " [1]"))
	require.Equal(t, "BACKGROUND: Given a user", BuildStatementName("BACKGROUND: ", "Given ", "", "a user", ""))
}

func TestExtractTags(t *testing.T) {
	t.Run("should collapse duplicates", func(t *testing.T) {
		tags := []cacik.Tag{{Name: "@b"}, {Name: "@a"}, {Name: "@b"}}

		require.Equal(t, []string{"@a", "@b"}, ExtractTags(tags))
	})

	t.Run("should return nil for no tags", func(t *testing.T) {
		require.Nil(t, ExtractTags(nil))
	})
}

func TestBuildMultilineArgument(t *testing.T) {
	table := cacik.NewTable([][]string{{"name", "age"}, {"Alice", "30"}})

	t.Run("should render table rows with separators", func(t *testing.T) {
		got := BuildMultilineArgument(cacik.Step{Rows: &table})

		require.Equal(t, "\r\n| name | age |\r\n| Alice | 30 |\r\n", got)
	})

	t.Run("should wrap doc string", func(t *testing.T) {
		got := BuildMultilineArgument(cacik.Step{DocString: &cacik.DocString{Value: "hello"}})

		require.Equal(t, "\n\"\"\"\nhello\n\"\"\"\n", got)
	})

	t.Run("should render table before doc string", func(t *testing.T) {
		got := BuildMultilineArgument(cacik.Step{Rows: &table, DocString: &cacik.DocString{Value: "x"}})

		require.Equal(t, "\r\n| name | age |\r\n| Alice | 30 |\r\n\n\"\"\"\nx\n\"\"\"\n", got)
	})

	t.Run("should be empty without arguments", func(t *testing.T) {
		require.Empty(t, BuildMultilineArgument(cacik.Step{Text: "plain"}))
	})
}

func TestAttachmentName(t *testing.T) {
	t.Run("should resolve top-level type", func(t *testing.T) {
		logger := &recordingLogger{}

		require.Equal(t, "image", AttachmentName(logger, "image/png"))
		require.Equal(t, "text", AttachmentName(logger, "text/plain; charset=utf-8"))
		require.Equal(t, "application", AttachmentName(logger, "application/json"))
		require.Equal(t, "application", AttachmentName(logger, "Application/PDF"))
		require.Equal(t, "audio", AttachmentName(logger, "audio/mpeg"))
		require.Equal(t, "video", AttachmentName(logger, "video/mp4"))
		require.Empty(t, logger.warnings)
	})

	t.Run("should fall back to embedding and warn", func(t *testing.T) {
		for _, mimeType := range []string{"", "not a mime", "x-cacik/unknown", "image/x-cacik-unknown"} {
			logger := &recordingLogger{}

			require.Equal(t, "embedding", AttachmentName(logger, mimeType), mimeType)
			require.Len(t, logger.warnings, 1)
		}
	})
}

func TestFlavorByName(t *testing.T) {
	t.Run("should return known flavors", func(t *testing.T) {
		f, err := FlavorByName("scenario")
		require.NoError(t, err)
		require.Equal(t, rp.ItemTypeStep, f.ScenarioType)
		require.NotNil(t, f.Root)

		f, err = FlavorByName("step")
		require.NoError(t, err)
		require.Equal(t, rp.ItemTypeTest, f.ScenarioType)
		require.Nil(t, f.Root)
	})

	t.Run("should reject unknown flavor", func(t *testing.T) {
		_, err := FlavorByName("feature")

		require.Error(t, err)
	})
}
