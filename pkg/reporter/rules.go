package reporter

import (
	"mime"
	"slices"
	"strings"

	"github.com/denizgursoy/cacik-rp/pkg/cacik"
	rp "github.com/denizgursoy/cacik-rp/pkg/reportportal"
	"github.com/gabriel-vasile/mimetype"
)

const (
	colonInfix         = ": "
	tableSeparator     = "|"
	docStringDecorator = "\n\"\"\"\n"
	stepDecorator      = "-------------------------"

	// fallbackAttachmentName is used when the MIME type is not registered.
	fallbackAttachmentName = "embedding"

	pendingComment   = "Pending step"
	undefinedComment = "Undefined step"
)

// MapStatus maps a raw engine outcome to a ReportPortal status.
func MapStatus(raw string) rp.Status {
	switch {
	case cacik.IsStatus(raw, cacik.StatusPassed):
		return rp.StatusPassed
	case cacik.IsStatus(raw, cacik.StatusSkipped):
		return rp.StatusSkipped
	default:
		return rp.StatusFailed
	}
}

// MapLevel maps a raw engine outcome to a log level.
func MapLevel(raw string) rp.Level {
	switch {
	case cacik.IsStatus(raw, cacik.StatusPassed):
		return rp.LevelInfo
	case cacik.IsStatus(raw, cacik.StatusSkipped):
		return rp.LevelWarn
	default:
		return rp.LevelError
	}
}

// IssueComment returns the commentary a raw outcome adds to its scenario,
// or "" when it adds none.
func IssueComment(raw string) string {
	switch {
	case cacik.IsStatus(raw, cacik.StatusPending):
		return pendingComment
	case cacik.IsStatus(raw, cacik.StatusUndefined):
		return undefinedComment
	default:
		return ""
	}
}

// IssueFor decides the issue attached when an item closes.
func IssueFor(status rp.Status, comments string) *rp.Issue {
	if status == rp.StatusSkipped {
		return &rp.Issue{IssueType: rp.IssueNotIssue}
	}
	if comments != "" {
		return &rp.Issue{IssueType: rp.IssueAutomationBug, Comment: comments}
	}
	return nil
}

// BuildStatementName builds prefix + keyword + infix + name + suffix.
func BuildStatementName(prefix, keyword, infix, name, suffix string) string {
	return prefix + keyword + infix + name + suffix
}

// ExtractTags flattens tags into a sorted set of names.
func ExtractTags(tags []cacik.Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// BuildMultilineArgument renders the DataTable and DocString of a step, table
// first. A step without arguments renders as "".
func BuildMultilineArgument(step cacik.Step) string {
	var b strings.Builder

	if step.Rows != nil {
		b.WriteString("\r\n")
		for _, row := range step.Rows.Rows() {
			b.WriteString(tableSeparator)
			for _, cell := range row {
				b.WriteString(" ")
				b.WriteString(cell)
				b.WriteString(" ")
				b.WriteString(tableSeparator)
			}
			b.WriteString("\r\n")
		}
	}

	if step.DocString != nil {
		b.WriteString(docStringDecorator)
		b.WriteString(step.DocString.Value)
		b.WriteString(docStringDecorator)
	}

	return b.String()
}

// AttachmentName resolves the top-level type name of a MIME type ("image"
// for "image/png"). Malformed or unregistered types fall back to
// "embedding" with a warning.
func AttachmentName(logger cacik.Logger, mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		logger.Warn("mime type not found", "mime_type", mimeType, "err", err)
		return fallbackAttachmentName
	}

	known := mimetype.Lookup(mediaType)
	if known == nil {
		logger.Warn("mime type not found", "mime_type", mimeType)
		return fallbackAttachmentName
	}

	topLevel, _, _ := strings.Cut(known.String(), "/")
	return topLevel
}

func decorate(message string) string {
	return stepDecorator + message + stepDecorator
}
