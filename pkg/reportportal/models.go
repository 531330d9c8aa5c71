package reportportal

import (
	"strconv"
	"time"
)

// ItemType is the type of a test item in the ReportPortal hierarchy.
type ItemType string

const (
	ItemTypeSuite      ItemType = "SUITE"
	ItemTypeStory      ItemType = "STORY"
	ItemTypeTest       ItemType = "TEST"
	ItemTypeStep       ItemType = "STEP"
	ItemTypeBeforeTest ItemType = "BEFORE_TEST"
	ItemTypeAfterTest  ItemType = "AFTER_TEST"
)

// Status is the execution status of a launch or test item.
type Status string

const (
	StatusPassed  Status = "PASSED"
	StatusSkipped Status = "SKIPPED"
	StatusFailed  Status = "FAILED"
)

// Level is the severity of a log entry.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERROR"
	LevelUnknown Level = "UNKNOWN"
)

// Mode is the launch mode.
type Mode string

const (
	ModeDefault Mode = "DEFAULT"
	ModeDebug   Mode = "DEBUG"
)

// Issue types used when closing an item.
const (
	IssueNotIssue      = "NOT_ISSUE"
	IssueAutomationBug = "AUTOMATION_BUG"
)

// Timestamp is serialized as epoch milliseconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON writes the timestamp as epoch milliseconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

// UnmarshalJSON reads epoch milliseconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	t.Time = time.UnixMilli(ms)
	return nil
}

// Attribute is a key/value label. Tags are sent as value-only attributes.
type Attribute struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

// AttributesFromTags converts tags into value-only attributes.
func AttributesFromTags(tags []string) []Attribute {
	if len(tags) == 0 {
		return nil
	}
	attrs := make([]Attribute, len(tags))
	for i, tag := range tags {
		attrs[i] = Attribute{Value: tag}
	}
	return attrs
}

// StartLaunchRQ opens a launch.
type StartLaunchRQ struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	StartTime   Timestamp   `json:"startTime"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	Mode        Mode        `json:"mode,omitempty"`
}

// FinishExecutionRQ closes a launch.
type FinishExecutionRQ struct {
	EndTime Timestamp `json:"endTime"`
	Status  Status    `json:"status,omitempty"`
}

// StartTestItemRQ opens a test item.
type StartTestItemRQ struct {
	LaunchID    string      `json:"launchUuid"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	StartTime   Timestamp   `json:"startTime"`
	Type        ItemType    `json:"type"`
	CodeRef     string      `json:"codeRef,omitempty"`
	HasStats    *bool       `json:"hasStats,omitempty"`
}

// Issue classifies a non-passed item.
type Issue struct {
	IssueType string `json:"issueType"`
	Comment   string `json:"comment,omitempty"`
}

// FinishTestItemRQ closes a test item.
type FinishTestItemRQ struct {
	LaunchID string    `json:"launchUuid"`
	EndTime  Timestamp `json:"endTime"`
	Status   Status    `json:"status,omitempty"`
	Issue    *Issue    `json:"issue,omitempty"`
}

// File is an attachment sent with a log entry.
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"-"`
	Content     []byte `json:"-"`
}

// SaveLogRQ appends a log entry to an item.
type SaveLogRQ struct {
	LaunchID string    `json:"launchUuid"`
	ItemID   string    `json:"itemUuid,omitempty"`
	Time     Timestamp `json:"time"`
	Message  string    `json:"message"`
	Level    Level     `json:"level"`
	File     *File     `json:"file,omitempty"`
}

// EntryCreatedRS is returned when a launch or item is created.
type EntryCreatedRS struct {
	ID string `json:"id"`
}
