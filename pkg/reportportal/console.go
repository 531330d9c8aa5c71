package reportportal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Symbols for item status
const (
	symbolPass = "✓"
	symbolFail = "✗"
	symbolSkip = "-"
)

// Summary counts finished items per type and status.
type Summary struct {
	Items map[ItemType]map[Status]int
	Logs  int
}

func (s *Summary) add(t ItemType, st Status) {
	if s.Items == nil {
		s.Items = map[ItemType]map[Status]int{}
	}
	if s.Items[t] == nil {
		s.Items[t] = map[Status]int{}
	}
	s.Items[t][st]++
}

type consoleItem struct {
	name     string
	itemType ItemType
	depth    int
}

// ConsoleService renders the reporting hierarchy as an indented tree instead
// of sending it to a server. Ids are random UUIDs.
type ConsoleService struct {
	out     io.Writer
	mu      sync.Mutex
	items   map[string]consoleItem
	summary Summary

	keyword *color.Color
	text    *color.Color
	green   *color.Color
	red     *color.Color
	yellow  *color.Color
	dim     *color.Color
}

var _ Service = (*ConsoleService)(nil)

// NewConsoleService creates a console backend writing to out (stdout when nil).
func NewConsoleService(out io.Writer, useColors bool) *ConsoleService {
	if out == nil {
		out = os.Stdout
	}

	s := &ConsoleService{
		out:     out,
		items:   map[string]consoleItem{},
		keyword: color.New(color.FgHiYellow),
		text:    color.New(color.FgWhite),
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
		yellow:  color.New(color.FgYellow),
		dim:     color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{s.keyword, s.text, s.green, s.red, s.yellow, s.dim} {
		if useColors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

func (s *ConsoleService) writeln(depth int, line string) {
	fmt.Fprintln(s.out, strings.Repeat("  ", depth)+line)
}

// StartLaunch prints the launch header.
func (s *ConsoleService) StartLaunch(_ context.Context, rq *StartLaunchRQ) (*EntryCreatedRS, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	header := s.keyword.Sprint("Launch:") + " " + s.text.Sprint(rq.Name)
	if rq.Mode == ModeDebug {
		header += s.dim.Sprint(" (debug)")
	}
	s.writeln(0, header)

	return &EntryCreatedRS{ID: uuid.NewString()}, nil
}

// FinishLaunch prints the summary.
func (s *ConsoleService) FinishLaunch(_ context.Context, _ string, _ *FinishExecutionRQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out)
	for _, t := range []ItemType{ItemTypeStory, ItemTypeSuite, ItemTypeTest, ItemTypeStep, ItemTypeBeforeTest, ItemTypeAfterTest} {
		counts, ok := s.summary.Items[t]
		if !ok {
			continue
		}
		total := counts[StatusPassed] + counts[StatusFailed] + counts[StatusSkipped]
		line := fmt.Sprintf("%d %s item(s)", total, strings.ToLower(string(t)))

		parts := []string{}
		if n := counts[StatusPassed]; n > 0 {
			parts = append(parts, s.green.Sprintf("%d passed", n))
		}
		if n := counts[StatusFailed]; n > 0 {
			parts = append(parts, s.red.Sprintf("%d failed", n))
		}
		if n := counts[StatusSkipped]; n > 0 {
			parts = append(parts, s.yellow.Sprintf("%d skipped", n))
		}
		if len(parts) > 0 {
			line += " (" + strings.Join(parts, ", ") + ")"
		}
		fmt.Fprintln(s.out, line)
	}
	fmt.Fprintf(s.out, "%d log entr(ies)\n", s.summary.Logs)

	return nil
}

// StartTestItem prints the item name one level below its parent.
func (s *ConsoleService) StartTestItem(_ context.Context, parentID string, rq *StartTestItemRQ) (*EntryCreatedRS, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	depth := 1
	if parent, ok := s.items[parentID]; ok {
		depth = parent.depth + 1
	}

	id := uuid.NewString()
	s.items[id] = consoleItem{name: rq.Name, itemType: rq.Type, depth: depth}

	line := s.text.Sprint(rq.Name)
	if len(rq.Attributes) > 0 {
		tags := make([]string, len(rq.Attributes))
		for i, a := range rq.Attributes {
			tags[i] = a.Value
		}
		line += " " + s.dim.Sprint(strings.Join(tags, " "))
	}
	s.writeln(depth, s.keyword.Sprint(string(rq.Type))+" "+line)

	return &EntryCreatedRS{ID: id}, nil
}

// FinishTestItem prints the status symbol of the item.
func (s *ConsoleService) FinishTestItem(_ context.Context, itemID string, rq *FinishTestItemRQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return fmt.Errorf("unknown item %s", itemID)
	}
	delete(s.items, itemID)

	if rq.Status == "" {
		return nil
	}
	s.summary.add(item.itemType, rq.Status)

	var symbol string
	switch rq.Status {
	case StatusPassed:
		symbol = s.green.Sprint(symbolPass)
	case StatusSkipped:
		symbol = s.yellow.Sprint(symbolSkip)
	default:
		symbol = s.red.Sprint(symbolFail)
	}

	line := fmt.Sprintf("%s %s", symbol, item.name)
	if rq.Issue != nil {
		line += s.dim.Sprintf(" [%s]", rq.Issue.IssueType)
	}
	s.writeln(item.depth, line)

	return nil
}

// Log prints the message indented below its item.
func (s *ConsoleService) Log(_ context.Context, rq *SaveLogRQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary.Logs++

	depth := 1
	if item, ok := s.items[rq.ItemID]; ok {
		depth = item.depth + 1
	}

	c := s.dim
	switch rq.Level {
	case LevelError:
		c = s.red
	case LevelWarn:
		c = s.yellow
	}

	message := rq.Message
	if rq.File != nil {
		message = fmt.Sprintf("%s <%s, %d bytes>", message, rq.File.ContentType, len(rq.File.Content))
	}
	for _, line := range strings.Split(strings.TrimRight(message, "\r\n"), "\n") {
		s.writeln(depth, c.Sprint(strings.TrimRight(line, "\r")))
	}

	return nil
}

// Summary returns the counts accumulated so far.
func (s *ConsoleService) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := Summary{Logs: s.summary.Logs, Items: map[ItemType]map[Status]int{}}
	for t, counts := range s.summary.Items {
		cp.Items[t] = map[Status]int{}
		for st, n := range counts {
			cp.Items[t][st] = n
		}
	}
	return cp
}
