package reportportal

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Call is one recorded backend call.
type Call struct {
	// Op is the Service method name.
	Op string
	// Target is the parent id (StartTestItem), the closed id (Finish*) or
	// the item id (Log).
	Target string
	// ID is the id assigned by StartLaunch / StartTestItem.
	ID      string
	Request any
}

// MemoryService records every call in order. It never fails unless Fail
// returns an error for the operation.
type MemoryService struct {
	mu    sync.Mutex
	calls []Call

	// Fail, when set, is consulted before each call; a non-nil error is
	// returned instead of recording the call.
	Fail func(op string) error
}

var _ Service = (*MemoryService)(nil)

// NewMemoryService creates an empty recorder.
func NewMemoryService() *MemoryService {
	return &MemoryService{}
}

func (m *MemoryService) record(op, target string, rq any, assign bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail != nil {
		if err := m.Fail(op); err != nil {
			return "", err
		}
	}

	call := Call{Op: op, Target: target, Request: rq}
	if assign {
		call.ID = uuid.NewString()
	}
	m.calls = append(m.calls, call)
	return call.ID, nil
}

func (m *MemoryService) StartLaunch(_ context.Context, rq *StartLaunchRQ) (*EntryCreatedRS, error) {
	id, err := m.record("StartLaunch", "", rq, true)
	if err != nil {
		return nil, err
	}
	return &EntryCreatedRS{ID: id}, nil
}

func (m *MemoryService) FinishLaunch(_ context.Context, launchID string, rq *FinishExecutionRQ) error {
	_, err := m.record("FinishLaunch", launchID, rq, false)
	return err
}

func (m *MemoryService) StartTestItem(_ context.Context, parentID string, rq *StartTestItemRQ) (*EntryCreatedRS, error) {
	id, err := m.record("StartTestItem", parentID, rq, true)
	if err != nil {
		return nil, err
	}
	return &EntryCreatedRS{ID: id}, nil
}

func (m *MemoryService) FinishTestItem(_ context.Context, itemID string, rq *FinishTestItemRQ) error {
	_, err := m.record("FinishTestItem", itemID, rq, false)
	return err
}

func (m *MemoryService) Log(_ context.Context, rq *SaveLogRQ) error {
	_, err := m.record("Log", rq.ItemID, rq, false)
	return err
}

// Calls returns a copy of the recorded calls.
func (m *MemoryService) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Call(nil), m.calls...)
}

// Item returns the StartTestItem request that produced id, or nil.
func (m *MemoryService) Item(id string) *StartTestItemRQ {
	for _, c := range m.Calls() {
		if c.Op == "StartTestItem" && c.ID == id {
			return c.Request.(*StartTestItemRQ)
		}
	}
	return nil
}

// ItemByName returns the id of the first item started with name.
func (m *MemoryService) ItemByName(name string) (string, bool) {
	for _, c := range m.Calls() {
		if c.Op == "StartTestItem" && c.Request.(*StartTestItemRQ).Name == name {
			return c.ID, true
		}
	}
	return "", false
}

// Finished returns the FinishTestItem request for id, or nil when the item
// was never closed.
func (m *MemoryService) Finished(id string) *FinishTestItemRQ {
	for _, c := range m.Calls() {
		if c.Op == "FinishTestItem" && c.Target == id {
			return c.Request.(*FinishTestItemRQ)
		}
	}
	return nil
}

// Logs returns the log entries sent for itemID, in order.
func (m *MemoryService) Logs(itemID string) []*SaveLogRQ {
	var logs []*SaveLogRQ
	for _, c := range m.Calls() {
		if c.Op == "Log" && c.Target == itemID {
			logs = append(logs, c.Request.(*SaveLogRQ))
		}
	}
	return logs
}
