//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=reportportal
package reportportal

import "context"

type (
	// Service is the remote reporting backend. Every call may fail; callers
	// decide whether a failure matters.
	Service interface {
		StartLaunch(ctx context.Context, rq *StartLaunchRQ) (*EntryCreatedRS, error)
		FinishLaunch(ctx context.Context, launchID string, rq *FinishExecutionRQ) error
		// StartTestItem opens an item under parentID, or at the launch root
		// when parentID is empty.
		StartTestItem(ctx context.Context, parentID string, rq *StartTestItemRQ) (*EntryCreatedRS, error)
		FinishTestItem(ctx context.Context, itemID string, rq *FinishTestItemRQ) error
		Log(ctx context.Context, rq *SaveLogRQ) error
	}
)
