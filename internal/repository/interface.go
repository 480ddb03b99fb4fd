package repository

import (
	"context"

	"github.com/taskboard/panel/internal/model"
)

// DB checks that the database connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// ActivityRepository stores the audit trail of panel actions.
type ActivityRepository interface {
	// Insert appends an activity. ID and CreatedAt are filled in when empty.
	Insert(ctx context.Context, a *model.Activity) error
	// ListRecent returns the newest activities first.
	ListRecent(ctx context.Context, limit int) ([]*model.Activity, error)
	// ListByActor returns the newest activities recorded for one user.
	ListByActor(ctx context.Context, actorID, limit int) ([]*model.Activity, error)
}
