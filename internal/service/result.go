package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/pkg/api"
	"github.com/taskboard/panel/pkg/auth"
)

func succeeded(resource, past string) model.ActionResult {
	return model.Succeeded(fmt.Sprintf("%s successfully %s.", resource, past))
}

// failed logs err and turns it into a user-facing result. The service's own
// message wins over the generic one.
func failed(ctx context.Context, op string, err error, verb, resource string) model.ActionResult {
	slog.ErrorContext(ctx, op+" failed", "error", err, "status", api.StatusOf(err))
	if msg := api.MessageOf(err); msg != "" {
		return model.Failed(msg)
	}
	return model.Failed(fmt.Sprintf("Failed to %s %s. Please try again.", verb, resource))
}

// record appends the outcome of a mutating action to the activity log. The
// actor comes from the session in ctx. A nil service disables recording.
func record(ctx context.Context, activities ActivityService, kind, target string, res model.ActionResult) {
	if activities == nil {
		return
	}
	a := &model.Activity{
		Type:    kind,
		Target:  target,
		Success: res.Success,
		Message: res.Message,
	}
	if s := auth.SessionFromContext(ctx); s != nil {
		a.ActorID = s.UserID
		a.ActorName = s.FullName
		if a.ActorName == "" {
			a.ActorName = s.Username
		}
	}
	if err := activities.Record(ctx, a); err != nil {
		slog.WarnContext(ctx, "record activity failed", "type", kind, "error", err)
	}
}
