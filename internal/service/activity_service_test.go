package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskboard/panel/internal/model"
)

func TestActivityService_ListRecent(t *testing.T) {
	svc := NewActivityService(&mockActivityRepository{
		listRecentFunc: func(ctx context.Context, limit int) ([]*model.Activity, error) {
			if limit != 20 {
				t.Errorf("expected limit 20, got %d", limit)
			}
			return []*model.Activity{{ID: "a1"}}, nil
		},
	})
	items, err := svc.ListRecent(context.Background(), 20)
	if err != nil || len(items) != 1 {
		t.Errorf("unexpected result %v %v", items, err)
	}
}

func TestActivityService_ListByActor(t *testing.T) {
	svc := NewActivityService(&mockActivityRepository{
		listByActorFunc: func(ctx context.Context, actorID, limit int) ([]*model.Activity, error) {
			return nil, errors.New("db down")
		},
	})
	if _, err := svc.ListByActor(context.Background(), 1, 10); err == nil {
		t.Error("expected error")
	}
}

func TestRecord_NilServiceSkips(t *testing.T) {
	record(context.Background(), nil, ActivityTaskDelete, "task 1", model.Succeeded("ok"))
}

func TestRecord_InsertErrorIsSwallowed(t *testing.T) {
	svc := NewActivityService(&mockActivityRepository{
		insertFunc: func(ctx context.Context, a *model.Activity) error {
			return errors.New("db down")
		},
	})
	record(context.Background(), svc, ActivityTaskDelete, "task 1", model.Failed("nope"))
}
