package service

import (
	"context"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/internal/repository"
)

// Activity types recorded by the action services.
const (
	ActivityLogin         = "auth.login"
	ActivityUserCreate    = "user.create"
	ActivityUserUpdate    = "user.update"
	ActivityUserDelete    = "user.delete"
	ActivityPasswordReset = "user.reset_password"
	ActivityProjectCreate = "project.create"
	ActivityProjectUpdate = "project.update"
	ActivityProjectDelete = "project.delete"
	ActivityMembersUpdate = "project.members"
	ActivityTaskCreate    = "task.create"
	ActivityTaskUpdate    = "task.update"
	ActivityTaskDelete    = "task.delete"
)

// ActivityService provides access to the audit trail of panel actions.
type ActivityService interface {
	Record(ctx context.Context, a *model.Activity) error
	ListRecent(ctx context.Context, limit int) ([]*model.Activity, error)
	ListByActor(ctx context.Context, actorID, limit int) ([]*model.Activity, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

// NewActivityService creates an ActivityService.
func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) Record(ctx context.Context, a *model.Activity) error {
	return s.repo.Insert(ctx, a)
}

func (s *activityService) ListRecent(ctx context.Context, limit int) ([]*model.Activity, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *activityService) ListByActor(ctx context.Context, actorID, limit int) ([]*model.Activity, error) {
	return s.repo.ListByActor(ctx, actorID, limit)
}
