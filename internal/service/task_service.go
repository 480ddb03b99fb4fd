package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/taskboard/panel/internal/model"
)

// TaskService proxies tasks to the task service.
type TaskService interface {
	List(ctx context.Context, token string, search *model.TaskSearch) []model.Task
	Add(ctx context.Context, token string, projectID, createdBy int, form model.TaskForm) model.ActionResult
	Edit(ctx context.Context, token string, projectID, taskID int, form model.TaskForm) model.ActionResult
	Delete(ctx context.Context, token string, taskID int) model.ActionResult
}

type taskService struct {
	tasks      TaskAPI
	activities ActivityService // optional, nil = skip
}

// NewTaskService creates a TaskService.
func NewTaskService(tasks TaskAPI, activities ActivityService) TaskService {
	return &taskService{tasks: tasks, activities: activities}
}

// List returns matching tasks. A failed fetch yields an empty list.
func (s *taskService) List(ctx context.Context, token string, search *model.TaskSearch) []model.Task {
	tasks, err := s.tasks.ListTasks(ctx, token, search)
	if err != nil {
		slog.ErrorContext(ctx, "list tasks failed", "error", err)
		return []model.Task{}
	}
	return tasks
}

func (s *taskService) Add(ctx context.Context, token string, projectID, createdBy int, form model.TaskForm) model.ActionResult {
	res := succeeded("Task", "added")
	if err := s.tasks.CreateTask(ctx, token, form.Request(projectID, createdBy)); err != nil {
		res = failed(ctx, "add task", err, "add", "task")
	}
	record(ctx, s.activities, ActivityTaskCreate, form.Title, res)
	return res
}

// Edit updates a task. The creator is left as it was.
func (s *taskService) Edit(ctx context.Context, token string, projectID, taskID int, form model.TaskForm) model.ActionResult {
	res := succeeded("Task", "updated")
	if err := s.tasks.UpdateTask(ctx, token, taskID, form.Request(projectID, 0)); err != nil {
		res = failed(ctx, "edit task", err, "edit", "task")
	}
	record(ctx, s.activities, ActivityTaskUpdate, form.Title, res)
	return res
}

func (s *taskService) Delete(ctx context.Context, token string, taskID int) model.ActionResult {
	res := succeeded("Task", "deleted")
	if err := s.tasks.DeleteTask(ctx, token, taskID); err != nil {
		res = failed(ctx, "delete task", err, "delete", "task")
	}
	record(ctx, s.activities, ActivityTaskDelete, "task "+strconv.Itoa(taskID), res)
	return res
}
