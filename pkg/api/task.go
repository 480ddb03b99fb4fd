package api

import (
	"context"
	"net/http"
	"time"

	"github.com/taskboard/panel/internal/model"
)

type TaskClient struct {
	*Client
}

func NewTaskClient(baseURL string, timeout time.Duration) *TaskClient {
	return &TaskClient{Client: NewClient(baseURL, timeout)}
}

// ListTasks returns tasks matching search. A nil search lists everything.
func (c *TaskClient) ListTasks(ctx context.Context, token string, search *model.TaskSearch) ([]model.Task, error) {
	var tasks []model.Task
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/tasks", search.Query(), token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *TaskClient) GetTask(ctx context.Context, token string, id int) (*model.Task, error) {
	var t model.Task
	if _, err := c.do(ctx, http.MethodGet, idPath("/api/v1/tasks", id), nil, token, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TaskClient) CreateTask(ctx context.Context, token string, req model.TaskRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/tasks", nil, token, req, nil)
	return err
}

func (c *TaskClient) UpdateTask(ctx context.Context, token string, id int, req model.TaskRequest) error {
	_, err := c.do(ctx, http.MethodPatch, idPath("/api/v1/tasks", id), nil, token, req, nil)
	return err
}

func (c *TaskClient) DeleteTask(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, idPath("/api/v1/tasks", id), nil, token, nil, nil)
	return err
}
