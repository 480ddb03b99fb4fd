package service

import (
	"context"

	"github.com/taskboard/panel/internal/model"
)

// AuthAPI is the auth service surface used here; *api.AuthClient satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, token string, req model.RegisterRequest) error
	ListUsers(ctx context.Context, token string, search model.UserSearch) ([]model.User, error)
	GetUser(ctx context.Context, token string, id int) (*model.User, error)
	UpdateUser(ctx context.Context, token string, id int, req model.UserUpdateRequest) error
	DeleteUser(ctx context.Context, token string, id int) error
}

// ProjectAPI is the project service surface; *api.ProjectClient satisfies it.
type ProjectAPI interface {
	ListProjects(ctx context.Context, token string, search model.ProjectSearch) ([]model.Project, error)
	GetProject(ctx context.Context, token string, id int) (*model.Project, error)
	CreateProject(ctx context.Context, token string, req model.ProjectCreateRequest) error
	UpdateProject(ctx context.Context, token string, id int, req model.ProjectUpdateRequest) error
	DeleteProject(ctx context.Context, token string, id int) error
	ListMembers(ctx context.Context, token string, search model.MemberSearch) ([]model.ProjectMember, error)
	AddMember(ctx context.Context, token string, req model.ProjectMemberRequest) error
	DeleteMember(ctx context.Context, token string, memberID int) error
}

// TaskAPI is the task service surface; *api.TaskClient satisfies it.
type TaskAPI interface {
	ListTasks(ctx context.Context, token string, search *model.TaskSearch) ([]model.Task, error)
	GetTask(ctx context.Context, token string, id int) (*model.Task, error)
	CreateTask(ctx context.Context, token string, req model.TaskRequest) error
	UpdateTask(ctx context.Context, token string, id int, req model.TaskRequest) error
	DeleteTask(ctx context.Context, token string, id int) error
}
