package service

import (
	"context"

	"github.com/taskboard/panel/internal/model"
)

// ---------------------------------------------------------------------------
// Mock AuthAPI
// ---------------------------------------------------------------------------

type mockAuthAPI struct {
	loginFunc      func(ctx context.Context, username, password string) (string, error)
	registerFunc   func(ctx context.Context, token string, req model.RegisterRequest) error
	listUsersFunc  func(ctx context.Context, token string, search model.UserSearch) ([]model.User, error)
	getUserFunc    func(ctx context.Context, token string, id int) (*model.User, error)
	updateUserFunc func(ctx context.Context, token string, id int, req model.UserUpdateRequest) error
	deleteUserFunc func(ctx context.Context, token string, id int) error
}

func (m *mockAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return "", nil
}
func (m *mockAuthAPI) Register(ctx context.Context, token string, req model.RegisterRequest) error {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, token, req)
	}
	return nil
}
func (m *mockAuthAPI) ListUsers(ctx context.Context, token string, search model.UserSearch) ([]model.User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx, token, search)
	}
	return nil, nil
}
func (m *mockAuthAPI) GetUser(ctx context.Context, token string, id int) (*model.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, token, id)
	}
	return nil, nil
}
func (m *mockAuthAPI) UpdateUser(ctx context.Context, token string, id int, req model.UserUpdateRequest) error {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(ctx, token, id, req)
	}
	return nil
}
func (m *mockAuthAPI) DeleteUser(ctx context.Context, token string, id int) error {
	if m.deleteUserFunc != nil {
		return m.deleteUserFunc(ctx, token, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock ProjectAPI
// ---------------------------------------------------------------------------

type mockProjectAPI struct {
	listProjectsFunc  func(ctx context.Context, token string, search model.ProjectSearch) ([]model.Project, error)
	getProjectFunc    func(ctx context.Context, token string, id int) (*model.Project, error)
	createProjectFunc func(ctx context.Context, token string, req model.ProjectCreateRequest) error
	updateProjectFunc func(ctx context.Context, token string, id int, req model.ProjectUpdateRequest) error
	deleteProjectFunc func(ctx context.Context, token string, id int) error
	listMembersFunc   func(ctx context.Context, token string, search model.MemberSearch) ([]model.ProjectMember, error)
	addMemberFunc     func(ctx context.Context, token string, req model.ProjectMemberRequest) error
	deleteMemberFunc  func(ctx context.Context, token string, memberID int) error
}

func (m *mockProjectAPI) ListProjects(ctx context.Context, token string, search model.ProjectSearch) ([]model.Project, error) {
	if m.listProjectsFunc != nil {
		return m.listProjectsFunc(ctx, token, search)
	}
	return nil, nil
}
func (m *mockProjectAPI) GetProject(ctx context.Context, token string, id int) (*model.Project, error) {
	if m.getProjectFunc != nil {
		return m.getProjectFunc(ctx, token, id)
	}
	return nil, nil
}
func (m *mockProjectAPI) CreateProject(ctx context.Context, token string, req model.ProjectCreateRequest) error {
	if m.createProjectFunc != nil {
		return m.createProjectFunc(ctx, token, req)
	}
	return nil
}
func (m *mockProjectAPI) UpdateProject(ctx context.Context, token string, id int, req model.ProjectUpdateRequest) error {
	if m.updateProjectFunc != nil {
		return m.updateProjectFunc(ctx, token, id, req)
	}
	return nil
}
func (m *mockProjectAPI) DeleteProject(ctx context.Context, token string, id int) error {
	if m.deleteProjectFunc != nil {
		return m.deleteProjectFunc(ctx, token, id)
	}
	return nil
}
func (m *mockProjectAPI) ListMembers(ctx context.Context, token string, search model.MemberSearch) ([]model.ProjectMember, error) {
	if m.listMembersFunc != nil {
		return m.listMembersFunc(ctx, token, search)
	}
	return nil, nil
}
func (m *mockProjectAPI) AddMember(ctx context.Context, token string, req model.ProjectMemberRequest) error {
	if m.addMemberFunc != nil {
		return m.addMemberFunc(ctx, token, req)
	}
	return nil
}
func (m *mockProjectAPI) DeleteMember(ctx context.Context, token string, memberID int) error {
	if m.deleteMemberFunc != nil {
		return m.deleteMemberFunc(ctx, token, memberID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock TaskAPI
// ---------------------------------------------------------------------------

type mockTaskAPI struct {
	listTasksFunc  func(ctx context.Context, token string, search *model.TaskSearch) ([]model.Task, error)
	getTaskFunc    func(ctx context.Context, token string, id int) (*model.Task, error)
	createTaskFunc func(ctx context.Context, token string, req model.TaskRequest) error
	updateTaskFunc func(ctx context.Context, token string, id int, req model.TaskRequest) error
	deleteTaskFunc func(ctx context.Context, token string, id int) error
}

func (m *mockTaskAPI) ListTasks(ctx context.Context, token string, search *model.TaskSearch) ([]model.Task, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(ctx, token, search)
	}
	return nil, nil
}
func (m *mockTaskAPI) GetTask(ctx context.Context, token string, id int) (*model.Task, error) {
	if m.getTaskFunc != nil {
		return m.getTaskFunc(ctx, token, id)
	}
	return nil, nil
}
func (m *mockTaskAPI) CreateTask(ctx context.Context, token string, req model.TaskRequest) error {
	if m.createTaskFunc != nil {
		return m.createTaskFunc(ctx, token, req)
	}
	return nil
}
func (m *mockTaskAPI) UpdateTask(ctx context.Context, token string, id int, req model.TaskRequest) error {
	if m.updateTaskFunc != nil {
		return m.updateTaskFunc(ctx, token, id, req)
	}
	return nil
}
func (m *mockTaskAPI) DeleteTask(ctx context.Context, token string, id int) error {
	if m.deleteTaskFunc != nil {
		return m.deleteTaskFunc(ctx, token, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock ActivityRepository
// ---------------------------------------------------------------------------

type mockActivityRepository struct {
	insertFunc      func(ctx context.Context, a *model.Activity) error
	listRecentFunc  func(ctx context.Context, limit int) ([]*model.Activity, error)
	listByActorFunc func(ctx context.Context, actorID, limit int) ([]*model.Activity, error)
}

func (m *mockActivityRepository) Insert(ctx context.Context, a *model.Activity) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, a)
	}
	return nil
}
func (m *mockActivityRepository) ListRecent(ctx context.Context, limit int) ([]*model.Activity, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, limit)
	}
	return nil, nil
}
func (m *mockActivityRepository) ListByActor(ctx context.Context, actorID, limit int) ([]*model.Activity, error) {
	if m.listByActorFunc != nil {
		return m.listByActorFunc(ctx, actorID, limit)
	}
	return nil, nil
}

// recorded returns an ActivityService that appends every activity to *out.
func recorded(out *[]*model.Activity) ActivityService {
	return NewActivityService(&mockActivityRepository{
		insertFunc: func(ctx context.Context, a *model.Activity) error {
			*out = append(*out, a)
			return nil
		},
	})
}
