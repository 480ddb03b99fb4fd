package handler

import (
	"context"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/internal/service"
	"github.com/taskboard/panel/pkg/auth"
)

// --- mockAuthService ---

type mockAuthService struct {
	loginFunc func(ctx context.Context, form model.LoginForm) service.LoginResult
}

func (m *mockAuthService) Login(ctx context.Context, form model.LoginForm) service.LoginResult {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, form)
	}
	return service.LoginResult{}
}

// --- mockProjectService ---

type mockProjectService struct {
	listFunc           func(ctx context.Context, token string, search model.ProjectSearch) []model.Project
	listForSessionFunc func(ctx context.Context, token string, session *auth.Session) []model.Project
	getFunc            func(ctx context.Context, token string, id int) (*model.Project, error)
	addFunc            func(ctx context.Context, token string, form model.ProjectForm) model.ActionResult
	editFunc           func(ctx context.Context, token string, id int, form model.ProjectForm) model.ActionResult
	deleteFunc         func(ctx context.Context, token string, id int) model.ActionResult
	membersFunc        func(ctx context.Context, token string, projectID int) ([]model.ProjectMember, error)
	addMemberFunc      func(ctx context.Context, token string, projectID, userID int) model.ActionResult
	deleteMemberFunc   func(ctx context.Context, token string, memberID int) model.ActionResult
	syncMembersFunc    func(ctx context.Context, token string, projectID int, current []model.ProjectMember, users []model.User, selected []int) model.ActionResult
}

func (m *mockProjectService) List(ctx context.Context, token string, search model.ProjectSearch) []model.Project {
	if m.listFunc != nil {
		return m.listFunc(ctx, token, search)
	}
	return nil
}

func (m *mockProjectService) ListForSession(ctx context.Context, token string, session *auth.Session) []model.Project {
	if m.listForSessionFunc != nil {
		return m.listForSessionFunc(ctx, token, session)
	}
	return nil
}

func (m *mockProjectService) Get(ctx context.Context, token string, id int) (*model.Project, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, token, id)
	}
	return &model.Project{ID: id, Name: "Project", Status: model.StatusPending}, nil
}

func (m *mockProjectService) Add(ctx context.Context, token string, form model.ProjectForm) model.ActionResult {
	if m.addFunc != nil {
		return m.addFunc(ctx, token, form)
	}
	return model.Succeeded("Project successfully added.")
}

func (m *mockProjectService) Edit(ctx context.Context, token string, id int, form model.ProjectForm) model.ActionResult {
	if m.editFunc != nil {
		return m.editFunc(ctx, token, id, form)
	}
	return model.Succeeded("Project successfully updated.")
}

func (m *mockProjectService) Delete(ctx context.Context, token string, id int) model.ActionResult {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, token, id)
	}
	return model.Succeeded("Project successfully deleted.")
}

func (m *mockProjectService) Members(ctx context.Context, token string, projectID int) ([]model.ProjectMember, error) {
	if m.membersFunc != nil {
		return m.membersFunc(ctx, token, projectID)
	}
	return nil, nil
}

func (m *mockProjectService) AddMember(ctx context.Context, token string, projectID, userID int) model.ActionResult {
	if m.addMemberFunc != nil {
		return m.addMemberFunc(ctx, token, projectID, userID)
	}
	return model.Succeeded("Member successfully added.")
}

func (m *mockProjectService) DeleteMember(ctx context.Context, token string, memberID int) model.ActionResult {
	if m.deleteMemberFunc != nil {
		return m.deleteMemberFunc(ctx, token, memberID)
	}
	return model.Succeeded("Member successfully deleted.")
}

func (m *mockProjectService) SyncMembers(ctx context.Context, token string, projectID int, current []model.ProjectMember, users []model.User, selected []int) model.ActionResult {
	if m.syncMembersFunc != nil {
		return m.syncMembersFunc(ctx, token, projectID, current, users, selected)
	}
	return model.Succeeded("No member changes.")
}

// --- mockTaskService ---

type mockTaskService struct {
	listFunc   func(ctx context.Context, token string, search *model.TaskSearch) []model.Task
	addFunc    func(ctx context.Context, token string, projectID, createdBy int, form model.TaskForm) model.ActionResult
	editFunc   func(ctx context.Context, token string, projectID, taskID int, form model.TaskForm) model.ActionResult
	deleteFunc func(ctx context.Context, token string, taskID int) model.ActionResult
}

func (m *mockTaskService) List(ctx context.Context, token string, search *model.TaskSearch) []model.Task {
	if m.listFunc != nil {
		return m.listFunc(ctx, token, search)
	}
	return nil
}

func (m *mockTaskService) Add(ctx context.Context, token string, projectID, createdBy int, form model.TaskForm) model.ActionResult {
	if m.addFunc != nil {
		return m.addFunc(ctx, token, projectID, createdBy, form)
	}
	return model.Succeeded("Task successfully added.")
}

func (m *mockTaskService) Edit(ctx context.Context, token string, projectID, taskID int, form model.TaskForm) model.ActionResult {
	if m.editFunc != nil {
		return m.editFunc(ctx, token, projectID, taskID, form)
	}
	return model.Succeeded("Task successfully updated.")
}

func (m *mockTaskService) Delete(ctx context.Context, token string, taskID int) model.ActionResult {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, token, taskID)
	}
	return model.Succeeded("Task successfully deleted.")
}

// --- mockUserService ---

type mockUserService struct {
	listFunc          func(ctx context.Context, token string, search model.UserSearch) []model.User
	getFunc           func(ctx context.Context, token string, id int) (*model.User, error)
	addFunc           func(ctx context.Context, token string, form model.UserForm) model.ActionResult
	editFunc          func(ctx context.Context, token string, id int, form model.UserForm) model.ActionResult
	deleteFunc        func(ctx context.Context, token string, id int) model.ActionResult
	resetPasswordFunc func(ctx context.Context, token string, id int, password string) model.ActionResult
}

func (m *mockUserService) List(ctx context.Context, token string, search model.UserSearch) []model.User {
	if m.listFunc != nil {
		return m.listFunc(ctx, token, search)
	}
	return nil
}

func (m *mockUserService) Get(ctx context.Context, token string, id int) (*model.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, token, id)
	}
	return &model.User{ID: id}, nil
}

func (m *mockUserService) Add(ctx context.Context, token string, form model.UserForm) model.ActionResult {
	if m.addFunc != nil {
		return m.addFunc(ctx, token, form)
	}
	return model.Succeeded("User successfully added.")
}

func (m *mockUserService) Edit(ctx context.Context, token string, id int, form model.UserForm) model.ActionResult {
	if m.editFunc != nil {
		return m.editFunc(ctx, token, id, form)
	}
	return model.Succeeded("User successfully updated.")
}

func (m *mockUserService) Delete(ctx context.Context, token string, id int) model.ActionResult {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, token, id)
	}
	return model.Succeeded("User successfully deleted.")
}

func (m *mockUserService) ResetPassword(ctx context.Context, token string, id int, password string) model.ActionResult {
	if m.resetPasswordFunc != nil {
		return m.resetPasswordFunc(ctx, token, id, password)
	}
	return model.Succeeded("Reset password successfully.")
}

// --- mockActivityService ---

type mockActivityService struct {
	listRecentFunc  func(ctx context.Context, limit int) ([]*model.Activity, error)
	listByActorFunc func(ctx context.Context, actorID, limit int) ([]*model.Activity, error)
}

func (m *mockActivityService) Record(ctx context.Context, a *model.Activity) error {
	return nil
}

func (m *mockActivityService) ListRecent(ctx context.Context, limit int) ([]*model.Activity, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockActivityService) ListByActor(ctx context.Context, actorID, limit int) ([]*model.Activity, error) {
	if m.listByActorFunc != nil {
		return m.listByActorFunc(ctx, actorID, limit)
	}
	return nil, nil
}
