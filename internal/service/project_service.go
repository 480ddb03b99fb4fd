package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/pkg/auth"
)

// ProjectService proxies projects and project members to the project service.
type ProjectService interface {
	List(ctx context.Context, token string, search model.ProjectSearch) []model.Project
	ListForSession(ctx context.Context, token string, session *auth.Session) []model.Project
	Get(ctx context.Context, token string, id int) (*model.Project, error)
	Add(ctx context.Context, token string, form model.ProjectForm) model.ActionResult
	Edit(ctx context.Context, token string, id int, form model.ProjectForm) model.ActionResult
	Delete(ctx context.Context, token string, id int) model.ActionResult
	Members(ctx context.Context, token string, projectID int) ([]model.ProjectMember, error)
	AddMember(ctx context.Context, token string, projectID, userID int) model.ActionResult
	DeleteMember(ctx context.Context, token string, memberID int) model.ActionResult
	SyncMembers(ctx context.Context, token string, projectID int, current []model.ProjectMember, users []model.User, selected []int) model.ActionResult
}

type projectService struct {
	projects   ProjectAPI
	activities ActivityService // optional, nil = skip
}

// NewProjectService creates a ProjectService.
func NewProjectService(projects ProjectAPI, activities ActivityService) ProjectService {
	return &projectService{projects: projects, activities: activities}
}

// List returns matching projects sorted by name. A failed fetch yields an
// empty list.
func (s *projectService) List(ctx context.Context, token string, search model.ProjectSearch) []model.Project {
	projects, err := s.projects.ListProjects(ctx, token, search)
	if err != nil {
		slog.ErrorContext(ctx, "list projects failed", "error", err)
		return []model.Project{}
	}
	model.SortProjectsByName(projects)
	return projects
}

// ListForSession returns every project for an admin and the member's own
// projects otherwise.
func (s *projectService) ListForSession(ctx context.Context, token string, session *auth.Session) []model.Project {
	if session == nil {
		return []model.Project{}
	}
	if session.IsAdmin() {
		return s.List(ctx, token, model.ProjectSearch{})
	}

	members, err := s.projects.ListMembers(ctx, token, model.MemberSearch{UserID: session.UserID})
	if err != nil {
		slog.ErrorContext(ctx, "list member projects failed", "user_id", session.UserID, "error", err)
		return []model.Project{}
	}
	seen := make(map[int]bool, len(members))
	projects := make([]model.Project, 0, len(members))
	for _, m := range members {
		if seen[m.Project.ID] {
			continue
		}
		seen[m.Project.ID] = true
		projects = append(projects, m.Project)
	}
	model.SortProjectsByName(projects)
	return projects
}

func (s *projectService) Get(ctx context.Context, token string, id int) (*model.Project, error) {
	return s.projects.GetProject(ctx, token, id)
}

func (s *projectService) Add(ctx context.Context, token string, form model.ProjectForm) model.ActionResult {
	res := succeeded("Project", "added")
	if err := s.projects.CreateProject(ctx, token, form.CreateRequest()); err != nil {
		res = failed(ctx, "add project", err, "add", "project")
	}
	record(ctx, s.activities, ActivityProjectCreate, form.Name, res)
	return res
}

func (s *projectService) Edit(ctx context.Context, token string, id int, form model.ProjectForm) model.ActionResult {
	res := succeeded("Project", "updated")
	if err := s.projects.UpdateProject(ctx, token, id, form.UpdateRequest()); err != nil {
		res = failed(ctx, "edit project", err, "edit", "project")
	}
	record(ctx, s.activities, ActivityProjectUpdate, form.Name, res)
	return res
}

func (s *projectService) Delete(ctx context.Context, token string, id int) model.ActionResult {
	res := succeeded("Project", "deleted")
	if err := s.projects.DeleteProject(ctx, token, id); err != nil {
		res = failed(ctx, "delete project", err, "delete", "project")
	}
	record(ctx, s.activities, ActivityProjectDelete, "project "+strconv.Itoa(id), res)
	return res
}

func (s *projectService) Members(ctx context.Context, token string, projectID int) ([]model.ProjectMember, error) {
	return s.projects.ListMembers(ctx, token, model.MemberSearch{ProjectID: projectID})
}

func (s *projectService) AddMember(ctx context.Context, token string, projectID, userID int) model.ActionResult {
	err := s.projects.AddMember(ctx, token, model.ProjectMemberRequest{
		ProjectID: projectID,
		UserID:    userID,
		Role:      auth.RoleMember,
	})
	if err != nil {
		return failed(ctx, "add member", err, "add", "member")
	}
	return succeeded("Member", "added")
}

func (s *projectService) DeleteMember(ctx context.Context, token string, memberID int) model.ActionResult {
	if err := s.projects.DeleteMember(ctx, token, memberID); err != nil {
		return failed(ctx, "delete member", err, "delete", "member")
	}
	return succeeded("Member", "deleted")
}

// SyncMembers makes the project's membership match selected: members not
// selected are removed, selected users not yet members are added. The
// signed-in user's own membership is left alone. Every change is attempted;
// failures are collected into one message.
func (s *projectService) SyncMembers(ctx context.Context, token string, projectID int, current []model.ProjectMember, users []model.User, selected []int) model.ActionResult {
	self := 0
	if sess := auth.SessionFromContext(ctx); sess != nil {
		self = sess.UserID
	}
	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	currentIDs := model.MemberUserIDs(current)

	var done, problems []string
	for _, m := range current {
		if m.User.ID == self || slices.Contains(selected, m.User.ID) {
			continue
		}
		name := names[m.User.ID]
		if name == "" {
			name = m.User.FullName
		}
		line := "Deleted : " + name
		if res := s.DeleteMember(ctx, token, m.ID); res.Success {
			done = append(done, line)
		} else {
			problems = append(problems, fmt.Sprintf("%s (%s)", line, res.Message))
		}
	}

	added := make(map[int]bool, len(selected))
	for _, id := range selected {
		if id == self || added[id] || slices.Contains(currentIDs, id) {
			continue
		}
		added[id] = true
		name, ok := names[id]
		if !ok {
			problems = append(problems, fmt.Sprintf("Added : %d Not Found.", id))
			continue
		}
		line := "Added : " + name
		if res := s.AddMember(ctx, token, projectID, id); res.Success {
			done = append(done, line)
		} else {
			problems = append(problems, fmt.Sprintf("%s (%s)", line, res.Message))
		}
	}

	var res model.ActionResult
	switch {
	case len(problems) > 0:
		res = model.Failed("Failed to edit members in project.\n- " + strings.Join(problems, "\n- "))
	case len(done) > 0:
		res = model.Succeeded("Project members successfully updated.\n- " + strings.Join(done, "\n- "))
	default:
		res = model.Succeeded("No member changes.")
	}
	record(ctx, s.activities, ActivityMembersUpdate, "project "+strconv.Itoa(projectID), res)
	return res
}
