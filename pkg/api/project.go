package api

import (
	"context"
	"net/http"
	"time"

	"github.com/taskboard/panel/internal/model"
)

type ProjectClient struct {
	*Client
}

func NewProjectClient(baseURL string, timeout time.Duration) *ProjectClient {
	return &ProjectClient{Client: NewClient(baseURL, timeout)}
}

func (c *ProjectClient) ListProjects(ctx context.Context, token string, search model.ProjectSearch) ([]model.Project, error) {
	var projects []model.Project
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/projects", search.Query(), token, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *ProjectClient) GetProject(ctx context.Context, token string, id int) (*model.Project, error) {
	var p model.Project
	if _, err := c.do(ctx, http.MethodGet, idPath("/api/v1/projects", id), nil, token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *ProjectClient) CreateProject(ctx context.Context, token string, req model.ProjectCreateRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/projects", nil, token, req, nil)
	return err
}

func (c *ProjectClient) UpdateProject(ctx context.Context, token string, id int, req model.ProjectUpdateRequest) error {
	_, err := c.do(ctx, http.MethodPatch, idPath("/api/v1/projects", id), nil, token, req, nil)
	return err
}

func (c *ProjectClient) DeleteProject(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, idPath("/api/v1/projects", id), nil, token, nil, nil)
	return err
}

// ListMembers returns member records matching search. Filtering by user alone
// yields the projects that user belongs to.
func (c *ProjectClient) ListMembers(ctx context.Context, token string, search model.MemberSearch) ([]model.ProjectMember, error) {
	var members []model.ProjectMember
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/project_members", search.Query(), token, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *ProjectClient) AddMember(ctx context.Context, token string, req model.ProjectMemberRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/project_members", nil, token, req, nil)
	return err
}

func (c *ProjectClient) DeleteMember(ctx context.Context, token string, memberID int) error {
	_, err := c.do(ctx, http.MethodDelete, idPath("/api/v1/project_members", memberID), nil, token, nil, nil)
	return err
}
