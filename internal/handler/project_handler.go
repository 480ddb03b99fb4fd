package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/internal/service"
	"github.com/taskboard/panel/internal/view"
	"github.com/taskboard/panel/pkg/api"
)

type projectListPage struct {
	Projects []model.Project
	Search   model.ProjectSearch
	Form     model.ProjectForm
}

type taskRow struct {
	Task model.Task
	Form model.TaskForm
	Open bool
}

type projectPage struct {
	Project   model.Project
	LoadError string

	Form     model.ProjectForm
	EditOpen bool

	Members   []model.ProjectMember
	Users     []model.User
	MemberIDs []int
	SelfID    int
	CanAdmin  bool

	Tasks       []taskRow
	Search      model.TaskSearch
	NewTask     model.TaskForm
	NewTaskOpen bool
}

// projectState carries a rejected form back into the detail page.
type projectState struct {
	editForm   *model.ProjectForm
	newTask    *model.TaskForm
	editTaskID int
	editTask   *model.TaskForm
}

// ProjectHandler serves the project list and detail pages and their actions.
type ProjectHandler struct {
	pages
	projects service.ProjectService
	tasks    service.TaskService
	users    service.UserService
}

func NewProjectHandler(views *view.Renderer, projects service.ProjectService, tasks service.TaskService, users service.UserService) *ProjectHandler {
	return &ProjectHandler{pages: pages{views: views}, projects: projects, tasks: tasks, users: users}
}

func projectPath(id int) string {
	return "/project/" + strconv.Itoa(id)
}

// List handles GET /project.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, http.StatusOK, model.ProjectForm{}, nil)
}

func (h *ProjectHandler) renderList(w http.ResponseWriter, r *http.Request, status int, form model.ProjectForm, errs model.FieldErrors) {
	_, token := session(r)
	search := model.ProjectSearchFromValues(r.URL.Query())
	projects := h.projects.List(r.Context(), token, search)
	projects = model.FilterProjects(projects, search)
	h.render(w, r, status, view.PageProjects, "Projects",
		projectListPage{Projects: projects, Search: search, Form: form}, errs)
}

// Create handles POST /project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := model.ProjectFormFromValues(r.PostForm)
	if errs := form.Validate(); errs.Any() {
		h.renderList(w, r, http.StatusUnprocessableEntity, form, errs)
		return
	}
	_, token := session(r)
	h.done(w, r, "/project", h.projects.Add(r.Context(), token, form))
}

// Detail handles GET /project/{id}.
func (h *ProjectHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.renderDetail(w, r, http.StatusOK, id, projectState{}, nil)
}

// renderDetail fetches the project, its members, the user directory (admins
// only) and its tasks concurrently. Only a failure to load the project itself
// replaces the page with an error banner.
func (h *ProjectHandler) renderDetail(w http.ResponseWriter, r *http.Request, status, id int, st projectState, errs model.FieldErrors) {
	sess, token := session(r)
	search := model.TaskSearchFromValues(r.URL.Query())
	search.ProjectIDs = []int{id}

	page := projectPage{Search: search, CanAdmin: sess.IsAdmin()}
	if sess != nil {
		page.SelfID = sess.UserID
	}

	var (
		project *model.Project
		members []model.ProjectMember
		users   []model.User
		tasks   []model.Task
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		p, err := h.projects.Get(ctx, token, id)
		if err != nil {
			return fmt.Errorf("get project %d: %w", id, err)
		}
		project = p
		return nil
	})
	g.Go(func() error {
		m, err := h.projects.Members(ctx, token, id)
		if err != nil {
			slog.WarnContext(ctx, "list project members failed", "project_id", id, "error", err)
			return nil
		}
		members = m
		return nil
	})
	if page.CanAdmin {
		g.Go(func() error {
			users = h.users.List(ctx, token, model.UserSearch{})
			return nil
		})
	}
	g.Go(func() error {
		tasks = h.tasks.List(ctx, token, &search)
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.ErrorContext(r.Context(), "load project failed", "project_id", id, "error", err)
		page.LoadError = loadErrorMessage(err)
		if status == http.StatusOK {
			status = loadErrorStatus(err)
		}
		h.render(w, r, status, view.PageProject, "Project", page, nil)
		return
	}

	page.Project = *project
	page.Members = members
	page.MemberIDs = model.MemberUserIDs(members)
	page.Users = users

	page.Form = model.ProjectFormFrom(*project)
	if st.editForm != nil {
		page.Form, page.EditOpen = *st.editForm, true
	}
	if st.newTask != nil {
		page.NewTask, page.NewTaskOpen = *st.newTask, true
	}

	tasks = model.TasksForProject(tasks, id)
	tasks = model.FilterTasks(tasks, search.Title, search.Status, search.Phase)
	for _, t := range tasks {
		row := taskRow{Task: t, Form: model.TaskFormFrom(t)}
		if st.editTask != nil && t.ID == st.editTaskID {
			row.Form, row.Open = *st.editTask, true
		}
		page.Tasks = append(page.Tasks, row)
	}

	h.render(w, r, status, view.PageProject, project.Name, page, errs)
}

func loadErrorMessage(err error) string {
	if msg := api.MessageOf(err); msg != "" {
		return msg
	}
	return "Project not found."
}

func loadErrorStatus(err error) int {
	if api.StatusOf(err) == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// Update handles POST /project/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := model.ProjectFormFromValues(r.PostForm)
	if errs := form.Validate(); errs.Any() {
		h.renderDetail(w, r, http.StatusUnprocessableEntity, id, projectState{editForm: &form}, errs)
		return
	}
	_, token := session(r)
	h.done(w, r, projectPath(id), h.projects.Edit(r.Context(), token, id, form))
}

// Delete handles POST /project/{id}/delete (admin only).
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, token := session(r)
	res := h.projects.Delete(r.Context(), token, id)
	if !res.Success {
		h.done(w, r, projectPath(id), res)
		return
	}
	h.done(w, r, "/project", res)
}

// SyncMembers handles POST /project/{id}/members (admin only). The submitted
// user_id values are the complete desired membership.
func (h *ProjectHandler) SyncMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	selected := make([]int, 0, len(r.PostForm["user_id"]))
	for _, v := range r.PostForm["user_id"] {
		if uid, err := strconv.Atoi(v); err == nil && uid > 0 {
			selected = append(selected, uid)
		}
	}

	_, token := session(r)
	current, users, err := h.memberState(r.Context(), token, id)
	if err != nil {
		slog.ErrorContext(r.Context(), "load members failed", "project_id", id, "error", err)
		h.done(w, r, projectPath(id), model.Failed("Failed to edit members in project."))
		return
	}
	h.done(w, r, projectPath(id), h.projects.SyncMembers(r.Context(), token, id, current, users, selected))
}

func (h *ProjectHandler) memberState(ctx context.Context, token string, projectID int) ([]model.ProjectMember, []model.User, error) {
	var (
		current []model.ProjectMember
		users   []model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := h.projects.Members(gctx, token, projectID)
		current = m
		return err
	})
	g.Go(func() error {
		users = h.users.List(gctx, token, model.UserSearch{})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return current, users, nil
}
