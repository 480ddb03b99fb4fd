package handler

import (
	"net/http"
	"strings"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/internal/service"
	"github.com/taskboard/panel/internal/view"
)

type taskGroup struct {
	Project model.Project
	Tasks   []model.Task
}

type homePage struct {
	Groups      []taskGroup
	Search      model.TaskSearch
	ProjectName string
}

// HomeHandler shows tasks grouped by the projects the user can see.
type HomeHandler struct {
	pages
	projects service.ProjectService
	tasks    service.TaskService
}

func NewHomeHandler(views *view.Renderer, projects service.ProjectService, tasks service.TaskService) *HomeHandler {
	return &HomeHandler{pages: pages{views: views}, projects: projects, tasks: tasks}
}

// Home handles GET /. A visit without any filter shows today's tasks.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess, token := session(r)
	q := r.URL.Query()
	search := model.TaskSearchFromValues(q)
	if len(q) == 0 {
		search.Today = true
	}
	projectName := strings.TrimSpace(q.Get("project"))

	projects := h.projects.ListForSession(r.Context(), token, sess)
	projects = model.FilterProjects(projects, model.ProjectSearch{Name: projectName})

	page := homePage{Search: search, ProjectName: projectName}
	if len(projects) > 0 {
		for _, p := range projects {
			search.ProjectIDs = append(search.ProjectIDs, p.ID)
		}
		tasks := h.tasks.List(r.Context(), token, &search)
		tasks = model.FilterTasks(tasks, search.Title, search.Status, search.Phase)
		for _, p := range projects {
			if ts := model.TasksForProject(tasks, p.ID); len(ts) > 0 {
				page.Groups = append(page.Groups, taskGroup{Project: p, Tasks: ts})
			}
		}
	}
	h.render(w, r, http.StatusOK, view.PageHome, "Today", page, nil)
}
