package model

import "strings"

const (
	PhaseImplement   = "implement"
	PhaseMaintenance = "maintenance"
)

var Phases = []string{PhaseImplement, PhaseMaintenance}

type Task struct {
	ID          int    `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Phase       string `json:"phase"`
	StartDate   string `json:"start_date,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	ProjectID   int    `json:"project_id"`
	CreatedBy   int    `json:"create_by"`
}

// TaskRequest is the body for creating or updating a task.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Phase       string `json:"phase"`
	StartDate   string `json:"start_date,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	ProjectID   int    `json:"project_id,omitempty"`
	CreatedBy   int    `json:"create_by,omitempty"`
}

// TasksForProject returns the tasks belonging to projectID.
func TasksForProject(tasks []Task, projectID int) []Task {
	var out []Task
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// FilterTasks applies title containment and status/phase equality.
func FilterTasks(tasks []Task, title, status, phase string) []Task {
	title = strings.ToLower(strings.TrimSpace(title))
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if title != "" && !strings.Contains(strings.ToLower(t.Title), title) {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		if phase != "" && t.Phase != phase {
			continue
		}
		out = append(out, t)
	}
	return out
}
