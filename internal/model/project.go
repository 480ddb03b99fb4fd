package model

import (
	"sort"
	"strings"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Statuses lists the status values shared by projects and tasks, in display order.
var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted}

// Project mirrors the project service's record. Dates stay as the strings the
// service sends; the view layer formats them.
type Project struct {
	ID          int    `json:"projectId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// ProjectCreateRequest is the body of POST /api/v1/projects. Optional fields
// are omitted, never sent as null.
type ProjectCreateRequest struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// ProjectUpdateRequest is the body of PATCH /api/v1/projects/:id. The project
// service expects camelCase date keys on update.
type ProjectUpdateRequest struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// SortProjectsByName sorts projects alphabetically, ignoring case.
func SortProjectsByName(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	})
}

// FilterProjects keeps projects whose name contains search.Name (case
// insensitive) and whose status equals search.Status. Empty fields match all.
func FilterProjects(projects []Project, search ProjectSearch) []Project {
	name := strings.ToLower(strings.TrimSpace(search.Name))
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if search.Status != "" && p.Status != search.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}
