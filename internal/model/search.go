package model

import (
	"net/url"
	"strconv"
	"strings"
)

// ProjectSearch filters the project list.
type ProjectSearch struct {
	Name   string
	Status string
}

func ProjectSearchFromValues(v url.Values) ProjectSearch {
	return ProjectSearch{Name: strings.TrimSpace(v.Get("name")), Status: v.Get("status")}
}

func (s ProjectSearch) Query() url.Values {
	q := url.Values{}
	setIfNotEmpty(q, "name", s.Name)
	setIfNotEmpty(q, "status", s.Status)
	return q
}

// UserSearch filters the user list. Offset and Limit pass through to the
// auth service when positive.
type UserSearch struct {
	Name   string
	Role   string
	Offset int
	Limit  int
}

func UserSearchFromValues(v url.Values) UserSearch {
	return UserSearch{
		Name:   strings.TrimSpace(v.Get("name")),
		Role:   v.Get("role"),
		Offset: atoiOrZero(v.Get("offset")),
		Limit:  atoiOrZero(v.Get("limit")),
	}
}

func (s UserSearch) Query() url.Values {
	q := url.Values{}
	setIfNotEmpty(q, "name", s.Name)
	setIfNotEmpty(q, "role", s.Role)
	setPositive(q, "offset", s.Offset)
	setPositive(q, "limit", s.Limit)
	return q
}

// MemberSearch selects project members by project, user, or both.
type MemberSearch struct {
	ProjectID int
	UserID    int
}

func (s MemberSearch) Query() url.Values {
	q := url.Values{}
	setPositive(q, "project_id", s.ProjectID)
	setPositive(q, "user_id", s.UserID)
	return q
}

// TaskSearch filters the task list. The zero value matches everything and
// encodes to an empty query, exactly like no search at all.
type TaskSearch struct {
	ProjectIDs []int
	Title      string
	Status     string
	Phase      string
	StartDate  string
	DueDate    string
	Today      bool
	Offset     int
	Limit      int
}

// TaskSearchFromValues reads the task filter controls.
func TaskSearchFromValues(v url.Values) TaskSearch {
	s := TaskSearch{
		Title:     strings.TrimSpace(v.Get("title")),
		Status:    v.Get("status"),
		Phase:     v.Get("phase"),
		StartDate: v.Get("start_date"),
		DueDate:   v.Get("due_date"),
		Today:     v.Get("today") == "true" || v.Get("today") == "on",
		Offset:    atoiOrZero(v.Get("offset")),
		Limit:     atoiOrZero(v.Get("limit")),
	}
	if d := v.Get("date"); d != "" {
		s.StartDate, s.DueDate = d, d
	}
	return s
}

// Query encodes the search; a nil search encodes like the zero value.
func (s *TaskSearch) Query() url.Values {
	q := url.Values{}
	if s == nil {
		return q
	}
	for _, id := range s.ProjectIDs {
		q.Add("project_id", strconv.Itoa(id))
	}
	setIfNotEmpty(q, "title", s.Title)
	setIfNotEmpty(q, "status", s.Status)
	setIfNotEmpty(q, "phase", s.Phase)
	setIfNotEmpty(q, "start_date", s.StartDate)
	setIfNotEmpty(q, "due_date", s.DueDate)
	if s.Today {
		q.Set("today", "true")
	}
	setPositive(q, "offset", s.Offset)
	setPositive(q, "limit", s.Limit)
	return q
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setPositive(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
