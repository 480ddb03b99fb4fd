package model

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e FieldErrors) Any() bool { return len(e) > 0 }

func (e FieldErrors) require(field, value string) {
	if value == "" {
		e[field] = "This field is required."
	}
}

func (e FieldErrors) oneOf(field, value string, allowed []string) {
	if value != "" && !slices.Contains(allowed, value) {
		e[field] = "Invalid value."
	}
}

func (e FieldErrors) date(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		e[field] = "Use the YYYY-MM-DD format."
	}
}

// datePair mirrors the date pickers: once a start date is chosen the end date
// follows it until it is set to something later.
func datePair(start, end string) (string, string) {
	if start != "" && (end == "" || end < start) {
		end = start
	}
	return start, end
}

type LoginForm struct {
	Username string
	Password string
}

func LoginFormFromValues(v url.Values) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(v.Get("username")),
		Password: v.Get("password"),
	}
}

func (f LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.require("username", f.Username)
	errs.require("password", f.Password)
	return errs
}

// ProjectForm holds the add/edit project form fields.
type ProjectForm struct {
	Name        string
	Status      string
	Description string
	StartDate   string
	EndDate     string
}

func ProjectFormFromValues(v url.Values) ProjectForm {
	f := ProjectForm{
		Name:        strings.TrimSpace(v.Get("name")),
		Status:      strings.TrimSpace(v.Get("status")),
		Description: v.Get("description"),
	}
	f.StartDate, f.EndDate = datePair(strings.TrimSpace(v.Get("start_date")), strings.TrimSpace(v.Get("end_date")))
	return f
}

// ProjectFormFrom prefills the edit form from an existing project.
func ProjectFormFrom(p Project) ProjectForm {
	return ProjectForm{
		Name:        p.Name,
		Status:      p.Status,
		Description: p.Description,
		StartDate:   dateOnly(p.StartDate),
		EndDate:     dateOnly(p.EndDate),
	}
}

func (f ProjectForm) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.require("name", f.Name)
	errs.require("status", f.Status)
	errs.oneOf("status", f.Status, Statuses)
	errs.date("start_date", f.StartDate)
	errs.date("end_date", f.EndDate)
	return errs
}

// hasDates reports whether both dates are present; the services only accept
// them as a pair.
func (f ProjectForm) hasDates() bool {
	return f.StartDate != "" && f.EndDate != ""
}

func (f ProjectForm) CreateRequest() ProjectCreateRequest {
	req := ProjectCreateRequest{Name: f.Name, Status: f.Status, Description: f.Description}
	if f.hasDates() {
		req.StartDate, req.EndDate = f.StartDate, f.EndDate
	}
	return req
}

func (f ProjectForm) UpdateRequest() ProjectUpdateRequest {
	req := ProjectUpdateRequest{Name: f.Name, Status: f.Status, Description: f.Description}
	if f.hasDates() {
		req.StartDate, req.EndDate = f.StartDate, f.EndDate
	}
	return req
}

// TaskForm holds the add/edit task form fields.
type TaskForm struct {
	Title       string
	Description string
	Status      string
	Phase       string
	StartDate   string
	DueDate     string
}

func TaskFormFromValues(v url.Values) TaskForm {
	f := TaskForm{
		Title:       strings.TrimSpace(v.Get("title")),
		Description: v.Get("description"),
		Status:      strings.TrimSpace(v.Get("status")),
		Phase:       strings.TrimSpace(v.Get("phase")),
	}
	f.StartDate, f.DueDate = datePair(strings.TrimSpace(v.Get("start_date")), strings.TrimSpace(v.Get("due_date")))
	return f
}

// TaskFormFrom prefills the edit form from an existing task.
func TaskFormFrom(t Task) TaskForm {
	return TaskForm{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Phase:       t.Phase,
		StartDate:   dateOnly(t.StartDate),
		DueDate:     dateOnly(t.DueDate),
	}
}

func (f TaskForm) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.require("title", f.Title)
	errs.require("phase", f.Phase)
	errs.require("status", f.Status)
	errs.oneOf("phase", f.Phase, Phases)
	errs.oneOf("status", f.Status, Statuses)
	errs.date("start_date", f.StartDate)
	errs.date("due_date", f.DueDate)
	return errs
}

func (f TaskForm) Request(projectID, createdBy int) TaskRequest {
	return TaskRequest{
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		Phase:       f.Phase,
		StartDate:   f.StartDate,
		DueDate:     f.DueDate,
		ProjectID:   projectID,
		CreatedBy:   createdBy,
	}
}

// UserForm holds the add/edit user form fields.
type UserForm struct {
	Username  string
	FirstName string
	LastName  string
	Role      string
}

func UserFormFromValues(v url.Values) UserForm {
	return UserForm{
		Username:  strings.TrimSpace(v.Get("username")),
		FirstName: strings.TrimSpace(v.Get("first_name")),
		LastName:  strings.TrimSpace(v.Get("last_name")),
		Role:      strings.TrimSpace(v.Get("role")),
	}
}

// UserFormFrom prefills the edit form from an existing user.
func UserFormFrom(u User) UserForm {
	return UserForm{
		Username:  u.Username,
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Role:      u.Role,
	}
}

func (f UserForm) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.require("username", f.Username)
	errs.require("first_name", f.FirstName)
	errs.require("last_name", f.LastName)
	errs.require("role", f.Role)
	errs.oneOf("role", f.Role, Roles)
	return errs
}

func (f UserForm) FullName() string {
	return f.FirstName + " " + f.LastName
}

// dateOnly trims a timestamp like 2024-05-01T00:00:00.000Z to its date part.
func dateOnly(s string) string {
	if len(s) >= len(dateLayout) {
		if _, err := time.Parse(dateLayout, s[:len(dateLayout)]); err == nil {
			return s[:len(dateLayout)]
		}
	}
	return s
}
