package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yuin/goldmark"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/pkg/auth"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-05-01T13:04:05.000Z", "May 1, 2024, 01:04:05 PM"},
		{"2024-05-01T09:00:00", "May 1, 2024, 09:00:00 AM"},
		{"2024-12-25", "Dec 25, 2024, 12:00:00 AM"},
		{"not a date", "not a date"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateOnly(t *testing.T) {
	if got := DateOnly("2024-05-01T00:00:00Z"); got != "May 1, 2024" {
		t.Errorf("got %q", got)
	}
	if got := DateOnly("soon"); got != "soon" {
		t.Errorf("got %q", got)
	}
}

func TestMarkdown_DropsRawHTML(t *testing.T) {
	out := string(Markdown(goldmark.New(), "# Plan\n\n<script>alert(1)</script>\n\n**bold**"))
	if !strings.Contains(out, "<h1>Plan</h1>") || !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("unexpected markdown output %q", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw HTML should not pass through: %q", out)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("in-progress"); got != "In Progress" {
		t.Errorf("got %q", got)
	}
	if got := Title(""); got != "" {
		t.Errorf("got %q", got)
	}
}

func render(t *testing.T, page string, data Page) *httptest.ResponseRecorder {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec := httptest.NewRecorder()
	r.Render(rec, http.StatusOK, page, data)
	if rec.Code != http.StatusOK {
		t.Fatalf("render %s: status %d: %s", page, rec.Code, rec.Body.String())
	}
	return rec
}

func TestRender_LoginShowsErrorAndNoNav(t *testing.T) {
	rec := render(t, PageLogin, Page{
		Title: "Sign in",
		Data: struct {
			Username string
			Error    string
		}{Username: "admin", Error: "Invalid username or password. Please check and try again."},
		Errors: model.FieldErrors{"password": "This field is required."},
	})
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid username or password") {
		t.Error("expected login error banner")
	}
	if !strings.Contains(body, "This field is required.") {
		t.Error("expected field error")
	}
	if strings.Contains(body, "Sign out") {
		t.Error("login page without session should not show nav")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestRender_FlashLinesAndAdminNav(t *testing.T) {
	rec := render(t, PageProjects, Page{
		Title:   "Projects",
		Session: &auth.Session{UserID: 1, Role: auth.RoleAdmin, FullName: "Admin User"},
		Flash:   &Flash{Success: false, Message: "Failed to edit members in project.\n- Deleted : Ann Lee (Forbidden)"},
		Data: struct {
			Projects []model.Project
			Search   model.ProjectSearch
			Form     model.ProjectForm
		}{Projects: []model.Project{{ID: 3, Name: "Alpha", Status: "in-progress", UpdatedAt: "2024-05-01T13:04:05Z"}}},
	})
	body := rec.Body.String()
	for _, want := range []string{
		`href="/user"`,
		"<p>- Deleted : Ann Lee (Forbidden)</p>",
		`href="/project/3"`,
		"In Progress",
		"May 1, 2024, 01:04:05 PM",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in body", want)
		}
	}
}

func TestRender_MemberNavHidesAdminLinks(t *testing.T) {
	rec := render(t, PageHome, Page{
		Title:   "Today",
		Session: &auth.Session{UserID: 2, Role: auth.RoleMember, Username: "ann"},
		Data: struct {
			Groups      []struct{}
			Search      model.TaskSearch
			ProjectName string
		}{Search: model.TaskSearch{Today: true}},
	})
	body := rec.Body.String()
	if strings.Contains(body, `href="/user"`) {
		t.Error("member should not see the users link")
	}
	if !strings.Contains(body, "Today&#39;s tasks") && !strings.Contains(body, "Today's tasks") {
		t.Error("expected today heading")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec := httptest.NewRecorder()
	r.Render(rec, http.StatusOK, "nope", Page{})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestStaticHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ".card") {
		t.Errorf("expected stylesheet, got %d", rec.Code)
	}
}
