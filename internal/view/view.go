// Package view renders the panel's server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/pkg/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageLogin    = "login"
	PageHome     = "home"
	PageProjects = "projects"
	PageProject  = "project"
	PageUsers    = "users"
	PageActivity = "activity"
)

var pages = []string{PageLogin, PageHome, PageProjects, PageProject, PageUsers, PageActivity}

// Flash is a one-shot banner shown after an action.
type Flash struct {
	Success bool
	Message string
}

// Page is the data every template receives. The session is passed
// explicitly; templates never look it up on their own.
type Page struct {
	Title   string
	Session *auth.Session
	Flash   *Flash
	Errors  model.FieldErrors
	Data    any
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded layout and page templates.
func New() (*Renderer, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	funcs := template.FuncMap{
		"formatDate": FormatDate,
		"dateOnly":   DateOnly,
		"markdown":   func(s string) template.HTML { return Markdown(md, s) },
		"lines":      func(s string) []string { return strings.Split(s, "\n") },
		"hasInt":     slices.Contains[[]int, int],
		"title":      Title,
		"statuses":   func() []string { return model.Statuses },
		"phases":     func() []string { return model.Phases },
		"roles":      func() []string { return model.Roles },
		"fields":     fields,
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into a buffer first so a template error never leaves a
// half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) {
	t, ok := r.pages[page]
	if !ok {
		slog.Error("unknown page", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		slog.Error("render failed", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write response failed", "page", page, "error", err)
	}
}

// StaticHandler serves the embedded stylesheet under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// dateLayouts are the timestamp shapes the services send.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a service timestamp like "Jan 2, 2006, 03:04:05 PM".
// Values that do not parse are returned unchanged.
func FormatDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006, 03:04:05 PM")
}

// DateOnly renders a service timestamp like "Jan 2, 2006".
func DateOnly(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// Markdown converts a project description to HTML. Raw HTML in the source is
// not passed through.
func Markdown(md goldmark.Markdown, s string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

// fields pairs a form with its errors for the shared form partials.
func fields(form any, errs model.FieldErrors) map[string]any {
	return map[string]any{"Form": form, "Errors": errs}
}

// Title turns a status or phase value like "in-progress" into "In Progress".
func Title(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
