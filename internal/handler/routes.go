package handler

import (
	"net/http"

	"github.com/taskboard/panel/internal/repository"
	"github.com/taskboard/panel/internal/service"
	"github.com/taskboard/panel/internal/view"
	"github.com/taskboard/panel/pkg/auth"
)

// Deps is everything Routes needs to build the server's handler tree.
type Deps struct {
	Views          *view.Renderer
	Verifier       *auth.Verifier
	DB             repository.DB // optional
	Auth           service.AuthService
	Projects       service.ProjectService
	Tasks          service.TaskService
	Users          service.UserService
	Activities     service.ActivityService // optional
	LoginLimit     *RateLimiter            // optional
	EmailDomain    string
	AllowedOrigins []string // other origins allowed to submit forms
}

// Routes builds the full handler. Health checks and static assets are served
// directly; every other path is checked for a cross-site origin and then goes
// through the session gate.
func Routes(d Deps) http.Handler {
	h := New(d.DB)
	login := NewLoginHandler(d.Views, d.Auth)
	home := NewHomeHandler(d.Views, d.Projects, d.Tasks)
	projects := NewProjectHandler(d.Views, d.Projects, d.Tasks, d.Users)
	users := NewUserHandler(d.Views, d.Users, d.EmailDomain)
	activity := NewActivityHandler(d.Views, d.Activities)

	admin := func(fn http.HandlerFunc) http.Handler { return auth.RequireAdmin(fn) }

	app := http.NewServeMux()
	app.HandleFunc("GET /login", login.Show)
	var submit http.Handler = http.HandlerFunc(login.Submit)
	if d.LoginLimit != nil {
		submit = d.LoginLimit.Middleware(submit)
	}
	app.Handle("POST /login", submit)

	app.HandleFunc("GET /{$}", home.Home)

	app.HandleFunc("GET /project", projects.List)
	app.HandleFunc("POST /project", projects.Create)
	app.HandleFunc("GET /project/{id}", projects.Detail)
	app.HandleFunc("POST /project/{id}", projects.Update)
	app.Handle("POST /project/{id}/delete", admin(projects.Delete))
	app.Handle("POST /project/{id}/members", admin(projects.SyncMembers))
	app.HandleFunc("POST /project/{id}/tasks", projects.CreateTask)
	app.HandleFunc("POST /project/{id}/tasks/{taskID}", projects.UpdateTask)
	app.HandleFunc("POST /project/{id}/tasks/{taskID}/delete", projects.DeleteTask)

	// admin only via the gate's restricted prefixes
	app.HandleFunc("GET /user", users.List)
	app.HandleFunc("POST /user", users.Create)
	app.HandleFunc("POST /user/{id}", users.Update)
	app.HandleFunc("POST /user/{id}/delete", users.Delete)
	app.HandleFunc("POST /user/{id}/reset-password", users.ResetPassword)
	app.HandleFunc("GET /activity", activity.List)

	gate := auth.Gate(d.Verifier, auth.GateOptions{
		LoginPath:          "/login",
		HomePath:           "/",
		RestrictedPrefixes: []string{"/user", "/activity"},
	})

	root := http.NewServeMux()
	root.HandleFunc("GET /healthz", h.Health)
	root.Handle("GET /static/", view.StaticHandler())
	root.Handle("/", NewOriginGuard(d.AllowedOrigins).Middleware(gate(app)))

	return RequestLogger(SecurityHeaders(root))
}
