package handler

import (
	"net/http"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/internal/service"
	"github.com/taskboard/panel/internal/view"
	"github.com/taskboard/panel/pkg/auth"
)

type loginPage struct {
	Username string
	Error    string
}

// LoginHandler serves the sign-in form. Visiting it always ends the current
// session; the gate clears the cookie before these handlers run.
type LoginHandler struct {
	pages
	auth service.AuthService
}

func NewLoginHandler(views *view.Renderer, auth service.AuthService) *LoginHandler {
	return &LoginHandler{pages: pages{views: views}, auth: auth}
}

// Show handles GET /login.
func (h *LoginHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageLogin, "Sign in", loginPage{}, nil)
}

// Submit handles POST /login. On success the token from the auth service is
// stored in the session cookie and the browser goes to the home page.
func (h *LoginHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := model.LoginFormFromValues(r.PostForm)
	if errs := form.Validate(); errs.Any() {
		h.render(w, r, http.StatusUnprocessableEntity, view.PageLogin, "Sign in", loginPage{Username: form.Username}, errs)
		return
	}

	res := h.auth.Login(r.Context(), form)
	if !res.Success {
		h.render(w, r, http.StatusUnauthorized, view.PageLogin, "Sign in",
			loginPage{Username: form.Username, Error: res.Message}, nil)
		return
	}

	auth.SetSessionCookie(w, res.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
