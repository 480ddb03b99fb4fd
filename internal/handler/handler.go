package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/internal/repository"
	"github.com/taskboard/panel/internal/view"
	"github.com/taskboard/panel/pkg/auth"
)

const flashCookieName = "flash"

// Handler serves the endpoints that sit outside the session gate.
type Handler struct {
	db repository.DB // optional, nil = activity log disabled
}

func New(db repository.DB) *Handler {
	return &Handler{db: db}
}

// pages is embedded by every page handler.
type pages struct {
	views *view.Renderer
}

// render writes page with the request's session and any pending flash.
func (p pages) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any, errs model.FieldErrors) {
	p.views.Render(w, status, page, view.Page{
		Title:   title,
		Session: auth.SessionFromContext(r.Context()),
		Flash:   takeFlash(w, r),
		Errors:  errs,
		Data:    data,
	})
}

// done finishes a mutating request: the result travels in a one-shot flash
// cookie and the browser is sent back to target with a GET.
func (p pages) done(w http.ResponseWriter, r *http.Request, target string, res model.ActionResult) {
	setFlash(w, res)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type flashPayload struct {
	Success bool   `json:"s"`
	Message string `json:"m"`
}

func setFlash(w http.ResponseWriter, res model.ActionResult) {
	if res.Message == "" {
		return
	}
	b, err := json.Marshal(flashPayload{Success: res.Success, Message: res.Message})
	if err != nil {
		slog.Warn("encode flash failed", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash reads the pending flash, if any, and expires the cookie.
func takeFlash(w http.ResponseWriter, r *http.Request) *view.Flash {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var p flashPayload
	if err := json.Unmarshal(b, &p); err != nil || p.Message == "" {
		return nil
	}
	return &view.Flash{Success: p.Success, Message: p.Message}
}

// pathID parses a positive integer path value.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// session returns the verified session and raw token placed by the gate.
func session(r *http.Request) (*auth.Session, string) {
	return auth.SessionFromContext(r.Context()), auth.TokenFromContext(r.Context())
}
