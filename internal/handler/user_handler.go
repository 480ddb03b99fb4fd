package handler

import (
	"net/http"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/internal/service"
	"github.com/taskboard/panel/internal/view"
)

type userRow struct {
	User model.User
	Form model.UserForm
	Open bool
}

type userListPage struct {
	Users       []userRow
	Search      model.UserSearch
	Form        model.UserForm
	NewOpen     bool
	EmailDomain string
}

// UserHandler serves the admin-only user directory.
type UserHandler struct {
	pages
	users       service.UserService
	emailDomain string
}

func NewUserHandler(views *view.Renderer, users service.UserService, emailDomain string) *UserHandler {
	return &UserHandler{pages: pages{views: views}, users: users, emailDomain: emailDomain}
}

// userState carries a rejected form back into the list.
type userState struct {
	newForm  *model.UserForm
	editID   int
	editForm *model.UserForm
}

// List handles GET /user.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, http.StatusOK, userState{}, nil)
}

func (h *UserHandler) renderList(w http.ResponseWriter, r *http.Request, status int, st userState, errs model.FieldErrors) {
	_, token := session(r)
	search := model.UserSearchFromValues(r.URL.Query())
	page := userListPage{Search: search, EmailDomain: h.emailDomain}
	if st.newForm != nil {
		page.Form, page.NewOpen = *st.newForm, true
	}
	for _, u := range h.users.List(r.Context(), token, search) {
		row := userRow{User: u, Form: model.UserFormFrom(u)}
		if st.editForm != nil && u.ID == st.editID {
			row.Form, row.Open = *st.editForm, true
		}
		page.Users = append(page.Users, row)
	}
	h.render(w, r, status, view.PageUsers, "Users", page, errs)
}

// Create handles POST /user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := model.UserFormFromValues(r.PostForm)
	if errs := form.Validate(); errs.Any() {
		h.renderList(w, r, http.StatusUnprocessableEntity, userState{newForm: &form}, errs)
		return
	}
	_, token := session(r)
	h.done(w, r, "/user", h.users.Add(r.Context(), token, form))
}

// Update handles POST /user/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := model.UserFormFromValues(r.PostForm)
	if errs := form.Validate(); errs.Any() {
		h.renderList(w, r, http.StatusUnprocessableEntity, userState{editID: id, editForm: &form}, errs)
		return
	}
	_, token := session(r)
	h.done(w, r, "/user", h.users.Edit(r.Context(), token, id, form))
}

// Delete handles POST /user/{id}/delete. Admins cannot delete themselves.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess, token := session(r)
	if sess != nil && sess.UserID == id {
		h.done(w, r, "/user", model.Failed("You cannot delete your own account."))
		return
	}
	h.done(w, r, "/user", h.users.Delete(r.Context(), token, id))
}

// ResetPassword handles POST /user/{id}/reset-password. The password is
// always reset to the default.
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, token := session(r)
	h.done(w, r, "/user", h.users.ResetPassword(r.Context(), token, id, ""))
}
