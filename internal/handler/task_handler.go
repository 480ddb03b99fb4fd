package handler

import (
	"net/http"

	"github.com/taskboard/panel/internal/model"
)

// CreateTask handles POST /project/{id}/tasks. The signed-in user becomes the
// task's creator.
func (h *ProjectHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := model.TaskFormFromValues(r.PostForm)
	if errs := form.Validate(); errs.Any() {
		h.renderDetail(w, r, http.StatusUnprocessableEntity, id, projectState{newTask: &form}, errs)
		return
	}
	sess, token := session(r)
	h.done(w, r, projectPath(id), h.tasks.Add(r.Context(), token, id, sess.UserID, form))
}

// UpdateTask handles POST /project/{id}/tasks/{taskID}.
func (h *ProjectHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	taskID, ok2 := pathID(r, "taskID")
	if !ok || !ok2 {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := model.TaskFormFromValues(r.PostForm)
	if errs := form.Validate(); errs.Any() {
		h.renderDetail(w, r, http.StatusUnprocessableEntity, id, projectState{editTaskID: taskID, editTask: &form}, errs)
		return
	}
	_, token := session(r)
	h.done(w, r, projectPath(id), h.tasks.Edit(r.Context(), token, id, taskID, form))
}

// DeleteTask handles POST /project/{id}/tasks/{taskID}/delete.
func (h *ProjectHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	taskID, ok2 := pathID(r, "taskID")
	if !ok || !ok2 {
		http.NotFound(w, r)
		return
	}
	_, token := session(r)
	h.done(w, r, projectPath(id), h.tasks.Delete(r.Context(), token, taskID))
}
