package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/taskboard/panel/internal/model"
	"github.com/taskboard/panel/internal/service"
	"github.com/taskboard/panel/internal/view"
)

const defaultActivityLimit = 50

type activityPage struct {
	Items []*model.Activity
	Error string
}

// ActivityHandler serves the admin activity log.
type ActivityHandler struct {
	pages
	svc service.ActivityService // optional, nil = log disabled
}

func NewActivityHandler(views *view.Renderer, svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{pages: pages{views: views}, svc: svc}
}

// List handles GET /activity?actor=N&limit=N.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		h.render(w, r, http.StatusOK, view.PageActivity, "Activity",
			activityPage{Error: "Activity log is not enabled."}, nil)
		return
	}

	limit := defaultActivityLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	var (
		items []*model.Activity
		err   error
	)
	if actor, convErr := strconv.Atoi(r.URL.Query().Get("actor")); convErr == nil && actor > 0 {
		items, err = h.svc.ListByActor(r.Context(), actor, limit)
	} else {
		items, err = h.svc.ListRecent(r.Context(), limit)
	}

	page := activityPage{Items: items}
	if err != nil {
		slog.ErrorContext(r.Context(), "list activity failed", "error", err)
		page = activityPage{Error: "Failed to load activity. Please try again."}
	}
	h.render(w, r, http.StatusOK, view.PageActivity, "Activity", page, nil)
}
