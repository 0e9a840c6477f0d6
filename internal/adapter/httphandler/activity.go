package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/tecnostore/storefront/internal/core/port"
)

// GET v1/activity/{email} (200 OK, 503 Service unavailable)

type ActivityHandler struct {
	activity port.ActivityViewer
}

func RegisterActivity(mux *http.ServeMux, activity port.ActivityViewer) {
	h := ActivityHandler{activity}
	mux.HandleFunc("GET /v1/activity/{email}", h.GetActivity)
}

func (h ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	const op = "ActivityHandler.GetActivity"
	log := slog.With("op", op)

	email := r.PathValue("email")
	n, err := h.activity.EventCount(email)
	if err != nil {
		http.Error(w, "activity is unavailable", http.StatusServiceUnavailable)
		log.Error("failed to read event count", "err", err)
		return
	}

	writeJSON(w, log, ActivityResponse{UserEmail: email, Events: n})
}
