package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tecnostore/storefront/internal/core/domain"
	"github.com/tecnostore/storefront/internal/core/port"
)

// POST v1/auth/login JSON {"email", "password"} (200 OK, 400 Bad request)
// POST v1/auth/register JSON {"name", "email", "password", "password_confirm"}
// (200 OK, 400 Bad request, 422 Unprocessable entity)
// POST v1/auth/logout (200 OK)
// GET v1/auth/session (200 OK, 204 No content)

type AuthHandler struct {
	dispatcher port.CommandDispatcher
	sessions   port.SessionViewer
	validate   *validator.Validate
}

func RegisterAuth(
	mux *http.ServeMux,
	dispatcher port.CommandDispatcher,
	sessions port.SessionViewer,
) {
	h := AuthHandler{
		dispatcher, sessions, validator.New(validator.WithRequiredStructEnabled()),
	}
	mux.HandleFunc("POST /v1/auth/login", h.PostLogin)
	mux.HandleFunc("POST /v1/auth/register", h.PostRegister)
	mux.HandleFunc("POST /v1/auth/logout", h.PostLogout)
	mux.HandleFunc("GET /v1/auth/session", h.GetSession)
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"
	log := slog.With("op", op)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid login payload", http.StatusBadRequest)
		log.Warn("failed to validate payload", "err", err)
		return
	}

	cmd := domain.Login{Email: req.Email, Password: req.Password}
	if err := h.dispatcher.Dispatch(r.Context(), cmd); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("failed to login", "err", err)
		return
	}

	h.writeSession(w, r, log)
}

func (h AuthHandler) PostRegister(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostRegister"
	log := slog.With("op", op)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid register payload", http.StatusBadRequest)
		log.Warn("failed to validate payload", "err", err)
		return
	}

	cmd := domain.Register{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}
	if err := h.dispatcher.Dispatch(r.Context(), cmd); err != nil {
		if errors.Is(err, domain.ErrPasswordMismatch) {
			http.Error(
				w, "passwords do not match", http.StatusUnprocessableEntity,
			)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("failed to register", "err", err)
		return
	}

	h.writeSession(w, r, log)
}

func (h AuthHandler) PostLogout(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogout"
	log := slog.With("op", op)

	if err := h.dispatcher.Dispatch(r.Context(), domain.Logout{}); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("failed to logout", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.GetSession"
	log := slog.With("op", op)

	h.writeSession(w, r, log)
}

func (h AuthHandler) writeSession(
	w http.ResponseWriter, r *http.Request, log *slog.Logger,
) {
	sess := h.sessions.Session(r.Context())
	if sess == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, log, SessionResponse{Name: sess.Name, Email: sess.Email})
}
