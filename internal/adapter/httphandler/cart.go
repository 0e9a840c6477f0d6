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

// GET v1/cart (200 OK)
// POST v1/cart/items JSON {"product_id" string, "delta" int} (200 OK, 400 Bad request)
// DELETE v1/cart/items/{id} (200 OK)
// DELETE v1/cart (200 OK)
// POST v1/checkout (200 OK, 401 Unauthorized)

type CartHandler struct {
	dispatcher port.CommandDispatcher
	viewer     port.CartViewer
	validate   *validator.Validate
}

func RegisterCart(
	mux *http.ServeMux,
	dispatcher port.CommandDispatcher,
	viewer port.CartViewer,
) {
	h := CartHandler{
		dispatcher, viewer, validator.New(validator.WithRequiredStructEnabled()),
	}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	writeJSON(w, log, toCartResponse(h.viewer.ViewCart(r.Context())))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid cart item payload", http.StatusBadRequest)
		log.Warn("failed to validate payload", "err", err)
		return
	}

	cmd := domain.CartAdjusted{ProductID: req.ProductID, Delta: req.Delta}
	if err := h.dispatcher.Dispatch(r.Context(), cmd); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("failed to adjust cart", "err", err)
		return
	}

	writeJSON(w, log, toCartResponse(h.viewer.ViewCart(r.Context())))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	cmd := domain.CartRemoved{ProductID: r.PathValue("id")}
	if err := h.dispatcher.Dispatch(r.Context(), cmd); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("failed to remove cart item", "err", err)
		return
	}

	writeJSON(w, log, toCartResponse(h.viewer.ViewCart(r.Context())))
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"
	log := slog.With("op", op)

	if err := h.dispatcher.Dispatch(r.Context(), domain.CartCleared{}); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("failed to clear cart", "err", err)
		return
	}

	writeJSON(w, log, toCartResponse(h.viewer.ViewCart(r.Context())))
}

func (h CartHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCheckout"
	log := slog.With("op", op)

	if err := h.dispatcher.Dispatch(r.Context(), domain.Checkout{}); err != nil {
		if errors.Is(err, domain.ErrLoginRequired) {
			http.Error(w, "login required", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("failed to checkout", "err", err)
		return
	}

	writeJSON(w, log, CheckoutResponse{
		Message: "purchase simulated, thank you",
		Cart:    toCartResponse(h.viewer.ViewCart(r.Context())),
	})
}
