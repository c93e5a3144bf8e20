package carthandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shopapi/internal/models"
	serviceerrors "shopapi/internal/service"
	"shopapi/pkg/lib/logger/sl"

	"github.com/go-playground/validator/v10"
)

const StatusClientClosedRequest = 499

type CartService interface {
	AddToCart(ctx context.Context, username string, itemId int, quantity int) (models.Cart, error)
	RemoveFromCart(ctx context.Context, username string, itemId int, quantity int) (models.Cart, error)
}

// ModifyCartRequest carries both add and remove payloads. Quantity is
// passed through unvalidated, callers are trusted to send positive values.
type ModifyCartRequest struct {
	Username string `json:"username" validate:"required"`
	ItemId   int    `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

type Handler struct {
	log     *slog.Logger
	service CartService
}

func New(log *slog.Logger, service CartService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// POST /api/cart/addToCart
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.AddToCart"
	log := h.log.With("op", op)

	req, ok := h.decodeModifyRequest(w, r, log)
	if !ok {
		return
	}

	cart, err := h.service.AddToCart(r.Context(), req.Username, req.ItemId, req.Quantity)
	if err != nil {
		h.writeServiceError(w, r, log, err, "Failed to add to cart")
		return
	}

	if err := json.NewEncoder(w).Encode(cart); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// POST /api/cart/removeFromCart
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.RemoveFromCart"
	log := h.log.With("op", op)

	req, ok := h.decodeModifyRequest(w, r, log)
	if !ok {
		return
	}

	cart, err := h.service.RemoveFromCart(r.Context(), req.Username, req.ItemId, req.Quantity)
	if err != nil {
		h.writeServiceError(w, r, log, err, "Failed to remove from cart")
		return
	}

	if err := json.NewEncoder(w).Encode(cart); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) decodeModifyRequest(w http.ResponseWriter, r *http.Request, log *slog.Logger) (ModifyCartRequest, bool) {
	var req ModifyCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Cannot decode request body", sl.Err(err))
		http.Error(w, "Cannot decode request body", http.StatusBadRequest)
		return ModifyCartRequest{}, false
	}
	defer r.Body.Close()

	if err := validator.New().Struct(req); err != nil {
		log.Error("Failed to validate", sl.Err(err))
		http.Error(w, "Failed to validate", http.StatusBadRequest)
		return ModifyCartRequest{}, false
	}

	return req, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	if errors.Is(err, serviceerrors.ErrContextCanceled) {
		log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
		http.Error(w, "Context canceled", StatusClientClosedRequest)
	} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
		log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
		http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
	} else if errors.Is(err, serviceerrors.ErrNotFound) {
		log.Warn("User or item not found", sl.Err(serviceerrors.ErrNotFound))
		http.NotFound(w, r)
	} else {
		log.Error(msg, sl.Err(err))
		http.Error(w, msg, http.StatusInternalServerError)
	}
}
