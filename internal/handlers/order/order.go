package orderhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shopapi/internal/models"
	serviceerrors "shopapi/internal/service"
	"shopapi/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

type OrderService interface {
	Submit(ctx context.Context, username string) (models.UserOrder, error)
	OrdersFor(ctx context.Context, username string) ([]models.UserOrder, error)
}

type Handler struct {
	log     *slog.Logger
	service OrderService
}

func New(log *slog.Logger, service OrderService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// POST /api/order/submit/{username}
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, username string) {
	const op = "handlers.order.Submit"
	log := h.log.With("op", op)

	order, err := h.service.Submit(r.Context(), username)
	if err != nil {
		if errors.Is(err, serviceerrors.ErrContextCanceled) {
			log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			http.Error(w, "Context canceled", StatusClientClosedRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
			log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
			return
		} else if errors.Is(err, serviceerrors.ErrNotFound) {
			log.Warn("User not found", sl.Err(serviceerrors.ErrNotFound))
			http.NotFound(w, r)
			return
		} else {
			log.Error("Failed to submit order", sl.Err(err))
			http.Error(w, "Failed to submit order", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GET /api/order/history/{username}
func (h *Handler) History(w http.ResponseWriter, r *http.Request, username string) {
	const op = "handlers.order.History"
	log := h.log.With("op", op)

	orders, err := h.service.OrdersFor(r.Context(), username)
	if err != nil {
		if errors.Is(err, serviceerrors.ErrContextCanceled) {
			log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			http.Error(w, "Context canceled", StatusClientClosedRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
			log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
			return
		} else if errors.Is(err, serviceerrors.ErrNotFound) {
			log.Warn("User not found", sl.Err(serviceerrors.ErrNotFound))
			http.NotFound(w, r)
			return
		} else {
			log.Error("Failed to get order history", sl.Err(err))
			http.Error(w, "Failed to get order history", http.StatusInternalServerError)
			return
		}
	}

	if err := json.NewEncoder(w).Encode(orders); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
