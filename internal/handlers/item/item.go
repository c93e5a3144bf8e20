package itemhandler

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

type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	GetById(ctx context.Context, itemId int) (models.Item, error)
	GetByName(ctx context.Context, name string) ([]models.Item, error)
}

type Handler struct {
	log     *slog.Logger
	service ItemService
}

func New(log *slog.Logger, service ItemService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// GET /api/item
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.List"
	log := h.log.With("op", op)

	items, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, serviceerrors.ErrContextCanceled) {
			log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			http.Error(w, "Context canceled", StatusClientClosedRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
			log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
			return
		} else {
			log.Error("Failed to list items", sl.Err(err))
			http.Error(w, "Failed to list items", http.StatusInternalServerError)
			return
		}
	}

	if err := json.NewEncoder(w).Encode(items); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GET /api/item/{id}
func (h *Handler) GetById(w http.ResponseWriter, r *http.Request, itemId int) {
	const op = "handlers.item.GetById"
	log := h.log.With("op", op)

	item, err := h.service.GetById(r.Context(), itemId)
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
			log.Warn("Item not found", sl.Err(serviceerrors.ErrNotFound))
			http.NotFound(w, r)
			return
		} else {
			log.Error("Failed to get item", sl.Err(err))
			http.Error(w, "Failed to get item", http.StatusInternalServerError)
			return
		}
	}

	if err := json.NewEncoder(w).Encode(item); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GET /api/item/name/{name}
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request, name string) {
	const op = "handlers.item.GetByName"
	log := h.log.With("op", op)

	items, err := h.service.GetByName(r.Context(), name)
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
			log.Warn("No items with such name", sl.Err(serviceerrors.ErrNotFound))
			http.NotFound(w, r)
			return
		} else {
			log.Error("Failed to get items by name", sl.Err(err))
			http.Error(w, "Failed to get items by name", http.StatusInternalServerError)
			return
		}
	}

	if err := json.NewEncoder(w).Encode(items); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
