package userhandler

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

type UserService interface {
	GetById(ctx context.Context, userId int) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, username, password, confirmPassword string) (models.User, error)
}

type CreateUserRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type Handler struct {
	log     *slog.Logger
	service UserService
}

func New(log *slog.Logger, service UserService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// GET /api/user/id/{id}
func (h *Handler) FindById(w http.ResponseWriter, r *http.Request, userId int) {
	const op = "handlers.user.FindById"
	log := h.log.With("op", op)

	user, err := h.service.GetById(r.Context(), userId)
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
			log.Error("Failed to get user", sl.Err(err))
			http.Error(w, "Failed to get user", http.StatusInternalServerError)
			return
		}
	}

	if err := json.NewEncoder(w).Encode(user); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GET /api/user/{username}
func (h *Handler) FindByUsername(w http.ResponseWriter, r *http.Request, username string) {
	const op = "handlers.user.FindByUsername"
	log := h.log.With("op", op)

	user, err := h.service.GetByUsername(r.Context(), username)
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
			log.Error("Failed to get user", sl.Err(err))
			http.Error(w, "Failed to get user", http.StatusInternalServerError)
			return
		}
	}

	if err := json.NewEncoder(w).Encode(user); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// POST /api/user/create
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Create"
	log := h.log.With("op", op)

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Cannot decode request body", sl.Err(err))
		http.Error(w, "Cannot decode request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := validator.New().Struct(req); err != nil {
		log.Error("Failed to validate", sl.Err(err))
		http.Error(w, "Failed to validate", http.StatusBadRequest)
		return
	}

	user, err := h.service.Create(r.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		if errors.Is(err, serviceerrors.ErrContextCanceled) {
			log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			http.Error(w, "Context canceled", StatusClientClosedRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
			log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
			return
		} else if errors.Is(err, serviceerrors.ErrValidation) {
			log.Warn("Password policy violated", sl.Err(serviceerrors.ErrValidation))
			http.Error(w, "Password policy violated", http.StatusBadRequest)
			return
		} else {
			log.Error("Failed to create user", sl.Err(err))
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(user); err != nil {
		log.Error("Failed to encode response", sl.Err(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
