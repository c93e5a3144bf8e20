package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	databaseerrors "shopapi/internal/database"
	"shopapi/internal/models"
	serviceerrors "shopapi/internal/service"
	"shopapi/pkg/lib/logger/sl"
)

const minPasswordLength = 7

type UserStorage interface {
	GetUser(ctx context.Context, userId int) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	CreateCart(ctx context.Context) (models.Cart, error)
}

// Hasher is the injected one-way password digest capability.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

type DirectoryService struct {
	log     *slog.Logger
	storage UserStorage
	hasher  Hasher
}

func New(log *slog.Logger, storage UserStorage, hasher Hasher) *DirectoryService {
	return &DirectoryService{
		log:     log,
		storage: storage,
		hasher:  hasher,
	}
}

func (d *DirectoryService) GetById(ctx context.Context, userId int) (models.User, error) {
	const op = "service.user.GetById"
	log := d.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := d.storage.GetUser(ctx, userId)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get user"))
	}

	return user, nil
}

func (d *DirectoryService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "service.user.GetByUsername"
	log := d.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := d.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get user by username"))
	}

	return user, nil
}

// Create validates the password policy, hashes the password and persists
// a fresh empty cart followed by the user owning it. Validation failures
// touch nothing.
func (d *DirectoryService) Create(ctx context.Context, username, password, confirmPassword string) (models.User, error) {
	const op = "service.user.Create"
	log := d.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if password != confirmPassword {
		log.Warn("passwords don't match", sl.Err(serviceerrors.ErrValidation))
		return models.User{}, fmt.Errorf("%s: passwords don't match: %w", op, serviceerrors.ErrValidation)
	}
	if len(password) < minPasswordLength {
		log.Warn("password too short", sl.Err(serviceerrors.ErrValidation))
		return models.User{}, fmt.Errorf("%s: password too short: %w", op, serviceerrors.ErrValidation)
	}

	digest, err := d.hasher.Hash(password)
	if err != nil {
		log.Error("Failed to hash password", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := d.storage.CreateCart(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to create cart"))
	}

	user := models.User{
		Username: username,
		Password: digest,
		Cart:     cart,
	}

	created, err := d.storage.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to create user"))
	}

	return created, nil
}

func checkContext(ctx context.Context, log *slog.Logger) error {
	select {
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(err))
			return serviceerrors.ErrContextCanceled
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(err))
			return serviceerrors.ErrDeadlineExceeded
		}
		log.Error("unexpected error", sl.Err(err))
		return err
	default:
		return nil
	}
}

func classify(log *slog.Logger, err error, msg string) error {
	if errors.Is(err, context.Canceled) {
		log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
		return serviceerrors.ErrContextCanceled
	} else if errors.Is(err, context.DeadlineExceeded) {
		log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
		return serviceerrors.ErrDeadlineExceeded
	} else if errors.Is(err, databaseerrors.ErrNotFound) {
		log.Warn("entity not found", sl.Err(serviceerrors.ErrNotFound))
		return serviceerrors.ErrNotFound
	}
	log.Error(msg, sl.Err(err))
	return err
}
