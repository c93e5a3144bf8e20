package orderservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	databaseerrors "shopapi/internal/database"
	"shopapi/internal/models"
	serviceerrors "shopapi/internal/service"
	"shopapi/pkg/lib/logger/sl"
)

type OrderStorage interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateOrder(ctx context.Context, order models.UserOrder) (models.UserOrder, error)
	GetOrdersByUser(ctx context.Context, userId int) ([]models.UserOrder, error)
}

type OrderService struct {
	log     *slog.Logger
	storage OrderStorage
}

func New(log *slog.Logger, storage OrderStorage) *OrderService {
	return &OrderService{
		log:     log,
		storage: storage,
	}
}

// Submit snapshots the user's current cart into a new order.
// The source cart is left untouched.
func (o *OrderService) Submit(ctx context.Context, username string) (models.UserOrder, error) {
	const op = "service.order.Submit"
	log := o.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return models.UserOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := o.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return models.UserOrder{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get user"))
	}

	order := models.UserOrder{
		UserId: user.Id,
		Items:  slices.Clone(user.Cart.Items),
		Total:  user.Cart.Total,
	}

	created, err := o.storage.CreateOrder(ctx, order)
	if err != nil {
		return models.UserOrder{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to create order"))
	}

	return created, nil
}

func (o *OrderService) OrdersFor(ctx context.Context, username string) ([]models.UserOrder, error) {
	const op = "service.order.OrdersFor"
	log := o.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := o.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get user"))
	}

	orders, err := o.storage.GetOrdersByUser(ctx, user.Id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get orders"))
	}

	return orders, nil
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
