package cartservice

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

type CartStorage interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetItem(ctx context.Context, itemId int) (models.Item, error)
	SaveCart(ctx context.Context, cart models.Cart) (models.Cart, error)
}

// CartService mutates a user's cart. Every call is a single
// read-modify-write: resolve user and item, rewrite entries,
// recompute the total, save once.
type CartService struct {
	log     *slog.Logger
	storage CartStorage
}

func New(log *slog.Logger, storage CartStorage) *CartService {
	return &CartService{
		log:     log,
		storage: storage,
	}
}

func (c *CartService) AddToCart(ctx context.Context, username string, itemId int, quantity int) (models.Cart, error) {
	const op = "service.cart.AddToCart"
	log := c.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := c.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get user"))
	}

	item, err := c.storage.GetItem(ctx, itemId)
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get item"))
	}

	cart := user.Cart
	for i := 0; i < quantity; i++ {
		cart.Items = append(cart.Items, item)
	}
	cart.RecomputeTotal()

	saved, err := c.storage.SaveCart(ctx, cart)
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to save cart"))
	}

	return saved, nil
}

func (c *CartService) RemoveFromCart(ctx context.Context, username string, itemId int, quantity int) (models.Cart, error) {
	const op = "service.cart.RemoveFromCart"
	log := c.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := c.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get user"))
	}

	item, err := c.storage.GetItem(ctx, itemId)
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get item"))
	}

	cart := user.Cart
	cart.Items = removeEntries(cart.Items, item.Id, quantity)
	cart.RecomputeTotal()

	saved, err := c.storage.SaveCart(ctx, cart)
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to save cart"))
	}

	return saved, nil
}

// removeEntries drops up to quantity occurrences of the item, clamped
// at however many are present. Remaining entries keep their order.
func removeEntries(items []models.Item, itemId int, quantity int) []models.Item {
	kept := make([]models.Item, 0, len(items))
	removed := 0
	for _, entry := range items {
		if entry.Id == itemId && removed < quantity {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	return kept
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
