package itemservice

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

type ItemStorage interface {
	GetItem(ctx context.Context, itemId int) (models.Item, error)
	GetItemsByName(ctx context.Context, name string) ([]models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
}

// CatalogService is a read-only view over the item catalog.
type CatalogService struct {
	log     *slog.Logger
	storage ItemStorage
}

func New(log *slog.Logger, storage ItemStorage) *CatalogService {
	return &CatalogService{
		log:     log,
		storage: storage,
	}
}

func (c *CatalogService) List(ctx context.Context) ([]models.Item, error) {
	const op = "service.item.List"
	log := c.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := c.storage.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to list items"))
	}

	return items, nil
}

func (c *CatalogService) GetById(ctx context.Context, itemId int) (models.Item, error) {
	const op = "service.item.GetById"
	log := c.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	item, err := c.storage.GetItem(ctx, itemId)
	if err != nil {
		return models.Item{}, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get item"))
	}

	return item, nil
}

func (c *CatalogService) GetByName(ctx context.Context, name string) ([]models.Item, error) {
	const op = "service.item.GetByName"
	log := c.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := c.storage.GetItemsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(log, err, "Failed to get items by name"))
	}

	return items, nil
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
