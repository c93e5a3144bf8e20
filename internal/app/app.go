package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	carthandler "shopapi/internal/handlers/cart"
	itemhandler "shopapi/internal/handlers/item"
	orderhandler "shopapi/internal/handlers/order"
	userhandler "shopapi/internal/handlers/user"
	"shopapi/internal/models"
	"shopapi/internal/routes"
	cartservice "shopapi/internal/service/cart"
	itemservice "shopapi/internal/service/item"
	orderservice "shopapi/internal/service/order"
	userservice "shopapi/internal/service/user"
)

type Storage interface {
	GetItem(ctx context.Context, itemId int) (models.Item, error)
	GetItemsByName(ctx context.Context, name string) ([]models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	GetUser(ctx context.Context, userId int) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	CreateCart(ctx context.Context) (models.Cart, error)
	SaveCart(ctx context.Context, cart models.Cart) (models.Cart, error)
	CreateOrder(ctx context.Context, order models.UserOrder) (models.UserOrder, error)
	GetOrdersByUser(ctx context.Context, userId int) ([]models.UserOrder, error)
}

type App struct {
	log     *slog.Logger
	port    int
	storage Storage
	hasher  userservice.Hasher
}

func New(log *slog.Logger, port int, storage Storage, hasher userservice.Hasher) *App {
	return &App{
		log:     log,
		port:    port,
		storage: storage,
		hasher:  hasher,
	}
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "app.Run"

	itemService := itemservice.New(a.log, a.storage)
	userService := userservice.New(a.log, a.storage, a.hasher)
	cartService := cartservice.New(a.log, a.storage)
	orderService := orderservice.New(a.log, a.storage)

	r := routes.New(
		userhandler.New(a.log, userService),
		itemhandler.New(a.log, itemService),
		carthandler.New(a.log, cartService),
		orderhandler.New(a.log, orderService),
	)

	mux := http.NewServeMux()
	r.Register(mux)

	if err := http.ListenAndServe(
		fmt.Sprintf(":%d", a.port),
		a.withRequestId(mux),
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
