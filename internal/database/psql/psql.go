package psql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	databaseerrors "shopapi/internal/database"
	"shopapi/internal/models"
	"shopapi/pkg/lib/logger/sl"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

type Storage struct {
	log *slog.Logger
	db  *sqlx.DB
}

func New(log *slog.Logger, connStr string) (*Storage, error) {
	const op = "database.psql.New"

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		log.With("op", op).Error("Error connect to database", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		log.With("op", op).Error("Error getting work dir", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	migrationsPath := filepath.Join(wd, "migrations")

	if err := goose.Up(db.DB, migrationsPath); err != nil {
		log.With("op", op).Error("Error applying migrations", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		log: log,
		db:  db,
	}, nil
}

func NewWithParams(log *slog.Logger, db *sqlx.DB) *Storage {
	return &Storage{
		log: log,
		db:  db,
	}
}

func (s *Storage) Close() {
	s.db.Close()
}

func (s *Storage) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	const op = "database.psql.CreateItem"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Item{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var itemId int
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO items (name, price)
		VALUES ($1, $2)
		RETURNING id;
	`, item.Name, item.Price).Scan(&itemId)
	if err != nil {
		log.Error("Error creating item", sl.Err(err))
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	item.Id = itemId
	return item, nil
}

func (s *Storage) GetItem(ctx context.Context, itemId int) (models.Item, error) {
	const op = "database.psql.GetItem"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Item{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var item models.Item
	err := s.db.QueryRowxContext(ctx, `
		SELECT id, name, price FROM items
		WHERE id=$1;
	`, itemId).Scan(&item.Id, &item.Name, &item.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Item doesn't exist", sl.Err(databaseerrors.ErrNotFound))
			return models.Item{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error getting item", sl.Err(err))
		return models.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *Storage) GetItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	const op = "database.psql.GetItemsByName"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, name, price FROM items
		WHERE name=$1
		ORDER BY id;
	`, name)
	if err != nil {
		log.Error("Error getting items by name", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 8)
	var tmpItem models.Item
	for rows.Next() {
		if err := rows.Scan(&tmpItem.Id, &tmpItem.Name, &tmpItem.Price); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}

		items = append(items, tmpItem)
	}

	if len(items) == 0 {
		log.Warn("No items with such name", sl.Err(databaseerrors.ErrNotFound))
		return nil, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
	}

	return items, nil
}

func (s *Storage) ListItems(ctx context.Context) ([]models.Item, error) {
	const op = "database.psql.ListItems"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, name, price FROM items
		ORDER BY id;
	`)
	if err != nil {
		log.Error("Error listing items", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 8)
	var tmpItem models.Item
	for rows.Next() {
		if err := rows.Scan(&tmpItem.Id, &tmpItem.Name, &tmpItem.Price); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}

		items = append(items, tmpItem)
	}

	return items, nil
}

func (s *Storage) CreateCart(ctx context.Context) (models.Cart, error) {
	const op = "database.psql.CreateCart"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Cart{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var cartId int
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO carts
		DEFAULT VALUES
		RETURNING id;
	`).Scan(&cartId)
	if err != nil {
		log.Error("Error creating cart", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.Cart{
		Id:    cartId,
		Items: []models.Item{},
		Total: decimal.Zero,
	}, nil
}

// SaveCart rewrites the cart's entries and total in one transaction.
func (s *Storage) SaveCart(ctx context.Context, cart models.Cart) (models.Cart, error) {
	const op = "database.psql.SaveCart"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Cart{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.db.Beginx()
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var existsChecker int
	if err = tx.QueryRowxContext(ctx, `
		SELECT id FROM carts
		WHERE id=$1;
	`, cart.Id).Scan(&existsChecker); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Cart doesn't exist", sl.Err(databaseerrors.ErrNotFound))
			return models.Cart{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error checking cart existence", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM cart_entries
		WHERE cart_id=$1;
	`, cart.Id); err != nil {
		log.Error("Failed to clear cart entries", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range cart.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cart_entries (cart_id, item_id)
			VALUES ($1, $2);
		`, cart.Id, item.Id); err != nil {
			log.Error("Failed to insert cart entry", sl.Err(err))
			return models.Cart{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE carts SET total=$1
		WHERE id=$2;
	`, cart.Total, cart.Id); err != nil {
		log.Error("Failed to update cart total", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return cart, nil
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "database.psql.CreateUser"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var userId int
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO users (username, password, cart_id)
		VALUES ($1, $2, $3)
		RETURNING id;
	`, user.Username, user.Password, user.Cart.Id).Scan(&userId)
	if err != nil {
		log.Error("Error creating user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user.Id = userId
	return user, nil
}

func (s *Storage) GetUser(ctx context.Context, userId int) (models.User, error) {
	const op = "database.psql.GetUser"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var user models.User
	var cartId int
	err := s.db.QueryRowxContext(ctx, `
		SELECT id, username, password, cart_id FROM users
		WHERE id=$1;
	`, userId).Scan(&user.Id, &user.Username, &user.Password, &cartId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("User doesn't exist", sl.Err(databaseerrors.ErrNotFound))
			return models.User{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error getting user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.loadCart(ctx, cartId)
	if err != nil {
		log.Error("Error loading user cart", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user.Cart = cart
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "database.psql.GetUserByUsername"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var user models.User
	var cartId int
	err := s.db.QueryRowxContext(ctx, `
		SELECT id, username, password, cart_id FROM users
		WHERE username=$1;
	`, username).Scan(&user.Id, &user.Username, &user.Password, &cartId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("User doesn't exist", sl.Err(databaseerrors.ErrNotFound))
			return models.User{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error getting user by username", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.loadCart(ctx, cartId)
	if err != nil {
		log.Error("Error loading user cart", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user.Cart = cart
	return user, nil
}

func (s *Storage) loadCart(ctx context.Context, cartId int) (models.Cart, error) {
	const op = "database.psql.loadCart"
	log := s.log.With("op", op)

	var total decimal.Decimal
	err := s.db.QueryRowxContext(ctx, `
		SELECT total FROM carts
		WHERE id=$1;
	`, cartId).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Cart doesn't exist", sl.Err(databaseerrors.ErrNotFound))
			return models.Cart{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error getting cart", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT i.id, i.name, i.price FROM cart_entries AS ce
		JOIN items AS i
		ON ce.item_id = i.id
		WHERE ce.cart_id=$1
		ORDER BY ce.id;
	`, cartId)
	if err != nil {
		log.Error("Error getting cart entries", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 8)
	var tmpItem models.Item
	for rows.Next() {
		if err := rows.Scan(&tmpItem.Id, &tmpItem.Name, &tmpItem.Price); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}

		items = append(items, tmpItem)
	}

	return models.Cart{
		Id:    cartId,
		Items: items,
		Total: total,
	}, nil
}

// CreateOrder persists the order row plus one snapshot row per unit.
func (s *Storage) CreateOrder(ctx context.Context, order models.UserOrder) (models.UserOrder, error) {
	const op = "database.psql.CreateOrder"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.UserOrder{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.db.Beginx()
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return models.UserOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var orderId int
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO orders (user_id, total)
		VALUES ($1, $2)
		RETURNING id;
	`, order.UserId, order.Total).Scan(&orderId)
	if err != nil {
		log.Error("Error creating order", sl.Err(err))
		return models.UserOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_entries (order_id, item_id, name, price)
			VALUES ($1, $2, $3, $4);
		`, orderId, item.Id, item.Name, item.Price); err != nil {
			log.Error("Failed to insert order entry", sl.Err(err))
			return models.UserOrder{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return models.UserOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	order.Id = orderId
	return order, nil
}

func (s *Storage) GetOrdersByUser(ctx context.Context, userId int) ([]models.UserOrder, error) {
	const op = "database.psql.GetOrdersByUser"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, total FROM orders
		WHERE user_id=$1
		ORDER BY id;
	`, userId)
	if err != nil {
		log.Error("Error getting orders", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	orders := make([]models.UserOrder, 0, 8)
	index := make(map[int]int)
	for rows.Next() {
		order := models.UserOrder{UserId: userId, Items: []models.Item{}}
		if err := rows.Scan(&order.Id, &order.Total); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}

		index[order.Id] = len(orders)
		orders = append(orders, order)
	}
	rows.Close()

	entryRows, err := s.db.QueryxContext(ctx, `
		SELECT oe.order_id, oe.item_id, oe.name, oe.price FROM order_entries AS oe
		JOIN orders AS o
		ON oe.order_id = o.id
		WHERE o.user_id=$1
		ORDER BY oe.id;
	`, userId)
	if err != nil {
		log.Error("Error getting order entries", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var orderId int
		var tmpItem models.Item
		if err := entryRows.Scan(&orderId, &tmpItem.Id, &tmpItem.Name, &tmpItem.Price); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}

		if pos, ok := index[orderId]; ok {
			orders[pos].Items = append(orders[pos].Items, tmpItem)
		}
	}

	return orders, nil
}
