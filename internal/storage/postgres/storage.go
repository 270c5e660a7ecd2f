package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "storefront/internal/domain/errors"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage layer relies on.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type deliveryRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

// newPgxPool is swappable in tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// NewWithPool creates storage on top of an existing pool, without schema
// initialization.
func NewWithPool(pool Pool, logger *slog.Logger) *Storage {
	return &Storage{pool: pool, logger: logger}
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Deliveries() repository.DeliveryRepository {
	return &deliveryRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            staff BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id BIGSERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            slug TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price BIGINT NOT NULL,
            stock INT NOT NULL DEFAULT 0,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            colours TEXT[] NOT NULL DEFAULT '{}',
            sizes TEXT[] NOT NULL DEFAULT '{}',
            category_id BIGINT NOT NULL REFERENCES categories(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            line1 TEXT NOT NULL,
            line2 TEXT NOT NULL,
            zip_code TEXT NOT NULL,
            city TEXT NOT NULL,
            kind TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS deliveries (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            cost BIGINT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT REFERENCES users(id),
            cart_token TEXT NOT NULL DEFAULT '',
            started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            placed BOOLEAN NOT NULL DEFAULT FALSE,
            placed_at TIMESTAMPTZ,
            billing_address_id BIGINT REFERENCES addresses(id),
            shipping_address_id BIGINT REFERENCES addresses(id),
            delivery_id BIGINT REFERENCES deliveries(id),
            delivery_cost BIGINT
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL REFERENCES products(id),
            product_title TEXT NOT NULL,
            unit_price BIGINT NOT NULL,
            quantity INT NOT NULL,
            colour TEXT NOT NULL DEFAULT '',
            size TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            method TEXT NOT NULL,
            capture_ref TEXT NOT NULL DEFAULT '',
            amount BIGINT NOT NULL,
            raw_response TEXT NOT NULL DEFAULT '',
            successful BOOLEAN NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_open_user ON orders(user_id) WHERE NOT placed`,
		`CREATE INDEX IF NOT EXISTS idx_orders_open_token ON orders(cart_token) WHERE NOT placed`,
		`CREATE INDEX IF NOT EXISTS idx_orders_placed ON orders(placed_at DESC) WHERE placed`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, staff, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Staff, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, staff, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Staff, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, title, slug, description, price, stock, active, colours, sizes, category_id, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var price int64
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &price, &p.Stock, &p.Active, &p.Colours, &p.Sizes, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	p.Price = model.Money(price)
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (title, slug, description, price, stock, active, colours, sizes, category_id)
	               VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	               RETURNING id, created_at, updated_at`
	stored := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.Title, product.Slug, product.Description, product.Price.Minor(),
		product.Stock, product.Active, product.Colours, product.Sizes, product.CategoryID,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	const query = `UPDATE products
	               SET title=$1, slug=$2, description=$3, price=$4, stock=$5, active=$6,
	                   colours=$7, sizes=$8, category_id=$9, updated_at=NOW()
	               WHERE id=$10`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.Title, product.Slug, product.Description, product.Price.Minor(),
		product.Stock, product.Active, product.Colours, product.Sizes, product.CategoryID,
		product.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, slug))
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	query := `SELECT p.id, p.title, p.slug, p.description, p.price, p.stock, p.active,
	                 p.colours, p.sizes, p.category_id, p.created_at, p.updated_at
	          FROM products p`
	var args []any
	if filter.Category != "" {
		query += ` JOIN categories c ON c.id = p.category_id WHERE c.name = $1`
		args = append(args, filter.Category)
		if !filter.IncludeInactive {
			query += ` AND p.active`
		}
	} else if !filter.IncludeInactive {
		query += ` WHERE p.active`
	}
	query += ` ORDER BY p.id`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		var price int64
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &price, &p.Stock, &p.Active, &p.Colours, &p.Sizes, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Price = model.Money(price)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE id=$1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, cart_token, started_at, placed, placed_at,
	billing_address_id, shipping_address_id, delivery_id, delivery_cost`

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var deliveryCost *int64
	err := row.Scan(&o.ID, &o.UserID, &o.CartToken, &o.StartedAt, &o.Placed, &o.PlacedAt,
		&o.BillingAddressID, &o.ShippingAddressID, &o.DeliveryID, &deliveryCost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if deliveryCost != nil {
		cost := model.Money(*deliveryCost)
		o.DeliveryCost = &cost
	}
	return &o, nil
}

func loadItems(ctx context.Context, q rowQuerier, orderID int64) ([]model.LineItem, error) {
	const query = `SELECT id, order_id, product_id, product_title, unit_price, quantity, colour, size, created_at
	               FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.LineItem
	for rows.Next() {
		var item model.LineItem
		var unitPrice int64
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductTitle, &unitPrice, &item.Quantity, &item.Colour, &item.Size, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.UnitPrice = model.Money(unitPrice)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) OpenForActor(ctx context.Context, actor model.CartActor) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		found, err := findOpenOrder(ctx, tx, actor)
		if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		if found == nil {
			found, err = createOpenOrder(ctx, tx, actor)
			if err != nil {
				return err
			}
		}
		items, err := loadItems(ctx, tx, found.ID)
		if err != nil {
			return err
		}
		found.Items = items
		order = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func findOpenOrder(ctx context.Context, tx pgx.Tx, actor model.CartActor) (*model.Order, error) {
	if actor.UserID != nil {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 AND NOT placed ORDER BY started_at LIMIT 1 FOR UPDATE`
		order, err := scanOrder(tx.QueryRow(ctx, query, *actor.UserID))
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		if actor.Token == "" {
			return nil, domainErrors.ErrNotFound
		}
		// Adopt the guest cart started before authentication.
		query = `SELECT ` + orderColumns + ` FROM orders
		         WHERE cart_token=$1 AND user_id IS NULL AND NOT placed
		         ORDER BY started_at LIMIT 1 FOR UPDATE`
		order, err = scanOrder(tx.QueryRow(ctx, query, actor.Token))
		if err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, `UPDATE orders SET user_id=$1 WHERE id=$2`, *actor.UserID, order.ID); err != nil {
			return nil, err
		}
		order.UserID = actor.UserID
		return order, nil
	}

	if actor.Token == "" {
		return nil, domainErrors.ErrNotFound
	}
	query := `SELECT ` + orderColumns + ` FROM orders
	          WHERE cart_token=$1 AND user_id IS NULL AND NOT placed
	          ORDER BY started_at LIMIT 1 FOR UPDATE`
	return scanOrder(tx.QueryRow(ctx, query, actor.Token))
}

func createOpenOrder(ctx context.Context, tx pgx.Tx, actor model.CartActor) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, cart_token) VALUES ($1, $2) RETURNING id, started_at`
	order := &model.Order{UserID: actor.UserID, CartToken: actor.Token}
	if err := tx.QueryRow(ctx, query, actor.UserID, actor.Token).Scan(&order.ID, &order.StartedAt); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	items, err := loadItems(ctx, r.storage.pool, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) ListPlacedByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 AND placed ORDER BY placed_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, orders)
}

func (r *orderRepository) ListPlaced(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE placed ORDER BY placed_at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, orders)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()
	var result []model.Order
	for rows.Next() {
		var o model.Order
		var deliveryCost *int64
		if err := rows.Scan(&o.ID, &o.UserID, &o.CartToken, &o.StartedAt, &o.Placed, &o.PlacedAt,
			&o.BillingAddressID, &o.ShippingAddressID, &o.DeliveryID, &deliveryCost); err != nil {
			return nil, err
		}
		if deliveryCost != nil {
			cost := model.Money(*deliveryCost)
			o.DeliveryCost = &cost
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) ([]model.Order, error) {
	for i := range orders {
		items, err := loadItems(ctx, r.storage.pool, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *orderRepository) AddItem(ctx context.Context, item *model.LineItem) (*model.LineItem, error) {
	const query = `INSERT INTO order_items (order_id, product_id, product_title, unit_price, quantity, colour, size)
	               VALUES ($1, $2, $3, $4, $5, $6, $7)
	               RETURNING id, created_at`
	stored := *item
	err := r.storage.pool.QueryRow(ctx, query,
		item.OrderID, item.ProductID, item.ProductTitle, item.UnitPrice.Minor(),
		item.Quantity, item.Colour, item.Size,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &stored, nil
}

func (r *orderRepository) GetItem(ctx context.Context, orderID, itemID int64) (*model.LineItem, error) {
	const query = `SELECT id, order_id, product_id, product_title, unit_price, quantity, colour, size, created_at
	               FROM order_items WHERE id=$1 AND order_id=$2`
	var item model.LineItem
	var unitPrice int64
	err := r.storage.pool.QueryRow(ctx, query, itemID, orderID).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.ProductTitle, &unitPrice, &item.Quantity, &item.Colour, &item.Size, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	item.UnitPrice = model.Money(unitPrice)
	return &item, nil
}

func (r *orderRepository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE order_items SET quantity=$1 WHERE id=$2`, quantity, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) RemoveItem(ctx context.Context, itemID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM order_items WHERE id=$1`, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) SetAddresses(ctx context.Context, orderID int64, billingID, shippingID int64) error {
	const query = `UPDATE orders SET billing_address_id=$1, shipping_address_id=$2 WHERE id=$3 AND NOT placed`
	tag, err := r.storage.pool.Exec(ctx, query, billingID, shippingID, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) SetDelivery(ctx context.Context, orderID int64, deliveryID int64, cost model.Money) error {
	const query = `UPDATE orders SET delivery_id=$1, delivery_cost=$2 WHERE id=$3 AND NOT placed`
	tag, err := r.storage.pool.Exec(ctx, query, deliveryID, cost.Minor(), orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) PlaceWithPayment(ctx context.Context, orderID int64, at time.Time, payment *model.Payment) (*model.Payment, error) {
	const placeQuery = `UPDATE orders SET placed=TRUE, placed_at=$1 WHERE id=$2 AND NOT placed`
	const paymentQuery = `INSERT INTO payments (order_id, method, capture_ref, amount, raw_response, successful, status)
	                      VALUES ($1, $2, $3, $4, $5, $6, $7)
	                      RETURNING id, created_at`

	stored := *payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, placeQuery, at, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrAlreadyPlaced
		}
		return tx.QueryRow(ctx, paymentQuery,
			payment.OrderID, payment.Method, payment.CaptureRef, payment.Amount.Minor(),
			payment.RawResponse, payment.Successful, string(payment.Status),
		).Scan(&stored.ID, &stored.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// --- DeliveryRepository implementation ---

func (r *deliveryRepository) List(ctx context.Context) ([]model.DeliveryOption, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name, cost FROM deliveries ORDER BY cost`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DeliveryOption
	for rows.Next() {
		var option model.DeliveryOption
		var cost int64
		if err := rows.Scan(&option.ID, &option.Name, &cost); err != nil {
			return nil, err
		}
		option.Cost = model.Money(cost)
		result = append(result, option)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *deliveryRepository) GetByID(ctx context.Context, id int64) (*model.DeliveryOption, error) {
	var option model.DeliveryOption
	var cost int64
	err := r.storage.pool.QueryRow(ctx, `SELECT id, name, cost FROM deliveries WHERE id=$1`, id).Scan(&option.ID, &option.Name, &cost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	option.Cost = model.Money(cost)
	return &option, nil
}

// --- AddressRepository implementation ---

func (r *addressRepository) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	const query = `INSERT INTO addresses (user_id, line1, line2, zip_code, city, kind)
	               VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	stored := *address
	err := r.storage.pool.QueryRow(ctx, query,
		address.UserID, address.Line1, address.Line2, address.ZipCode, address.City, string(address.Kind),
	).Scan(&stored.ID)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	const query = `SELECT id, user_id, line1, line2, zip_code, city, kind FROM addresses WHERE id=$1`
	var a model.Address
	var kind string
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Line1, &a.Line2, &a.ZipCode, &a.City, &kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	a.Kind = model.AddressKind(kind)
	return &a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64, kind model.AddressKind) ([]model.Address, error) {
	const query = `SELECT id, user_id, line1, line2, zip_code, city, kind
	               FROM addresses WHERE user_id=$1 AND kind=$2 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, userID, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		var k string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Line1, &a.Line2, &a.ZipCode, &a.City, &k); err != nil {
			return nil, err
		}
		a.Kind = model.AddressKind(k)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- PaymentRepository implementation ---

const paymentColumns = `id, order_id, method, capture_ref, amount, raw_response, successful, status, created_at`

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	const query = `INSERT INTO payments (order_id, method, capture_ref, amount, raw_response, successful, status)
	               VALUES ($1, $2, $3, $4, $5, $6, $7)
	               RETURNING id, created_at`
	stored := *payment
	err := r.storage.pool.QueryRow(ctx, query,
		payment.OrderID, payment.Method, payment.CaptureRef, payment.Amount.Minor(),
		payment.RawResponse, payment.Successful, string(payment.Status),
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &stored, nil
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]model.Payment, error) {
	defer rows.Close()
	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		var amount int64
		var status string
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Method, &p.CaptureRef, &amount, &p.RawResponse, &p.Successful, &status, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Amount = model.Money(amount)
		p.Status = model.PaymentStatus(status)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *paymentRepository) SelectBatchForVerification(ctx context.Context, limit int) ([]model.Payment, error) {
	const selectQuery = `SELECT id, order_id, method, capture_ref, amount, raw_response, successful, status, created_at
	                     FROM payments
	                     WHERE status IN ('PENDING', 'CHECKING')
	                     ORDER BY created_at
	                     LIMIT $1
	                     FOR UPDATE SKIP LOCKED`

	var payments []model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p model.Payment
			var amount int64
			var status string
			if err := rows.Scan(&p.ID, &p.OrderID, &p.Method, &p.CaptureRef, &amount, &p.RawResponse, &p.Successful, &status, &p.CreatedAt); err != nil {
				return err
			}
			p.Amount = model.Money(amount)
			p.Status = model.PaymentStatus(status)
			payments = append(payments, p)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		for i := range payments {
			if _, err := tx.Exec(ctx, `UPDATE payments SET status='CHECKING' WHERE id=$1`, payments[i].ID); err != nil {
				return err
			}
			payments[i].Status = model.PaymentStatusChecking
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) UpdateVerification(ctx context.Context, paymentID int64, status model.PaymentStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE payments SET status=$1 WHERE id=$2`, string(status), paymentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
