package postgres

import (
	"context"
	"fmt"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id, toy_id, child_name, priority, address, message, status, created_at`

func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	const stmt = `
INSERT INTO orders (id, toy_id, child_name, priority, address, message, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := exec(ctx, r.pool, stmt,
		order.ID,
		order.ToyID,
		order.ChildName,
		order.Priority,
		order.Address,
		order.Message,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrToyNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(queryRow(ctx, r.pool, q, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Order{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at ASC, id ASC`
	return r.listOrders(ctx, q)
}

// ListOpenOrders returns every non-cancelled order in placement order.
func (r *OrderRepository) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE status <> 'cancelled' ORDER BY created_at ASC, id ASC`
	return r.listOrders(ctx, q)
}

func (r *OrderRepository) TopPriorityOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	q := `
SELECT ` + orderColumns + `
FROM orders
WHERE status <> 'cancelled'
ORDER BY priority DESC, created_at ASC, id ASC
LIMIT $1`
	return r.listOrders(ctx, q, limit)
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const stmt = `UPDATE orders SET status = $2 WHERE id = $1`
	tag, err := exec(ctx, r.pool, stmt, id, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) listOrders(ctx context.Context, q string, args ...any) ([]domain.Order, error) {
	rows, err := query(ctx, r.pool, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate orders: %w", rows.Err())
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.ToyID,
		&o.ChildName,
		&o.Priority,
		&o.Address,
		&o.Message,
		&o.Status,
		&o.CreatedAt,
	)
	return o, err
}
