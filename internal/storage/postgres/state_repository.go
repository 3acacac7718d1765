package postgres

import (
	"context"
	"fmt"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StateRepository serves whole-workshop snapshot export and restore.
type StateRepository struct {
	pool   *pgxpool.Pool
	toys   *ToyRepository
	elves  *ElfRepository
	orders *OrderRepository
}

func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{
		pool:   pool,
		toys:   NewToyRepository(pool),
		elves:  NewElfRepository(pool),
		orders: NewOrderRepository(pool),
	}
}

func (r *StateRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *StateRepository) ListToys(ctx context.Context) ([]domain.Toy, error) {
	return r.toys.ListToys(ctx)
}

func (r *StateRepository) ListElves(ctx context.Context) ([]domain.Elf, error) {
	return r.elves.ListElves(ctx)
}

func (r *StateRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.orders.ListOrders(ctx)
}

func (r *StateRepository) CreateToy(ctx context.Context, toy domain.Toy) error {
	return r.toys.CreateToy(ctx, toy)
}

func (r *StateRepository) CreateElf(ctx context.Context, elf domain.Elf) error {
	return r.elves.CreateElf(ctx, elf)
}

func (r *StateRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	return r.orders.CreateOrder(ctx, order)
}

// DeleteAll clears the workshop in dependency order.
func (r *StateRepository) DeleteAll(ctx context.Context) error {
	for _, stmt := range []string{
		`DELETE FROM assignments`,
		`DELETE FROM orders`,
		`DELETE FROM elves`,
		`DELETE FROM toys`,
	} {
		if _, err := exec(ctx, r.pool, stmt); err != nil {
			return fmt.Errorf("clear state: %w", err)
		}
	}
	return nil
}
