package postgres

import (
	"context"
	"fmt"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlannerRepository bundles the reads and writes a planning run needs so the
// whole run can share one transaction.
type PlannerRepository struct {
	pool   *pgxpool.Pool
	toys   *ToyRepository
	elves  *ElfRepository
	orders *OrderRepository
}

func NewPlannerRepository(pool *pgxpool.Pool) *PlannerRepository {
	return &PlannerRepository{
		pool:   pool,
		toys:   NewToyRepository(pool),
		elves:  NewElfRepository(pool),
		orders: NewOrderRepository(pool),
	}
}

func (r *PlannerRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *PlannerRepository) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	return r.orders.ListOpenOrders(ctx)
}

func (r *PlannerRepository) ListToys(ctx context.Context) ([]domain.Toy, error) {
	return r.toys.ListToys(ctx)
}

func (r *PlannerRepository) ListElves(ctx context.Context) ([]domain.Elf, error) {
	return r.elves.ListElves(ctx)
}

func (r *PlannerRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return r.orders.UpdateOrderStatus(ctx, id, status)
}

// GetToyForUpdate locks the toy row for the rest of the transaction so
// concurrent reservation runs cannot claim the same stock.
func (r *PlannerRepository) GetToyForUpdate(ctx context.Context, id string) (domain.Toy, error) {
	const q = `
SELECT id, name, category, build_minutes, stock, created_at
FROM toys
WHERE id = $1
FOR UPDATE`
	var t domain.Toy
	err := queryRow(ctx, r.pool, q, id).
		Scan(&t.ID, &t.Name, &t.Category, &t.BuildMinutes, &t.Stock, &t.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Toy{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Toy{}, domain.ErrToyNotFound
		}
		return domain.Toy{}, fmt.Errorf("get toy for update: %w", err)
	}
	return t, nil
}

func (r *PlannerRepository) UpdateToyStock(ctx context.Context, id string, stock int) error {
	const stmt = `UPDATE toys SET stock = $2 WHERE id = $1`
	tag, err := exec(ctx, r.pool, stmt, id, stock)
	if err != nil {
		return fmt.Errorf("update toy stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrToyNotFound
	}
	return nil
}

// ReplaceAssignments drops the current plan and writes the new one.
func (r *PlannerRepository) ReplaceAssignments(ctx context.Context, assignments []domain.Assignment) error {
	if _, err := exec(ctx, r.pool, `DELETE FROM assignments`); err != nil {
		return fmt.Errorf("clear assignments: %w", err)
	}

	const stmt = `
INSERT INTO assignments (id, order_id, elf_id, build_minutes, position, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	for _, a := range assignments {
		_, err := exec(ctx, r.pool, stmt,
			a.ID, a.OrderID, a.ElfID, a.BuildMinutes, a.Position, a.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrOrderNotFound
			}
			return fmt.Errorf("create assignment: %w", err)
		}
	}
	return nil
}

func (r *PlannerRepository) ListPlannedBuilds(ctx context.Context) ([]domain.PlannedBuild, error) {
	const q = `
SELECT a.id, a.order_id, a.elf_id, a.build_minutes, a.position, a.created_at,
       e.name, t.name, o.child_name
FROM assignments a
JOIN elves e ON e.id = a.elf_id
JOIN orders o ON o.id = a.order_id
JOIN toys t ON t.id = o.toy_id
ORDER BY e.created_at ASC, e.name ASC, a.position ASC`
	rows, err := query(ctx, r.pool, q)
	if err != nil {
		return nil, fmt.Errorf("list planned builds: %w", err)
	}
	defer rows.Close()

	var builds []domain.PlannedBuild
	for rows.Next() {
		var b domain.PlannedBuild
		if err := rows.Scan(
			&b.Assignment.ID,
			&b.Assignment.OrderID,
			&b.Assignment.ElfID,
			&b.Assignment.BuildMinutes,
			&b.Assignment.Position,
			&b.Assignment.CreatedAt,
			&b.ElfName,
			&b.ToyName,
			&b.ChildName,
		); err != nil {
			return nil, fmt.Errorf("scan planned build: %w", err)
		}
		builds = append(builds, b)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate planned builds: %w", rows.Err())
	}
	return builds, nil
}

func (r *PlannerRepository) SumOpenBuildMinutes(ctx context.Context) (int, error) {
	const q = `
SELECT COALESCE(SUM(t.build_minutes), 0)
FROM orders o
JOIN toys t ON t.id = o.toy_id
WHERE o.status <> 'cancelled'`
	var total int
	if err := queryRow(ctx, r.pool, q).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum open build minutes: %w", err)
	}
	return total, nil
}
