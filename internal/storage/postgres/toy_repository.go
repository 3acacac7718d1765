package postgres

import (
	"context"
	"fmt"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ToyRepository struct {
	pool *pgxpool.Pool
}

func NewToyRepository(pool *pgxpool.Pool) *ToyRepository {
	return &ToyRepository{pool: pool}
}

func (r *ToyRepository) CreateToy(ctx context.Context, toy domain.Toy) error {
	const stmt = `
INSERT INTO toys (id, name, category, build_minutes, stock, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := exec(ctx, r.pool, stmt,
		toy.ID, toy.Name, toy.Category, toy.BuildMinutes, toy.Stock, toy.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrToyAlreadyExists
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create toy: %w", err)
	}
	return nil
}

func (r *ToyRepository) GetToy(ctx context.Context, id string) (domain.Toy, error) {
	const q = `
SELECT id, name, category, build_minutes, stock, created_at
FROM toys
WHERE id = $1`
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
		return domain.Toy{}, fmt.Errorf("get toy: %w", err)
	}
	return t, nil
}

func (r *ToyRepository) ListToys(ctx context.Context) ([]domain.Toy, error) {
	const q = `
SELECT id, name, category, build_minutes, stock, created_at
FROM toys
ORDER BY created_at ASC, name ASC`
	rows, err := query(ctx, r.pool, q)
	if err != nil {
		return nil, fmt.Errorf("list toys: %w", err)
	}
	defer rows.Close()

	var toys []domain.Toy
	for rows.Next() {
		var t domain.Toy
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.BuildMinutes, &t.Stock, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan toy: %w", err)
		}
		toys = append(toys, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate toys: %w", rows.Err())
	}
	return toys, nil
}

func (r *ToyRepository) UpdateToy(ctx context.Context, toy domain.Toy) error {
	const stmt = `
UPDATE toys
SET category = $2, build_minutes = $3, stock = $4
WHERE id = $1`
	tag, err := exec(ctx, r.pool, stmt, toy.ID, toy.Category, toy.BuildMinutes, toy.Stock)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update toy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrToyNotFound
	}
	return nil
}

func (r *ToyRepository) DeleteToy(ctx context.Context, id string) error {
	const stmt = `DELETE FROM toys WHERE id = $1`
	tag, err := exec(ctx, r.pool, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isForeignKeyViolation(err) {
			return domain.ErrToyInUse
		}
		return fmt.Errorf("delete toy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrToyNotFound
	}
	return nil
}
