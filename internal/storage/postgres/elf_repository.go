package postgres

import (
	"context"
	"fmt"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ElfRepository struct {
	pool *pgxpool.Pool
}

func NewElfRepository(pool *pgxpool.Pool) *ElfRepository {
	return &ElfRepository{pool: pool}
}

func (r *ElfRepository) CreateElf(ctx context.Context, elf domain.Elf) error {
	const stmt = `
INSERT INTO elves (id, name, skills, capacity_minutes, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := exec(ctx, r.pool, stmt,
		elf.ID, elf.Name, elf.Skills, elf.CapacityMinutes, elf.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrElfAlreadyExists
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create elf: %w", err)
	}
	return nil
}

func (r *ElfRepository) GetElf(ctx context.Context, id string) (domain.Elf, error) {
	const q = `
SELECT id, name, skills, capacity_minutes, created_at
FROM elves
WHERE id = $1`
	var e domain.Elf
	err := queryRow(ctx, r.pool, q, id).
		Scan(&e.ID, &e.Name, &e.Skills, &e.CapacityMinutes, &e.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Elf{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Elf{}, domain.ErrElfNotFound
		}
		return domain.Elf{}, fmt.Errorf("get elf: %w", err)
	}
	return e, nil
}

func (r *ElfRepository) ListElves(ctx context.Context) ([]domain.Elf, error) {
	const q = `
SELECT id, name, skills, capacity_minutes, created_at
FROM elves
ORDER BY created_at ASC, name ASC`
	rows, err := query(ctx, r.pool, q)
	if err != nil {
		return nil, fmt.Errorf("list elves: %w", err)
	}
	defer rows.Close()

	var elves []domain.Elf
	for rows.Next() {
		var e domain.Elf
		if err := rows.Scan(&e.ID, &e.Name, &e.Skills, &e.CapacityMinutes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan elf: %w", err)
		}
		elves = append(elves, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate elves: %w", rows.Err())
	}
	return elves, nil
}

func (r *ElfRepository) DeleteElf(ctx context.Context, id string) error {
	const stmt = `DELETE FROM elves WHERE id = $1`
	tag, err := exec(ctx, r.pool, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete elf: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrElfNotFound
	}
	return nil
}
