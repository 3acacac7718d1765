package app

import (
	"context"
	"strings"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/clock"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type ElfRepository interface {
	CreateElf(ctx context.Context, elf domain.Elf) error
	GetElf(ctx context.Context, id string) (domain.Elf, error)
	ListElves(ctx context.Context) ([]domain.Elf, error)
	DeleteElf(ctx context.Context, id string) error
}

type ElfService struct {
	repo  ElfRepository
	clock clock.Clock
}

func NewElfService(repo ElfRepository, clk clock.Clock) *ElfService {
	return &ElfService{
		repo:  repo,
		clock: clk,
	}
}

const defaultCapacityMinutes = 120

type CreateElfInput struct {
	Name            string
	Skills          []string
	CapacityMinutes int
}

func (s *ElfService) CreateElf(ctx context.Context, in CreateElfInput) (domain.Elf, error) {
	if in.Name == "" {
		return domain.Elf{}, domain.ErrElfNameRequired
	}
	skills := normalizeSkills(in.Skills)
	if len(skills) == 0 {
		return domain.Elf{}, domain.ErrSkillsRequired
	}
	capacity := in.CapacityMinutes
	if capacity == 0 {
		capacity = defaultCapacityMinutes
	}
	if capacity < 0 {
		return domain.Elf{}, domain.ErrInvalidCapacity
	}

	elf := domain.Elf{
		ID:              newID(),
		Name:            in.Name,
		Skills:          skills,
		CapacityMinutes: capacity,
		CreatedAt:       s.clock.Now(),
	}

	if err := s.repo.CreateElf(ctx, elf); err != nil {
		return domain.Elf{}, err
	}
	return elf, nil
}

func (s *ElfService) GetElf(ctx context.Context, id string) (domain.Elf, error) {
	if id == "" {
		return domain.Elf{}, domain.ErrInvalidID
	}
	return s.repo.GetElf(ctx, id)
}

func (s *ElfService) ListElves(ctx context.Context) ([]domain.Elf, error) {
	return s.repo.ListElves(ctx)
}

func (s *ElfService) DeleteElf(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteElf(ctx, id)
}

// normalizeSkills trims, drops empties and deduplicates while keeping the
// caller's order.
func normalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}
