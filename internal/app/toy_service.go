package app

import (
	"context"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/clock"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type ToyRepository interface {
	CreateToy(ctx context.Context, toy domain.Toy) error
	GetToy(ctx context.Context, id string) (domain.Toy, error)
	ListToys(ctx context.Context) ([]domain.Toy, error)
	UpdateToy(ctx context.Context, toy domain.Toy) error
	DeleteToy(ctx context.Context, id string) error
}

type ToyService struct {
	repo  ToyRepository
	clock clock.Clock
}

func NewToyService(repo ToyRepository, clk clock.Clock) *ToyService {
	return &ToyService{
		repo:  repo,
		clock: clk,
	}
}

const defaultCategory = "General"

type CreateToyInput struct {
	Name         string
	Category     string
	BuildMinutes int
	Stock        int
}

func (s *ToyService) CreateToy(ctx context.Context, in CreateToyInput) (domain.Toy, error) {
	if in.Name == "" {
		return domain.Toy{}, domain.ErrToyNameRequired
	}
	if in.BuildMinutes <= 0 {
		return domain.Toy{}, domain.ErrInvalidBuildTime
	}
	if in.Stock < 0 {
		return domain.Toy{}, domain.ErrInvalidStock
	}
	category := in.Category
	if category == "" {
		category = defaultCategory
	}

	toy := domain.Toy{
		ID:           newID(),
		Name:         in.Name,
		Category:     category,
		BuildMinutes: in.BuildMinutes,
		Stock:        in.Stock,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.CreateToy(ctx, toy); err != nil {
		return domain.Toy{}, err
	}
	return toy, nil
}

func (s *ToyService) GetToy(ctx context.Context, id string) (domain.Toy, error) {
	if id == "" {
		return domain.Toy{}, domain.ErrInvalidID
	}
	return s.repo.GetToy(ctx, id)
}

func (s *ToyService) ListToys(ctx context.Context) ([]domain.Toy, error) {
	return s.repo.ListToys(ctx)
}

type UpdateToyInput struct {
	ID           string
	Category     string
	BuildMinutes int
	Stock        int
}

func (s *ToyService) UpdateToy(ctx context.Context, in UpdateToyInput) (domain.Toy, error) {
	if in.ID == "" {
		return domain.Toy{}, domain.ErrInvalidID
	}
	if in.BuildMinutes <= 0 {
		return domain.Toy{}, domain.ErrInvalidBuildTime
	}
	if in.Stock < 0 {
		return domain.Toy{}, domain.ErrInvalidStock
	}

	toy, err := s.repo.GetToy(ctx, in.ID)
	if err != nil {
		return domain.Toy{}, err
	}
	if in.Category != "" {
		toy.Category = in.Category
	}
	toy.BuildMinutes = in.BuildMinutes
	toy.Stock = in.Stock

	if err := s.repo.UpdateToy(ctx, toy); err != nil {
		return domain.Toy{}, err
	}
	return toy, nil
}

func (s *ToyService) DeleteToy(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteToy(ctx, id)
}
