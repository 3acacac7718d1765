package app

import (
	"context"
	"testing"
	"time"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/clock"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type fakeToyRepo struct {
	toys []domain.Toy
}

func (f *fakeToyRepo) CreateToy(ctx context.Context, toy domain.Toy) error {
	for _, t := range f.toys {
		if t.Name == toy.Name {
			return domain.ErrToyAlreadyExists
		}
	}
	f.toys = append(f.toys, toy)
	return nil
}

func (f *fakeToyRepo) GetToy(ctx context.Context, id string) (domain.Toy, error) {
	for _, t := range f.toys {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Toy{}, domain.ErrToyNotFound
}

func (f *fakeToyRepo) ListToys(ctx context.Context) ([]domain.Toy, error) {
	return f.toys, nil
}

func (f *fakeToyRepo) UpdateToy(ctx context.Context, toy domain.Toy) error {
	for i := range f.toys {
		if f.toys[i].ID == toy.ID {
			f.toys[i] = toy
			return nil
		}
	}
	return domain.ErrToyNotFound
}

func (f *fakeToyRepo) DeleteToy(ctx context.Context, id string) error {
	for i := range f.toys {
		if f.toys[i].ID == id {
			f.toys = append(f.toys[:i], f.toys[i+1:]...)
			return nil
		}
	}
	return domain.ErrToyNotFound
}

func TestToyService_CreateToy(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)

	t.Run("creates toy with defaults", func(t *testing.T) {
		repo := &fakeToyRepo{}
		svc := NewToyService(repo, clock.NewFixed(now))

		toy, err := svc.CreateToy(context.Background(), CreateToyInput{
			Name:         "Teddy Bear",
			BuildMinutes: 30,
			Stock:        12,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if toy.ID == "" {
			t.Fatalf("expected toy ID to be set")
		}
		if toy.Category != "General" {
			t.Fatalf("expected default category General, got %s", toy.Category)
		}
		if !toy.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, toy.CreatedAt)
		}
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			input   CreateToyInput
			wantErr error
		}{
			{"missing name", CreateToyInput{BuildMinutes: 10, Stock: 1}, domain.ErrToyNameRequired},
			{"zero build time", CreateToyInput{Name: "Sled", Stock: 1}, domain.ErrInvalidBuildTime},
			{"negative build time", CreateToyInput{Name: "Sled", BuildMinutes: -5, Stock: 1}, domain.ErrInvalidBuildTime},
			{"negative stock", CreateToyInput{Name: "Sled", BuildMinutes: 10, Stock: -1}, domain.ErrInvalidStock},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc := NewToyService(&fakeToyRepo{}, clock.NewFixed(now))
				if _, err := svc.CreateToy(context.Background(), tc.input); err != tc.wantErr {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		repo := &fakeToyRepo{}
		svc := NewToyService(repo, clock.NewFixed(now))

		if _, err := svc.CreateToy(context.Background(), CreateToyInput{Name: "Robot", BuildMinutes: 50, Stock: 6}); err != nil {
			t.Fatalf("first create: %v", err)
		}
		if _, err := svc.CreateToy(context.Background(), CreateToyInput{Name: "Robot", BuildMinutes: 40, Stock: 1}); err != domain.ErrToyAlreadyExists {
			t.Fatalf("expected ErrToyAlreadyExists, got %v", err)
		}
	})
}

func TestToyService_UpdateToy(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	repo := &fakeToyRepo{toys: []domain.Toy{
		{ID: "toy-1", Name: "Robot", Category: "Electronics", BuildMinutes: 50, Stock: 6},
	}}
	svc := NewToyService(repo, clock.NewFixed(now))

	t.Run("updates fields, keeps category when omitted", func(t *testing.T) {
		toy, err := svc.UpdateToy(context.Background(), UpdateToyInput{
			ID:           "toy-1",
			BuildMinutes: 45,
			Stock:        10,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if toy.Category != "Electronics" {
			t.Fatalf("expected category kept, got %s", toy.Category)
		}
		if toy.BuildMinutes != 45 || toy.Stock != 10 {
			t.Fatalf("expected updated fields, got %+v", toy)
		}
	})

	t.Run("unknown toy", func(t *testing.T) {
		if _, err := svc.UpdateToy(context.Background(), UpdateToyInput{ID: "nope", BuildMinutes: 10}); err != domain.ErrToyNotFound {
			t.Fatalf("expected ErrToyNotFound, got %v", err)
		}
	})
}
