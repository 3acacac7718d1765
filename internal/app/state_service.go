package app

import (
	"context"
	"time"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/clock"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type StateRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	ListToys(ctx context.Context) ([]domain.Toy, error)
	ListElves(ctx context.Context) ([]domain.Elf, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	DeleteAll(ctx context.Context) error
	CreateToy(ctx context.Context, toy domain.Toy) error
	CreateElf(ctx context.Context, elf domain.Elf) error
	CreateOrder(ctx context.Context, order domain.Order) error
}

// StateService exports and restores the whole workshop as one document.
// Orders reference toys by name in the document, so a snapshot is portable
// across databases.
type StateService struct {
	repo  StateRepository
	clock clock.Clock
}

func NewStateService(repo StateRepository, clk clock.Clock) *StateService {
	return &StateService{
		repo:  repo,
		clock: clk,
	}
}

type SnapshotToy struct {
	Name         string
	Category     string
	BuildMinutes int
	Stock        int
}

type SnapshotElf struct {
	Name            string
	Skills          []string
	CapacityMinutes int
}

type SnapshotOrder struct {
	ChildName string
	ToyName   string
	Priority  int
	Address   string
	Message   string
	Status    domain.OrderStatus
}

type Snapshot struct {
	Toys   []SnapshotToy
	Elves  []SnapshotElf
	Orders []SnapshotOrder
}

func (s *StateService) Export(ctx context.Context) (Snapshot, error) {
	toys, err := s.repo.ListToys(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	elves, err := s.repo.ListElves(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	toyName := make(map[string]string, len(toys))
	snap := Snapshot{
		Toys:   make([]SnapshotToy, 0, len(toys)),
		Elves:  make([]SnapshotElf, 0, len(elves)),
		Orders: make([]SnapshotOrder, 0, len(orders)),
	}

	for _, toy := range toys {
		toyName[toy.ID] = toy.Name
		snap.Toys = append(snap.Toys, SnapshotToy{
			Name:         toy.Name,
			Category:     toy.Category,
			BuildMinutes: toy.BuildMinutes,
			Stock:        toy.Stock,
		})
	}
	for _, elf := range elves {
		snap.Elves = append(snap.Elves, SnapshotElf{
			Name:            elf.Name,
			Skills:          elf.Skills,
			CapacityMinutes: elf.CapacityMinutes,
		})
	}
	for _, order := range orders {
		snap.Orders = append(snap.Orders, SnapshotOrder{
			ChildName: order.ChildName,
			ToyName:   toyName[order.ToyID],
			Priority:  order.Priority,
			Address:   order.Address,
			Message:   order.Message,
			Status:    order.Status,
		})
	}
	return snap, nil
}

// Import replaces the entire workshop with the snapshot content. The whole
// restore runs in one transaction: an invalid snapshot leaves the current
// state untouched.
func (s *StateService) Import(ctx context.Context, snap Snapshot) error {
	if err := validateSnapshot(snap); err != nil {
		return err
	}
	now := s.clock.Now()

	return s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.DeleteAll(txCtx); err != nil {
			return err
		}

		toyIDByName := make(map[string]string, len(snap.Toys))
		for _, toy := range snap.Toys {
			id := newID()
			toyIDByName[toy.Name] = id
			category := toy.Category
			if category == "" {
				category = defaultCategory
			}
			if err := s.repo.CreateToy(txCtx, domain.Toy{
				ID:           id,
				Name:         toy.Name,
				Category:     category,
				BuildMinutes: toy.BuildMinutes,
				Stock:        toy.Stock,
				CreatedAt:    now,
			}); err != nil {
				return err
			}
		}

		for _, elf := range snap.Elves {
			capacity := elf.CapacityMinutes
			if capacity == 0 {
				capacity = defaultCapacityMinutes
			}
			if err := s.repo.CreateElf(txCtx, domain.Elf{
				ID:              newID(),
				Name:            elf.Name,
				Skills:          normalizeSkills(elf.Skills),
				CapacityMinutes: capacity,
				CreatedAt:       now,
			}); err != nil {
				return err
			}
		}

		for i, order := range snap.Orders {
			toyID, ok := toyIDByName[order.ToyName]
			if !ok {
				return domain.ErrToyNotFound
			}
			priority := order.Priority
			if priority == 0 {
				priority = defaultPriority
			}
			status := order.Status
			if status == "" {
				status = domain.OrderStatusPending
			}
			if err := s.repo.CreateOrder(txCtx, domain.Order{
				ID:        newID(),
				ToyID:     toyID,
				ChildName: order.ChildName,
				Priority:  priority,
				Address:   order.Address,
				Message:   order.Message,
				Status:    status,
				// stagger created_at so the document's order sequence
				// survives the created_at sort; microsecond steps because
				// timestamptz keeps no finer precision
				CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func validateSnapshot(snap Snapshot) error {
	seenToys := make(map[string]struct{}, len(snap.Toys))
	for _, toy := range snap.Toys {
		if toy.Name == "" {
			return domain.ErrToyNameRequired
		}
		if _, dup := seenToys[toy.Name]; dup {
			return domain.ErrToyAlreadyExists
		}
		seenToys[toy.Name] = struct{}{}
		if toy.BuildMinutes <= 0 {
			return domain.ErrInvalidBuildTime
		}
		if toy.Stock < 0 {
			return domain.ErrInvalidStock
		}
	}

	seenElves := make(map[string]struct{}, len(snap.Elves))
	for _, elf := range snap.Elves {
		if elf.Name == "" {
			return domain.ErrElfNameRequired
		}
		if _, dup := seenElves[elf.Name]; dup {
			return domain.ErrElfAlreadyExists
		}
		seenElves[elf.Name] = struct{}{}
		if len(normalizeSkills(elf.Skills)) == 0 {
			return domain.ErrSkillsRequired
		}
		if elf.CapacityMinutes < 0 {
			return domain.ErrInvalidCapacity
		}
	}

	for _, order := range snap.Orders {
		if order.ChildName == "" {
			return domain.ErrChildNameRequired
		}
		if order.Address == "" {
			return domain.ErrAddressRequired
		}
		if order.Priority != 0 && (order.Priority < domain.MinPriority || order.Priority > domain.MaxPriority) {
			return domain.ErrInvalidPriority
		}
		switch order.Status {
		case "", domain.OrderStatusPending, domain.OrderStatusReserved,
			domain.OrderStatusBackorder, domain.OrderStatusCancelled:
		default:
			return domain.ErrInvalidStatus
		}
	}
	return nil
}
