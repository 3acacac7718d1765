package app

import (
	"context"
	"sort"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/clock"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type PlannerRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	ListOpenOrders(ctx context.Context) ([]domain.Order, error)
	ListToys(ctx context.Context) ([]domain.Toy, error)
	ListElves(ctx context.Context) ([]domain.Elf, error)
	GetToyForUpdate(ctx context.Context, id string) (domain.Toy, error)
	UpdateToyStock(ctx context.Context, id string, stock int) error
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
	ReplaceAssignments(ctx context.Context, assignments []domain.Assignment) error
	ListPlannedBuilds(ctx context.Context) ([]domain.PlannedBuild, error)
	SumOpenBuildMinutes(ctx context.Context) (int, error)
}

// PlannerService runs the workshop-wide operations: stock reservation, elf
// assignment and the derived build schedule.
type PlannerService struct {
	repo  PlannerRepository
	clock clock.Clock
}

func NewPlannerService(repo PlannerRepository, clk clock.Clock) *PlannerService {
	return &PlannerService{
		repo:  repo,
		clock: clk,
	}
}

type ReservationResult struct {
	OrderID string
	ToyID   string
	Status  domain.OrderStatus
}

// ReserveStock walks pending and backordered orders oldest-first and claims
// toy stock for them. Each claimed order becomes reserved; orders that find
// an empty shelf become (or stay) backorder. The whole walk is one
// transaction so stock is never double-claimed.
func (s *PlannerService) ReserveStock(ctx context.Context) ([]ReservationResult, error) {
	var results []ReservationResult

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		orders, err := s.repo.ListOpenOrders(txCtx)
		if err != nil {
			return err
		}

		for _, order := range orders {
			if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusBackorder {
				continue
			}

			toy, err := s.repo.GetToyForUpdate(txCtx, order.ToyID)
			if err != nil {
				return err
			}

			status := domain.OrderStatusBackorder
			if toy.Stock > 0 {
				if err := s.repo.UpdateToyStock(txCtx, toy.ID, toy.Stock-1); err != nil {
					return err
				}
				status = domain.OrderStatusReserved
			}
			if err := s.repo.UpdateOrderStatus(txCtx, order.ID, status); err != nil {
				return err
			}
			results = append(results, ReservationResult{
				OrderID: order.ID,
				ToyID:   order.ToyID,
				Status:  status,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

type PlanResult struct {
	Assignments []domain.Assignment
	Unassigned  []string
}

// AssignElves recomputes the assignment plan. Orders are taken highest
// priority first (shorter builds first within a priority); each goes to the
// eligible elf left with the least spare capacity after the build, so large
// builds still find room later. The previous plan is replaced atomically.
func (s *PlannerService) AssignElves(ctx context.Context) (PlanResult, error) {
	now := s.clock.Now()
	var result PlanResult

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		orders, err := s.repo.ListOpenOrders(txCtx)
		if err != nil {
			return err
		}
		toys, err := s.repo.ListToys(txCtx)
		if err != nil {
			return err
		}
		elves, err := s.repo.ListElves(txCtx)
		if err != nil {
			return err
		}

		toyByID := make(map[string]domain.Toy, len(toys))
		for _, toy := range toys {
			toyByID[toy.ID] = toy
		}

		sorted := make([]domain.Order, len(orders))
		copy(sorted, orders)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Priority != sorted[j].Priority {
				return sorted[i].Priority > sorted[j].Priority
			}
			return toyByID[sorted[i].ToyID].BuildMinutes < toyByID[sorted[j].ToyID].BuildMinutes
		})

		remaining := make(map[string]int, len(elves))
		nextPos := make(map[string]int, len(elves))
		for _, elf := range elves {
			remaining[elf.ID] = elf.CapacityMinutes
		}

		assignments := make([]domain.Assignment, 0, len(sorted))
		var unassigned []string

		for _, order := range sorted {
			toy, ok := toyByID[order.ToyID]
			if !ok {
				return domain.ErrToyNotFound
			}

			bestIdx := -1
			bestLeft := 0
			for i, elf := range elves {
				if !elf.CanBuild(toy.Category, toy.BuildMinutes, remaining[elf.ID]) {
					continue
				}
				left := remaining[elf.ID] - toy.BuildMinutes
				if bestIdx == -1 || left < bestLeft {
					bestIdx = i
					bestLeft = left
				}
			}
			if bestIdx == -1 {
				unassigned = append(unassigned, order.ID)
				continue
			}

			elf := elves[bestIdx]
			remaining[elf.ID] -= toy.BuildMinutes
			assignments = append(assignments, domain.Assignment{
				ID:           newID(),
				OrderID:      order.ID,
				ElfID:        elf.ID,
				BuildMinutes: toy.BuildMinutes,
				Position:     nextPos[elf.ID],
				CreatedAt:    now,
			})
			nextPos[elf.ID]++
		}

		if err := s.repo.ReplaceAssignments(txCtx, assignments); err != nil {
			return err
		}
		result = PlanResult{Assignments: assignments, Unassigned: unassigned}
		return nil
	})
	if err != nil {
		return PlanResult{}, err
	}
	return result, nil
}

func (s *PlannerService) ListPlannedBuilds(ctx context.Context) ([]domain.PlannedBuild, error) {
	return s.repo.ListPlannedBuilds(ctx)
}

// EstimateBuildMinutes sums the build time of every open order.
func (s *PlannerService) EstimateBuildMinutes(ctx context.Context) (int, error) {
	return s.repo.SumOpenBuildMinutes(ctx)
}

// BuildSchedule turns the stored plan into per-elf timelines: builds run
// back to back within an elf, elves run in parallel.
func (s *PlannerService) BuildSchedule(ctx context.Context) ([]domain.ElfSchedule, error) {
	builds, err := s.repo.ListPlannedBuilds(ctx)
	if err != nil {
		return nil, err
	}

	var schedules []domain.ElfSchedule
	idx := make(map[string]int)
	cursor := make(map[string]int)

	for _, build := range builds {
		i, ok := idx[build.Assignment.ElfID]
		if !ok {
			i = len(schedules)
			idx[build.Assignment.ElfID] = i
			schedules = append(schedules, domain.ElfSchedule{
				ElfID:   build.Assignment.ElfID,
				ElfName: build.ElfName,
			})
		}

		start := cursor[build.Assignment.ElfID]
		finish := start + build.Assignment.BuildMinutes
		cursor[build.Assignment.ElfID] = finish

		schedules[i].Slots = append(schedules[i].Slots, domain.ScheduleSlot{
			OrderID:      build.Assignment.OrderID,
			ToyName:      build.ToyName,
			ChildName:    build.ChildName,
			StartMinute:  start,
			FinishMinute: finish,
		})
	}
	return schedules, nil
}
