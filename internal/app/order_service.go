package app

import (
	"context"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/clock"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	TopPriorityOrders(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type OrderService struct {
	repo  OrderRepository
	clock clock.Clock
}

func NewOrderService(repo OrderRepository, clk clock.Clock) *OrderService {
	return &OrderService{
		repo:  repo,
		clock: clk,
	}
}

const (
	defaultPriority = 3
	defaultTopLimit = 3
)

type PlaceOrderInput struct {
	ToyID     string
	ChildName string
	Priority  int
	Address   string
	Message   string
}

func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (domain.Order, error) {
	if in.ToyID == "" {
		return domain.Order{}, domain.ErrInvalidID
	}
	if in.ChildName == "" {
		return domain.Order{}, domain.ErrChildNameRequired
	}
	if in.Address == "" {
		return domain.Order{}, domain.ErrAddressRequired
	}
	priority := in.Priority
	if priority == 0 {
		priority = defaultPriority
	}
	if priority < domain.MinPriority || priority > domain.MaxPriority {
		return domain.Order{}, domain.ErrInvalidPriority
	}

	order := domain.Order{
		ID:        newID(),
		ToyID:     in.ToyID,
		ChildName: in.ChildName,
		Priority:  priority,
		Address:   in.Address,
		Message:   in.Message,
		Status:    domain.OrderStatusPending,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, domain.ErrInvalidID
	}
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

// TopPriorityOrders returns up to limit open orders, highest priority first,
// ties broken by placement time.
func (s *OrderService) TopPriorityOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.repo.TopPriorityOrders(ctx, limit)
}

// CancelOrder marks the order cancelled. Cancelled orders keep their row so
// snapshots and plans remain explainable.
func (s *OrderService) CancelOrder(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, domain.ErrInvalidID
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status == domain.OrderStatusCancelled {
		return domain.Order{}, domain.ErrOrderAlreadyCancelled
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, domain.OrderStatusCancelled); err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatusCancelled
	return order, nil
}
