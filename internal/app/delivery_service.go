package app

import (
	"context"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/routing"
)

type OpenOrderLister interface {
	ListOpenOrders(ctx context.Context) ([]domain.Order, error)
}

// DeliveryService plans the sleigh route over the addresses of open orders.
type DeliveryService struct {
	repo OpenOrderLister
}

func NewDeliveryService(repo OpenOrderLister) *DeliveryService {
	return &DeliveryService{repo: repo}
}

func (s *DeliveryService) PlanRoute(ctx context.Context) (routing.Route, error) {
	orders, err := s.repo.ListOpenOrders(ctx)
	if err != nil {
		return routing.Route{}, err
	}

	seen := make(map[string]struct{}, len(orders))
	addresses := make([]string, 0, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.Address]; ok {
			continue
		}
		seen[order.Address] = struct{}{}
		addresses = append(addresses, order.Address)
	}
	if len(addresses) == 0 {
		return routing.Route{}, domain.ErrNoDeliverableOrders
	}
	return routing.NearestNeighbour(addresses), nil
}
