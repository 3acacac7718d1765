package app

import (
	"context"
	"testing"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type fakeOpenOrderLister struct {
	orders []domain.Order
}

func (f *fakeOpenOrderLister) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	return f.orders, nil
}

func TestDeliveryService_PlanRoute(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates addresses and visits each once", func(t *testing.T) {
		svc := NewDeliveryService(&fakeOpenOrderLister{orders: []domain.Order{
			{ID: "o1", Address: "10 Snow Rd"},
			{ID: "o2", Address: "5 North Star Ave"},
			{ID: "o3", Address: "10 Snow Rd"},
			{ID: "o4", Address: "1 Holly Ln"},
		}})

		route, err := svc.PlanRoute(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(route.Stops) != 3 {
			t.Fatalf("expected 3 unique stops, got %d", len(route.Stops))
		}
		if route.Stops[0].Address != "10 Snow Rd" {
			t.Fatalf("expected route to start at the oldest order's address, got %s", route.Stops[0].Address)
		}
		seen := make(map[string]bool)
		for _, stop := range route.Stops {
			if seen[stop.Address] {
				t.Fatalf("address %s visited twice", stop.Address)
			}
			seen[stop.Address] = true
		}
	})

	t.Run("no open orders", func(t *testing.T) {
		svc := NewDeliveryService(&fakeOpenOrderLister{})
		if _, err := svc.PlanRoute(context.Background()); err != domain.ErrNoDeliverableOrders {
			t.Fatalf("expected ErrNoDeliverableOrders, got %v", err)
		}
	})
}
