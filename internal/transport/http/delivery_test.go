package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/routing"
)

type fakeRoutePlanner struct {
	err   error
	route routing.Route
}

func (f *fakeRoutePlanner) PlanRoute(ctx context.Context) (routing.Route, error) {
	return f.route, f.err
}

func TestHandleDeliveryRoute(t *testing.T) {
	t.Parallel()

	t.Run("returns stops in visiting order", func(t *testing.T) {
		t.Parallel()

		handler := HandleDeliveryRoute(&fakeRoutePlanner{route: routing.Route{
			Stops: []routing.Stop{
				{Address: "1 North Pole", Point: routing.Point{X: 10, Y: 20}, LegDistance: 0},
				{Address: "2 South Lane", Point: routing.Point{X: 13, Y: 24}, LegDistance: 5},
			},
			TotalDistance: 5,
		}})
		req := httptest.NewRequest(http.MethodGet, "/delivery/route", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}

		var resp routeResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(resp.Stops) != 2 || resp.Stops[0].Address != "1 North Pole" {
			t.Fatalf("unexpected stops: %+v", resp.Stops)
		}
		if resp.TotalDistance != 5 {
			t.Fatalf("expected total distance 5, got %v", resp.TotalDistance)
		}
	})

	t.Run("no deliverable orders conflicts", func(t *testing.T) {
		t.Parallel()

		handler := HandleDeliveryRoute(&fakeRoutePlanner{err: domain.ErrNoDeliverableOrders})
		req := httptest.NewRequest(http.MethodGet, "/delivery/route", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), codeNoDeliverableOrders) {
			t.Fatalf("expected code %q, got %s", codeNoDeliverableOrders, rec.Body.String())
		}
	})

	t.Run("only GET is allowed", func(t *testing.T) {
		t.Parallel()

		handler := HandleDeliveryRoute(&fakeRoutePlanner{})
		req := httptest.NewRequest(http.MethodPost, "/delivery/route", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", rec.Code)
		}
	})
}
