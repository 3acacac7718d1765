package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/app"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type fakeStateService struct {
	err      error
	snapshot app.Snapshot
	imported *app.Snapshot
}

func (f *fakeStateService) Export(ctx context.Context) (app.Snapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeStateService) Import(ctx context.Context, snap app.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.imported = &snap
	return nil
}

func TestHandleState_Export(t *testing.T) {
	t.Parallel()

	handler := HandleState(&fakeStateService{snapshot: app.Snapshot{
		Toys: []app.SnapshotToy{
			{Name: "Teddy Bear", Category: "Soft", BuildMinutes: 30, Stock: 12},
		},
		Elves: []app.SnapshotElf{
			{Name: "Buddy", Skills: []string{"Soft"}, CapacityMinutes: 120},
		},
		Orders: []app.SnapshotOrder{
			{ChildName: "Ada", ToyName: "Teddy Bear", Priority: 5, Address: "1 North Pole", Status: domain.OrderStatusReserved},
		},
	}})
	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var doc snapshotDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(doc.Orders) != 1 || doc.Orders[0].Toy != "Teddy Bear" {
		t.Fatalf("expected orders to reference toys by name, got %+v", doc.Orders)
	}
	if doc.Orders[0].Status != "reserved" {
		t.Fatalf("expected status preserved, got %q", doc.Orders[0].Status)
	}
}

func TestHandleState_Import(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &fakeStateService{}
		handler := HandleState(svc)
		body := `{
			"toys":[{"name":"Sled","build_minutes":90,"stock":2}],
			"elves":[{"name":"Jingle","skills":["General"],"capacity_minutes":60}],
			"orders":[{"child":"Ben","toy":"Sled","priority":2,"address":"2 South Lane","message":"hi"}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/state", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d (%s)", rec.Code, rec.Body.String())
		}
		if svc.imported == nil {
			t.Fatal("expected snapshot to reach the service")
		}
		if got := svc.imported.Orders[0].ToyName; got != "Sled" {
			t.Fatalf("expected order toy name Sled, got %q", got)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		handler := HandleState(&fakeStateService{})
		req := httptest.NewRequest(http.MethodPost, "/state", strings.NewReader(`{"toys":`))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown toy aborts the import", func(t *testing.T) {
		t.Parallel()

		handler := HandleState(&fakeStateService{err: domain.ErrToyNotFound})
		body := `{"orders":[{"child":"Ben","toy":"Ghost","address":"2 South Lane"}]}`
		req := httptest.NewRequest(http.MethodPost, "/state", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d (%s)", rec.Code, rec.Body.String())
		}
	})
}
