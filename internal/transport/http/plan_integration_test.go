package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/app"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/clock"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/storage/postgres"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/testutil"
)

func TestPlanningFlow_HTTPIntegration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)

	now := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	repo := postgres.NewPlannerRepository(pool)
	svc := app.NewPlannerService(repo, clock.NewFixed(now))

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)

	bear := testutil.InsertToy(t, ctx, pool, "Teddy Bear", "Soft", 30, 1)
	sled := testutil.InsertToy(t, ctx, pool, "Sled", "General", 90, 0)
	testutil.InsertElf(t, ctx, pool, "Buddy", []string{"Soft", "General"}, 120)
	bearOrder := testutil.InsertOrder(t, ctx, pool, bear, "Ada", 5, "1 North Pole", domain.OrderStatusPending)
	sledOrder := testutil.InsertOrder(t, ctx, pool, sled, "Ben", 2, "2 South Lane", domain.OrderStatusPending)

	mux := http.NewServeMux()
	mux.Handle("/plan/reservations", HandlePlanReservations(svc))
	mux.Handle("/plan/assignments", HandlePlanAssignments(svc))
	mux.Handle("/plan/schedule", HandlePlanSchedule(svc))
	mux.Handle("/plan/estimate", HandlePlanEstimate(svc))

	// reserve: the bear is in stock, the sled is not
	req := httptest.NewRequest(http.MethodPost, "/plan/reservations", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var reservations []reservationResponse
	if err := json.NewDecoder(rec.Body).Decode(&reservations); err != nil {
		t.Fatalf("decode reservations: %v", err)
	}
	byOrder := make(map[string]string, len(reservations))
	for _, res := range reservations {
		byOrder[res.OrderID] = res.Status
	}
	if byOrder[bearOrder] != "reserved" || byOrder[sledOrder] != "backorder" {
		t.Fatalf("unexpected reservations: %+v", reservations)
	}

	var stock int
	if err := pool.QueryRow(ctx, `SELECT stock FROM toys WHERE id = $1`, bear).Scan(&stock); err != nil {
		t.Fatalf("query stock: %v", err)
	}
	if stock != 0 {
		t.Fatalf("expected bear stock consumed, got %d", stock)
	}

	// assign: both open orders fit Buddy's 120-minute shift
	req = httptest.NewRequest(http.MethodPost, "/plan/assignments", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var plan planResponse
	if err := json.NewDecoder(rec.Body).Decode(&plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if len(plan.Assignments) != 2 || len(plan.Unassigned) != 0 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	// the priority-5 bear order is queued first
	if plan.Assignments[0].OrderID != bearOrder || plan.Assignments[0].Position != 0 {
		t.Fatalf("expected bear order first, got %+v", plan.Assignments[0])
	}

	// schedule: cumulative minutes per elf
	req = httptest.NewRequest(http.MethodGet, "/plan/schedule", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var schedules []scheduleResponse
	if err := json.NewDecoder(rec.Body).Decode(&schedules); err != nil {
		t.Fatalf("decode schedule: %v", err)
	}
	if len(schedules) != 1 || schedules[0].ElfName != "Buddy" {
		t.Fatalf("unexpected schedules: %+v", schedules)
	}
	slots := schedules[0].Slots
	if len(slots) != 2 || slots[0].FinishMinute != 30 || slots[1].StartMinute != 30 || slots[1].FinishMinute != 120 {
		t.Fatalf("unexpected slots: %+v", slots)
	}

	// estimate: 30 + 90 open minutes
	req = httptest.NewRequest(http.MethodGet, "/plan/estimate", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var estimate estimateResponse
	if err := json.NewDecoder(rec.Body).Decode(&estimate); err != nil {
		t.Fatalf("decode estimate: %v", err)
	}
	if estimate.TotalBuildMinutes != 120 {
		t.Fatalf("expected 120 minutes, got %d", estimate.TotalBuildMinutes)
	}
}
