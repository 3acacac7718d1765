package http

import (
	"context"
	"net/http"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/app"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

// PlannerService is the minimal interface the planning endpoints need.
type PlannerService interface {
	ReserveStock(ctx context.Context) ([]app.ReservationResult, error)
	AssignElves(ctx context.Context) (app.PlanResult, error)
	ListPlannedBuilds(ctx context.Context) ([]domain.PlannedBuild, error)
	EstimateBuildMinutes(ctx context.Context) (int, error)
	BuildSchedule(ctx context.Context) ([]domain.ElfSchedule, error)
}

// HandlePlanReservations reserves toy stock for waiting orders.
func HandlePlanReservations(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		results, err := svc.ReserveStock(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resp := make([]reservationResponse, 0, len(results))
		for _, res := range results {
			resp = append(resp, reservationResponse{
				OrderID: res.OrderID,
				ToyID:   res.ToyID,
				Status:  string(res.Status),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandlePlanAssignments recomputes (POST) or lists (GET) the build plan.
func HandlePlanAssignments(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			builds, err := svc.ListPlannedBuilds(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]assignmentResponse, 0, len(builds))
			for _, build := range builds {
				resp = append(resp, toAssignmentResponse(build.Assignment, build.ElfName, build.ToyName))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			result, err := svc.AssignElves(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := planResponse{
				Assignments: make([]assignmentResponse, 0, len(result.Assignments)),
				Unassigned:  result.Unassigned,
			}
			if resp.Unassigned == nil {
				resp.Unassigned = []string{}
			}
			for _, a := range result.Assignments {
				resp.Assignments = append(resp.Assignments, toAssignmentResponse(a, "", ""))
			}
			writeJSON(w, http.StatusCreated, resp)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandlePlanSchedule returns the per-elf build timeline for the stored plan.
func HandlePlanSchedule(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		schedules, err := svc.BuildSchedule(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resp := make([]scheduleResponse, 0, len(schedules))
		for _, schedule := range schedules {
			item := scheduleResponse{
				ElfID:   schedule.ElfID,
				ElfName: schedule.ElfName,
				Slots:   make([]scheduleSlotResponse, 0, len(schedule.Slots)),
			}
			for _, slot := range schedule.Slots {
				item.Slots = append(item.Slots, scheduleSlotResponse{
					OrderID:      slot.OrderID,
					Toy:          slot.ToyName,
					Child:        slot.ChildName,
					StartMinute:  slot.StartMinute,
					FinishMinute: slot.FinishMinute,
				})
			}
			resp = append(resp, item)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandlePlanEstimate sums the build time of every open order.
func HandlePlanEstimate(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		total, err := svc.EstimateBuildMinutes(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, estimateResponse{TotalBuildMinutes: total})
	}
}

type reservationResponse struct {
	OrderID string `json:"order_id"`
	ToyID   string `json:"toy_id"`
	Status  string `json:"status"`
}

type assignmentResponse struct {
	ID           string `json:"id"`
	OrderID      string `json:"order_id"`
	ElfID        string `json:"elf_id"`
	ElfName      string `json:"elf,omitempty"`
	ToyName      string `json:"toy,omitempty"`
	BuildMinutes int    `json:"build_minutes"`
	Position     int    `json:"position"`
}

func toAssignmentResponse(a domain.Assignment, elfName, toyName string) assignmentResponse {
	return assignmentResponse{
		ID:           a.ID,
		OrderID:      a.OrderID,
		ElfID:        a.ElfID,
		ElfName:      elfName,
		ToyName:      toyName,
		BuildMinutes: a.BuildMinutes,
		Position:     a.Position,
	}
}

type planResponse struct {
	Assignments []assignmentResponse `json:"assignments"`
	Unassigned  []string             `json:"unassigned"`
}

type scheduleSlotResponse struct {
	OrderID      string `json:"order_id"`
	Toy          string `json:"toy"`
	Child        string `json:"child"`
	StartMinute  int    `json:"start_minute"`
	FinishMinute int    `json:"finish_minute"`
}

type scheduleResponse struct {
	ElfID   string                 `json:"elf_id"`
	ElfName string                 `json:"elf"`
	Slots   []scheduleSlotResponse `json:"slots"`
}

type estimateResponse struct {
	TotalBuildMinutes int `json:"total_build_minutes"`
}
