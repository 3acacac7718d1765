package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/app"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

// ElfService is the minimal interface the roster endpoints need.
type ElfService interface {
	CreateElf(ctx context.Context, in app.CreateElfInput) (domain.Elf, error)
	GetElf(ctx context.Context, id string) (domain.Elf, error)
	ListElves(ctx context.Context) ([]domain.Elf, error)
	DeleteElf(ctx context.Context, id string) error
}

// HandleElves serves the elf collection: list and create.
func HandleElves(svc ElfService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			elves, err := svc.ListElves(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]elfResponse, 0, len(elves))
			for _, elf := range elves {
				resp = append(resp, toElfResponse(elf))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req createElfRequest
			if !decodeAndValidate(w, r, &req) {
				return
			}
			elf, err := svc.CreateElf(r.Context(), app.CreateElfInput{
				Name:            req.Name,
				Skills:          req.Skills,
				CapacityMinutes: req.CapacityMinutes,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toElfResponse(elf))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleElfByID serves a single elf: fetch and delete.
func HandleElfByID(svc ElfService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseResourceIDPath(r.URL.Path, "elves")
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodGet:
			elf, err := svc.GetElf(r.Context(), id)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toElfResponse(elf))
		case http.MethodDelete:
			if err := svc.DeleteElf(r.Context(), id); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

type createElfRequest struct {
	Name            string   `json:"name" validate:"required"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	CapacityMinutes int      `json:"capacity_minutes" validate:"gte=0"`
}

type elfResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Skills          []string  `json:"skills"`
	CapacityMinutes int       `json:"capacity_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

func toElfResponse(elf domain.Elf) elfResponse {
	return elfResponse{
		ID:              elf.ID,
		Name:            elf.Name,
		Skills:          elf.Skills,
		CapacityMinutes: elf.CapacityMinutes,
		CreatedAt:       elf.CreatedAt,
	}
}
