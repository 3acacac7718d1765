package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/app"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

// ToyService is the minimal interface the catalogue endpoints need.
type ToyService interface {
	CreateToy(ctx context.Context, in app.CreateToyInput) (domain.Toy, error)
	GetToy(ctx context.Context, id string) (domain.Toy, error)
	ListToys(ctx context.Context) ([]domain.Toy, error)
	UpdateToy(ctx context.Context, in app.UpdateToyInput) (domain.Toy, error)
	DeleteToy(ctx context.Context, id string) error
}

// HandleToys serves the toy collection: list and create.
func HandleToys(svc ToyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			toys, err := svc.ListToys(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]toyResponse, 0, len(toys))
			for _, toy := range toys {
				resp = append(resp, toToyResponse(toy))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req createToyRequest
			if !decodeAndValidate(w, r, &req) {
				return
			}
			toy, err := svc.CreateToy(r.Context(), app.CreateToyInput{
				Name:         req.Name,
				Category:     req.Category,
				BuildMinutes: req.BuildMinutes,
				Stock:        req.Stock,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toToyResponse(toy))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleToyByID serves a single toy: fetch, update, delete.
func HandleToyByID(svc ToyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseResourceIDPath(r.URL.Path, "toys")
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodGet:
			toy, err := svc.GetToy(r.Context(), id)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toToyResponse(toy))
		case http.MethodPut:
			var req updateToyRequest
			if !decodeAndValidate(w, r, &req) {
				return
			}
			toy, err := svc.UpdateToy(r.Context(), app.UpdateToyInput{
				ID:           id,
				Category:     req.Category,
				BuildMinutes: req.BuildMinutes,
				Stock:        req.Stock,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toToyResponse(toy))
		case http.MethodDelete:
			if err := svc.DeleteToy(r.Context(), id); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// parseResourceIDPath extracts the id from /<resource>/<id>.
func parseResourceIDPath(path, resource string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != resource || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

type createToyRequest struct {
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category"`
	BuildMinutes int    `json:"build_minutes" validate:"required,gt=0"`
	Stock        int    `json:"stock" validate:"gte=0"`
}

type updateToyRequest struct {
	Category     string `json:"category"`
	BuildMinutes int    `json:"build_minutes" validate:"required,gt=0"`
	Stock        int    `json:"stock" validate:"gte=0"`
}

type toyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	BuildMinutes int       `json:"build_minutes"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"created_at"`
}

func toToyResponse(toy domain.Toy) toyResponse {
	return toyResponse{
		ID:           toy.ID,
		Name:         toy.Name,
		Category:     toy.Category,
		BuildMinutes: toy.BuildMinutes,
		Stock:        toy.Stock,
		CreatedAt:    toy.CreatedAt,
	}
}
