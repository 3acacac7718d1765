package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/app"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

// OrderService is the minimal interface the order endpoints need.
type OrderService interface {
	PlaceOrder(ctx context.Context, in app.PlaceOrderInput) (domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	TopPriorityOrders(ctx context.Context, limit int) ([]domain.Order, error)
	CancelOrder(ctx context.Context, id string) (domain.Order, error)
}

// HandleOrders serves the order collection: list and place.
func HandleOrders(svc OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			orders, err := svc.ListOrders(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toOrderResponses(orders))
		case http.MethodPost:
			var req placeOrderRequest
			if !decodeAndValidate(w, r, &req) {
				return
			}
			order, err := svc.PlaceOrder(r.Context(), app.PlaceOrderInput{
				ToyID:     req.ToyID,
				ChildName: req.ChildName,
				Priority:  req.Priority,
				Address:   req.Address,
				Message:   req.Message,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toOrderResponse(order))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleOrderByID serves /orders/top and a single order: fetch and cancel.
func HandleOrderByID(svc OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseResourceIDPath(r.URL.Path, "orders")
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		if id == "top" {
			handleTopOrders(svc, w, r)
			return
		}

		switch r.Method {
		case http.MethodGet:
			order, err := svc.GetOrder(r.Context(), id)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toOrderResponse(order))
		case http.MethodDelete:
			order, err := svc.CancelOrder(r.Context(), id)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toOrderResponse(order))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

func handleTopOrders(svc OrderService, w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	orders, err := svc.TopPriorityOrders(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

type placeOrderRequest struct {
	ToyID     string `json:"toy_id" validate:"required"`
	ChildName string `json:"child" validate:"required"`
	Priority  int    `json:"priority"`
	Address   string `json:"address" validate:"required"`
	Message   string `json:"message"`
}

type orderResponse struct {
	ID        string    `json:"id"`
	ToyID     string    `json:"toy_id"`
	ChildName string    `json:"child"`
	Priority  int       `json:"priority"`
	Address   string    `json:"address"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toOrderResponse(order domain.Order) orderResponse {
	return orderResponse{
		ID:        order.ID,
		ToyID:     order.ToyID,
		ChildName: order.ChildName,
		Priority:  order.Priority,
		Address:   order.Address,
		Message:   order.Message,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	return resp
}
