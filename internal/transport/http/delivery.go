package http

import (
	"context"
	"net/http"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/routing"
)

// RoutePlanner is the minimal interface the delivery endpoint needs.
type RoutePlanner interface {
	PlanRoute(ctx context.Context) (routing.Route, error)
}

// HandleDeliveryRoute plans the sleigh route over open order addresses.
func HandleDeliveryRoute(svc RoutePlanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		route, err := svc.PlanRoute(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := routeResponse{
			Stops:         make([]stopResponse, 0, len(route.Stops)),
			TotalDistance: route.TotalDistance,
		}
		for _, stop := range route.Stops {
			resp.Stops = append(resp.Stops, stopResponse{
				Address:     stop.Address,
				X:           stop.Point.X,
				Y:           stop.Point.Y,
				LegDistance: stop.LegDistance,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type stopResponse struct {
	Address     string  `json:"address"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	LegDistance float64 `json:"leg_distance"`
}

type routeResponse struct {
	Stops         []stopResponse `json:"stops"`
	TotalDistance float64        `json:"total_distance"`
}
