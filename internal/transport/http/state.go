package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/app"
	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

// StateService is the minimal interface the snapshot endpoints need.
type StateService interface {
	Export(ctx context.Context) (app.Snapshot, error)
	Import(ctx context.Context, snap app.Snapshot) error
}

// HandleState exports (GET) or restores (POST) the whole workshop.
func HandleState(svc StateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			snap, err := svc.Export(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toSnapshotDocument(snap))
		case http.MethodPost:
			var doc snapshotDocument
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&doc); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if err := svc.Import(r.Context(), toSnapshot(doc)); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// snapshotDocument is the wire shape of a workshop snapshot: toys and elves
// by value, orders referencing toys by name.
type snapshotDocument struct {
	Toys   []snapshotToy   `json:"toys"`
	Elves  []snapshotElf   `json:"elves"`
	Orders []snapshotOrder `json:"orders"`
}

type snapshotToy struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	BuildMinutes int    `json:"build_minutes"`
	Stock        int    `json:"stock"`
}

type snapshotElf struct {
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	CapacityMinutes int      `json:"capacity_minutes"`
}

type snapshotOrder struct {
	Child    string `json:"child"`
	Toy      string `json:"toy"`
	Priority int    `json:"priority"`
	Address  string `json:"address"`
	Message  string `json:"message"`
	Status   string `json:"status,omitempty"`
}

func toSnapshotDocument(snap app.Snapshot) snapshotDocument {
	doc := snapshotDocument{
		Toys:   make([]snapshotToy, 0, len(snap.Toys)),
		Elves:  make([]snapshotElf, 0, len(snap.Elves)),
		Orders: make([]snapshotOrder, 0, len(snap.Orders)),
	}
	for _, toy := range snap.Toys {
		doc.Toys = append(doc.Toys, snapshotToy{
			Name:         toy.Name,
			Category:     toy.Category,
			BuildMinutes: toy.BuildMinutes,
			Stock:        toy.Stock,
		})
	}
	for _, elf := range snap.Elves {
		doc.Elves = append(doc.Elves, snapshotElf{
			Name:            elf.Name,
			Skills:          elf.Skills,
			CapacityMinutes: elf.CapacityMinutes,
		})
	}
	for _, order := range snap.Orders {
		doc.Orders = append(doc.Orders, snapshotOrder{
			Child:    order.ChildName,
			Toy:      order.ToyName,
			Priority: order.Priority,
			Address:  order.Address,
			Message:  order.Message,
			Status:   string(order.Status),
		})
	}
	return doc
}

func toSnapshot(doc snapshotDocument) app.Snapshot {
	snap := app.Snapshot{
		Toys:   make([]app.SnapshotToy, 0, len(doc.Toys)),
		Elves:  make([]app.SnapshotElf, 0, len(doc.Elves)),
		Orders: make([]app.SnapshotOrder, 0, len(doc.Orders)),
	}
	for _, toy := range doc.Toys {
		snap.Toys = append(snap.Toys, app.SnapshotToy{
			Name:         toy.Name,
			Category:     toy.Category,
			BuildMinutes: toy.BuildMinutes,
			Stock:        toy.Stock,
		})
	}
	for _, elf := range doc.Elves {
		snap.Elves = append(snap.Elves, app.SnapshotElf{
			Name:            elf.Name,
			Skills:          elf.Skills,
			CapacityMinutes: elf.CapacityMinutes,
		})
	}
	for _, order := range doc.Orders {
		snap.Orders = append(snap.Orders, app.SnapshotOrder{
			ChildName: order.Child,
			ToyName:   order.Toy,
			Priority:  order.Priority,
			Address:   order.Address,
			Message:   order.Message,
			Status:    domain.OrderStatus(order.Status),
		})
	}
	return snap
}
