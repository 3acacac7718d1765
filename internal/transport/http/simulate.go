package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/sim"
)

// HandleSimulationRun replays the stored build plan and streams progress as
// NDJSON over a chunked response, one event per line.
func HandleSimulationRun(svc PlannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		req := runSimulationRequest{MsPerMinute: -1}
		if r.Body != nil {
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil && err != io.EOF {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if req.MsPerMinute < -1 {
				writeError(w, http.StatusBadRequest, codeValidationFailed, "ms_per_minute must not be negative")
				return
			}
		}

		schedules, err := svc.BuildSchedule(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if len(schedules) == 0 {
			writeError(w, http.StatusConflict, codeEmptyPlan, "no assignments planned")
			return
		}

		perMinute := sim.DefaultPerMinute
		if req.MsPerMinute >= 0 {
			perMinute = time.Duration(req.MsPerMinute) * time.Millisecond
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		w.WriteHeader(http.StatusOK)
		flusher, _ := w.(http.Flusher)
		enc := json.NewEncoder(w)

		writeStatusLine(enc, flusher, "simulation started")

		runner := sim.NewRunner(perMinute)
		for event := range runner.Run(r.Context(), schedules) {
			_ = enc.Encode(event)
			if flusher != nil {
				flusher.Flush()
			}
		}

		if r.Context().Err() != nil {
			return
		}
		writeStatusLine(enc, flusher, "simulation finished")
	}
}

func writeStatusLine(enc *json.Encoder, flusher http.Flusher, msg string) {
	_ = enc.Encode(statusLine{Type: "status", Message: msg})
	if flusher != nil {
		flusher.Flush()
	}
}

type runSimulationRequest struct {
	// MsPerMinute is wall milliseconds per simulated minute; 0 runs the
	// whole plan instantly, -1 (or an empty body) means the default pace.
	MsPerMinute int `json:"ms_per_minute"`
}

type statusLine struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
