package http

import (
	"encoding/json"
	"net/http"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

const (
	codeMethodNotAllowed      = "method_not_allowed"
	codeNotFound              = "not_found"
	codeInvalidRequestBody    = "invalid_request_body"
	codeValidationFailed      = "validation_failed"
	codeInvalidID             = "invalid_id"
	codeToyNotFound           = "toy_not_found"
	codeToyNameRequired       = "toy_name_required"
	codeToyAlreadyExists      = "toy_already_exists"
	codeToyInUse              = "toy_in_use"
	codeInvalidBuildTime      = "invalid_build_time"
	codeInvalidStock          = "invalid_stock"
	codeElfNotFound           = "elf_not_found"
	codeElfNameRequired       = "elf_name_required"
	codeElfAlreadyExists      = "elf_already_exists"
	codeSkillsRequired        = "skills_required"
	codeInvalidCapacity       = "invalid_capacity"
	codeOrderNotFound         = "order_not_found"
	codeOrderAlreadyCancelled = "order_already_cancelled"
	codeChildNameRequired     = "child_name_required"
	codeAddressRequired       = "address_required"
	codeInvalidPriority       = "invalid_priority"
	codeInvalidStatus         = "invalid_status"
	codeNoDeliverableOrders   = "no_deliverable_orders"
	codeEmptyPlan             = "empty_plan"
	codeForbidden             = "forbidden"
	codeInternalError         = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeDomainError maps the service-layer sentinel errors onto the HTTP
// error envelope. Anything unmapped is an internal error.
func writeDomainError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrInvalidID:
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case domain.ErrToyNotFound:
		writeError(w, http.StatusNotFound, codeToyNotFound, err.Error())
	case domain.ErrToyNameRequired:
		writeError(w, http.StatusBadRequest, codeToyNameRequired, err.Error())
	case domain.ErrToyAlreadyExists:
		writeError(w, http.StatusConflict, codeToyAlreadyExists, err.Error())
	case domain.ErrToyInUse:
		writeError(w, http.StatusConflict, codeToyInUse, err.Error())
	case domain.ErrInvalidBuildTime:
		writeError(w, http.StatusBadRequest, codeInvalidBuildTime, err.Error())
	case domain.ErrInvalidStock:
		writeError(w, http.StatusBadRequest, codeInvalidStock, err.Error())
	case domain.ErrElfNotFound:
		writeError(w, http.StatusNotFound, codeElfNotFound, err.Error())
	case domain.ErrElfNameRequired:
		writeError(w, http.StatusBadRequest, codeElfNameRequired, err.Error())
	case domain.ErrElfAlreadyExists:
		writeError(w, http.StatusConflict, codeElfAlreadyExists, err.Error())
	case domain.ErrSkillsRequired:
		writeError(w, http.StatusBadRequest, codeSkillsRequired, err.Error())
	case domain.ErrInvalidCapacity:
		writeError(w, http.StatusBadRequest, codeInvalidCapacity, err.Error())
	case domain.ErrOrderNotFound:
		writeError(w, http.StatusNotFound, codeOrderNotFound, err.Error())
	case domain.ErrOrderAlreadyCancelled:
		writeError(w, http.StatusConflict, codeOrderAlreadyCancelled, err.Error())
	case domain.ErrChildNameRequired:
		writeError(w, http.StatusBadRequest, codeChildNameRequired, err.Error())
	case domain.ErrAddressRequired:
		writeError(w, http.StatusBadRequest, codeAddressRequired, err.Error())
	case domain.ErrInvalidPriority:
		writeError(w, http.StatusBadRequest, codeInvalidPriority, err.Error())
	case domain.ErrInvalidStatus:
		writeError(w, http.StatusBadRequest, codeInvalidStatus, err.Error())
	case domain.ErrNoDeliverableOrders:
		writeError(w, http.StatusConflict, codeNoDeliverableOrders, err.Error())
	case domain.ErrEmptyPlan:
		writeError(w, http.StatusConflict, codeEmptyPlan, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
