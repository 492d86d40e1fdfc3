package handler

import (
	"errors"
	"net/http"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/service"
)

// CheckHandler handles HTTP requests for password policy checks.
type CheckHandler struct {
	service *service.CheckService
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(svc *service.CheckService) *CheckHandler {
	return &CheckHandler{service: svc}
}

// HandleCheck handles POST /api/v1/check requests.
func (h *CheckHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req model.CheckRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Check(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPolicySourceConflict):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrPolicyNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrPolicyStoreUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
