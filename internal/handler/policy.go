package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/service"
)

// PolicyHandler handles HTTP requests for named policy management.
type PolicyHandler struct {
	service *service.PolicyService
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(svc *service.PolicyService) *PolicyHandler {
	return &PolicyHandler{service: svc}
}

// HandleSavePolicy handles PUT /api/v1/policies/{name} requests.
func (h *PolicyHandler) HandleSavePolicy(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req model.PolicyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Save(r.Context(), name, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPolicyNameRequired),
			errors.Is(err, service.ErrPolicyNameTooLong),
			errors.Is(err, service.ErrMinLengthZero),
			errors.Is(err, service.ErrMinLengthOutOfRange):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetPolicy handles GET /api/v1/policies/{name} requests.
func (h *PolicyHandler) HandleGetPolicy(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, service.ErrPolicyNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleListPolicies handles GET /api/v1/policies requests.
func (h *PolicyHandler) HandleListPolicies(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeletePolicy handles DELETE /api/v1/policies/{name} requests.
func (h *PolicyHandler) HandleDeletePolicy(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, service.ErrPolicyNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
