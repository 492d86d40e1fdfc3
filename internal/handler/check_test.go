package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/service"
)

func newCheckHandler() *CheckHandler {
	return NewCheckHandler(service.NewCheckService(nil, model.Policy{
		MinLength:     8,
		RequireDigit:  true,
		RequireCase:   true,
		RequireSymbol: true,
	}))
}

func postCheck(t *testing.T, h *CheckHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleCheck(rec, req)
	return rec
}

func TestHandleCheck_Valid(t *testing.T) {
	rec := postCheck(t, newCheckHandler(), `{"password":"Abc123!@#"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.CheckResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Valid {
		t.Error("expected valid = true")
	}
	if len(resp.FailedRules) != 0 {
		t.Errorf("expected no failed rules, got %v", resp.FailedRules)
	}
}

func TestHandleCheck_Invalid(t *testing.T) {
	rec := postCheck(t, newCheckHandler(), `{"password":"abc123!@#"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.CheckResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Valid {
		t.Error("expected valid = false for password without uppercase")
	}
	if len(resp.FailedRules) != 1 || resp.FailedRules[0] != "case" {
		t.Errorf("FailedRules = %v, want [case]", resp.FailedRules)
	}
}

func TestHandleCheck_MalformedBody(t *testing.T) {
	rec := postCheck(t, newCheckHandler(), `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCheck_PolicySourceConflict(t *testing.T) {
	rec := postCheck(t, newCheckHandler(),
		`{"password":"Abc123!@#","policy_name":"strict","policy":{"min_length":8}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCheck_StoredPolicyWithoutStore(t *testing.T) {
	rec := postCheck(t, newCheckHandler(), `{"password":"Abc123!@#","policy_name":"strict"}`)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
