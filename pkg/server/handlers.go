package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"autolife/adjudicator/pkg/analysis"
	"autolife/adjudicator/pkg/catalog"
	"autolife/adjudicator/pkg/claims"
)

// maxClaimBodyBytes bounds the claim submission body. Narratives are
// free text, not documents.
const maxClaimBodyBytes = 64 * 1024

// ClaimProcessor runs the analysis loop for one claim submission.
type ClaimProcessor interface {
	ProcessClaim(ctx context.Context, rawText string) (*claims.Claim, error)
}

// errorResponse is the JSON error envelope for all API errors.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: errorDetail{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// claimRequest is the POST /v1/claims request body.
type claimRequest struct {
	ClaimText string `json:"claim_text"`
}

// ClaimsHandler accepts claim submissions and returns the fully analyzed
// claim, including its recommendation and processing log.
type ClaimsHandler struct {
	processor ClaimProcessor
	logger    *slog.Logger
}

// NewClaimsHandler creates a claim submission handler.
func NewClaimsHandler(processor ClaimProcessor, logger *slog.Logger) *ClaimsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaimsHandler{processor: processor, logger: logger}
}

func (h *ClaimsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST to submit a claim")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxClaimBodyBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "failed to read request body")
		return
	}
	if len(body) > maxClaimBodyBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "claim text exceeds maximum size")
		return
	}

	var req claimRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body must be JSON with a claim_text field")
		return
	}
	if strings.TrimSpace(req.ClaimText) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "claim_text must not be empty")
		return
	}

	claim, err := h.processor.ProcessClaim(r.Context(), req.ClaimText)
	if err != nil {
		var toolErr *analysis.ToolError
		if errors.As(err, &toolErr) {
			h.logger.ErrorContext(r.Context(), "analysis tool failed",
				"tool", toolErr.Tool,
				"request_id", GetRequestID(r.Context()),
			)
			writeError(w, http.StatusInternalServerError, "tool_failure", "claim analysis aborted due to an internal tool failure")
			return
		}

		h.logger.ErrorContext(r.Context(), "claim processing failed",
			"error", err,
			"request_id", GetRequestID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "processing_failure", "claim processing failed")
		return
	}

	writeJSON(w, http.StatusOK, claim)
}

// policiesResponse is the GET /v1/policies response body.
type policiesResponse struct {
	Policies []*catalog.Policy `json:"policies"`
	Count    int               `json:"count"`
}

// PoliciesHandler lists the currently loaded policy catalog.
type PoliciesHandler struct {
	catalog *catalog.Catalog
}

// NewPoliciesHandler creates a policy listing handler.
func NewPoliciesHandler(cat *catalog.Catalog) *PoliciesHandler {
	return &PoliciesHandler{catalog: cat}
}

func (h *PoliciesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET to list policies")
		return
	}

	policies := h.catalog.List()
	writeJSON(w, http.StatusOK, policiesResponse{Policies: policies, Count: len(policies)})
}

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a liveness handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET for health checks")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
