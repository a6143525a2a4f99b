package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"startup-reality-engine/domain"
	"startup-reality-engine/service"
)

type AnalyzeHandler struct {
	service *service.EvaluationService
	logger  *zap.Logger
}

func NewAnalyzeHandler(service *service.EvaluationService, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{service: service, logger: logger}
}

// Analyze evaluates a startup idea. Pipeline failures are invisible here:
// the service degrades to its heuristic scorer, so a well-formed request
// always gets a 200 with a full result.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.StartupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("error decoding request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Evaluate(r.Context(), input)
	if err != nil {
		h.logger.Warn("rejected evaluation request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Encode into a buffer first so an encoding failure never writes a
	// broken 200.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		h.logger.Error("error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("error writing response", zap.Error(err))
	}
}
