package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ExprLex/internal/lexer"
)

// MaxBatchSize is the largest number of inputs accepted by one batch request.
const MaxBatchSize = 1000

// Handler holds HTTP handlers for the exprlex API.
type Handler struct {
	analyzer      lexer.Analyzer
	logger        *zap.Logger
	maxInputBytes int
	version       string
}

// NewHandler creates a new Handler backed by the given Analyzer.
func NewHandler(analyzer lexer.Analyzer, maxInputBytes int, version string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		analyzer:      analyzer,
		logger:        logger,
		maxInputBytes: maxInputBytes,
		version:       version,
	}
}

// RegisterRoutes registers all API routes on the given router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/analyze", h.handleAnalyze).Methods(http.MethodPost)
	r.HandleFunc("/analyze/batch", h.handleAnalyzeBatch).Methods(http.MethodPost)

	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.handleReady).Methods(http.MethodGet)
	r.HandleFunc("/", h.handleRoot).Methods(http.MethodGet)
}

// Router returns the API routes wrapped with panic recovery.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(h.logger)),
	)(r)
}

// analysisResult is the outcome of analyzing one input.
type analysisResult struct {
	Input      string        `json:"input,omitempty"`
	Tokens     []lexer.Token `json:"tokens,omitempty"`
	Expression string        `json:"expression,omitempty"`
	Error      *errorBody    `json:"error,omitempty"`
}

func (h *Handler) analyze(input string) analysisResult {
	start := time.Now()
	tokens, err := h.analyzer.Analyze(input)
	if err != nil {
		kind := lexer.KindOf(err)
		h.logger.Debug("analysis failed",
			zap.String("kind", kind),
			zap.Int("input_len", len(input)),
			zap.Duration("took", time.Since(start)),
		)
		return analysisResult{Error: &errorBody{Kind: kind, Message: lexer.Describe(err)}}
	}
	return analysisResult{Tokens: tokens, Expression: lexer.Format(tokens)}
}

// --- Analysis ---

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input *string `json:"input"`
	}
	if !h.decode(w, r, h.maxBodyBytes(1), &req) {
		return
	}
	if req.Input == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "input is required")
		return
	}
	if len(*req.Input) > h.maxInputBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "input_too_large", "input exceeds the maximum size")
		return
	}

	res := h.analyze(*req.Input)
	if res.Error != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": res.Error,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tokens":     res.Tokens,
		"expression": res.Expression,
	})
}

func (h *Handler) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Inputs []string `json:"inputs"`
	}
	if !h.decode(w, r, h.maxBodyBytes(MaxBatchSize), &req) {
		return
	}
	if len(req.Inputs) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "no inputs provided")
		return
	}
	if len(req.Inputs) > MaxBatchSize {
		writeError(w, http.StatusRequestEntityTooLarge, "batch_too_large", "too many inputs in one batch")
		return
	}
	for _, in := range req.Inputs {
		if len(in) > h.maxInputBytes {
			writeError(w, http.StatusRequestEntityTooLarge, "input_too_large", "input exceeds the maximum size")
			return
		}
	}

	results := make([]analysisResult, len(req.Inputs))
	failed := 0
	for i, in := range req.Inputs {
		results[i] = h.analyze(in)
		results[i].Input = in
		if results[i].Error != nil {
			failed++
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"failed":  failed,
	})
}

// --- Probes ---

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    "exprlex",
		"version": h.version,
	})
}

// --- Helpers ---

// maxBodyBytes bounds a request body carrying n inputs, leaving room for
// JSON escaping and framing.
func (h *Handler) maxBodyBytes(n int) int64 {
	return int64(n)*int64(h.maxInputBytes)*2 + 4096
}

// decode reads a JSON body into v, writing an error response on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, limit int64, v interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
			return false
		}
		h.logger.Warn("invalid request body", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return false
	}
	return true
}
