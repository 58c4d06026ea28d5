// Package server exposes the market simulation over HTTP: one-shot and
// batch simulation endpoints plus health and version probes, wrapped in
// CORS handling and per-IP rate limiting.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/iwvelando/market-sim/internal/market"
	"github.com/iwvelando/market-sim/internal/sim"
	"github.com/iwvelando/market-sim/internal/version"
	"github.com/iwvelando/market-sim/pkg/constants"
	"go.uber.org/zap"
)

type handler struct {
	logger  *zap.Logger
	cfg     *Config
	limits  market.Limits
	version string
}

// NewHandler constructs the HTTP handler serving the market simulation API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = &Config{}
		_ = cfg.normalize()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:  logger,
		cfg:     cfg,
		limits:  cfg.Limits.MarketLimits(),
		version: trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/market", h.handleMarket)
	mux.HandleFunc("/api/v1/market/batch", h.handleBatch)
	mux.HandleFunc("/api/v1/health", h.handleHealth)
	mux.HandleFunc("/api/v1/version", h.handleVersion)

	limiter := newRateLimiter(cfg.RateLimitRequests, cfg.RateWindow())
	return corsMiddleware(limiter.limit(mux), cfg.CORSOrigins)
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Localhost dev servers are always allowed; extra origins come from the
// server configuration.
func corsMiddleware(next http.Handler, extra []string) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	for _, origin := range extra {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type marketRequest struct {
	market.PopulationSpec
	IncludeAnalysis bool `json:"include_analysis,omitempty"`
}

type marketResponse struct {
	ID          string              `json:"simulation_id"`
	Demand      []market.PricePoint `json:"demand"`
	Supply      []market.PricePoint `json:"supply"`
	Equilibrium market.Equilibrium  `json:"equilibrium"`
	Surplus     market.Surplus      `json:"surplus"`
	Analysis    *market.Analysis    `json:"analysis,omitempty"`
	Metadata    sim.Metadata        `json:"metadata"`
}

type batchRequest struct {
	Spec            market.PopulationSpec `json:"spec"`
	Seeds           []int64               `json:"seeds"`
	Concurrency     int                   `json:"concurrency,omitempty"`
	IncludeAnalysis bool                  `json:"include_analysis,omitempty"`
}

type batchResponse struct {
	Results []marketResponse `json:"results"`
	Count   int              `json:"count"`
}

func (h *handler) handleMarket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req marketRequest
	if !h.decodeJSON(w, r, &req, "server.handleMarket") {
		return
	}

	result, err := sim.Run(h.logger, req.PopulationSpec, h.limits)
	if err != nil {
		h.respondMarketError(w, err, "server.handleMarket")
		return
	}

	h.writeJSON(w, http.StatusOK, toMarketResponse(result, req.IncludeAnalysis))
}

func (h *handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req batchRequest
	if !h.decodeJSON(w, r, &req, "server.handleBatch") {
		return
	}

	if len(req.Seeds) == 0 {
		h.respondError(w, http.StatusBadRequest, "seeds must not be empty", "server.handleBatch")
		return
	}
	if len(req.Seeds) > h.cfg.MaxBatchSeeds {
		h.respondError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch exceeds limit of %d seeds, got %d", h.cfg.MaxBatchSeeds, len(req.Seeds)),
			"server.handleBatch")
		return
	}

	results, err := sim.RunBatch(r.Context(), h.logger, req.Spec, h.limits, req.Seeds, req.Concurrency)
	if err != nil {
		h.respondMarketError(w, err, "server.handleBatch")
		return
	}

	resp := batchResponse{
		Results: make([]marketResponse, 0, len(results)),
		Count:   len(results),
	}
	for _, result := range results {
		resp.Results = append(resp.Results, toMarketResponse(result, req.IncludeAnalysis))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// handleHealth runs a small fixed simulation and verifies its basic
// invariants, demonstrating the core works without a full test harness.
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if err := h.healthCheck(); err != nil {
		h.logger.Error("health check failed",
			zap.String("op", "server.handleHealth"),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status": "failing",
			"error":  err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

func (h *handler) healthCheck() error {
	seed := constants.HealthCheckSeed
	spec := market.PopulationSpec{
		NumBuyers: constants.HealthCheckBuyers, MinWTP: 10, MaxWTP: 40,
		NumSellers: constants.HealthCheckSellers, MinCost: 5, MaxCost: 35,
		Seed: &seed,
	}

	result, err := sim.Run(h.logger, spec, market.DefaultLimits())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	for i := 1; i < len(result.Demand); i++ {
		if result.Demand[i].Price > result.Demand[i-1].Price {
			return fmt.Errorf("demand curve not non-increasing at quantity %d", result.Demand[i].Quantity)
		}
	}
	for i := 1; i < len(result.Supply); i++ {
		if result.Supply[i].Price < result.Supply[i-1].Price {
			return fmt.Errorf("supply curve not non-decreasing at quantity %d", result.Supply[i].Quantity)
		}
	}
	for i := 0; i < result.Equilibrium.Quantity; i++ {
		if result.Demand[i].Price < result.Supply[i].Price {
			return fmt.Errorf("infeasible match at quantity %d", i+1)
		}
	}
	if result.Surplus.TotalMax < 0 {
		return fmt.Errorf("negative surplus %g", result.Surplus.TotalMax)
	}
	return nil
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version":   h.version,
		"commit":    version.Commit,
		"buildTime": version.BuildTime,
	})
}

func toMarketResponse(result *sim.Result, includeAnalysis bool) marketResponse {
	resp := marketResponse{
		ID:          result.ID,
		Demand:      result.Demand,
		Supply:      result.Supply,
		Equilibrium: result.Equilibrium,
		Surplus:     result.Surplus,
		Metadata:    result.Metadata,
	}
	if includeAnalysis {
		analysis := result.Analysis
		resp.Analysis = &analysis
	}
	return resp
}

// decodeJSON reads and decodes the request body, capping it at the
// configured size. It writes the error response itself and reports
// whether decoding succeeded.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if max := h.cfg.RequestSizeBytes(); max > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, max)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.cfg.RequestSizeBytes()), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// respondMarketError maps a simulation error onto a transport status and
// includes the error kind in the body when the core classified it.
func (h *handler) respondMarketError(w http.ResponseWriter, err error, op string) {
	kind, ok := market.KindOf(err)
	if !ok {
		h.respondError(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	h.logger.Error("simulation request failed",
		zap.String("op", op),
		zap.String("kind", string(kind)),
		zap.String("error", err.Error()),
	)

	h.writeJSON(w, statusForKind(kind), map[string]string{
		"error": err.Error(),
		"kind":  string(kind),
	})
}

// statusForKind translates the core's error taxonomy into HTTP status codes.
func statusForKind(kind market.ErrorKind) int {
	switch kind {
	case market.KindPopulationTooLarge:
		return http.StatusRequestEntityTooLarge
	case market.KindInvalidSegment, market.KindInvalidDistribution, market.KindEmptyPopulation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
