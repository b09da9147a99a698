// Package transport exposes the forensic operations over REST on the gateway mux.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/cluster"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/tracer"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxRequestBytes = 64 << 10

// Dependencies are the services a ForensicsHandler routes to.
type Dependencies struct {
	Gateway    Gateway
	Tracer     Tracer
	Clusters   Clusters
	Scorer     Scorer
	Reports    Reports
	Patterns   Patterns
	Dossiers   Dossiers
	Correlator Correlator
}

// ForensicsHandler serves the forensic REST API.
type ForensicsHandler struct {
	deps      Dependencies
	marshaler gwruntime.Marshaler
	logger    *zap.Logger
}

type route struct {
	method  string
	pattern string
	handle  func(r *http.Request, params map[string]string) (any, error)
	status  int
}

// NewForensicsHandler builds a ForensicsHandler.
func NewForensicsHandler(deps Dependencies, logger *zap.Logger) *ForensicsHandler {
	return &ForensicsHandler{
		deps:      deps,
		marshaler: &gwruntime.JSONBuiltin{},
		logger:    logger.Named("forensics_handler"),
	}
}

// Register attaches every route to mux.
func (h *ForensicsHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []route{
		{method: http.MethodGet, pattern: "/v1/addresses/{address}", handle: h.address},
		{method: http.MethodGet, pattern: "/v1/addresses/{address}/transactions", handle: h.transactions},
		{method: http.MethodGet, pattern: "/v1/blocks/{hash}", handle: h.block},
		{method: http.MethodGet, pattern: "/v1/addresses/{address}/trace/origin", handle: h.traceOrigin},
		{method: http.MethodGet, pattern: "/v1/addresses/{address}/trace/destination", handle: h.traceDestination},
		{method: http.MethodGet, pattern: "/v1/addresses/{address}/cluster/label", handle: h.clusterByLabel},
		{method: http.MethodGet, pattern: "/v1/addresses/{address}/cluster/co-occurrence", handle: h.clusterByCoOccurrence},
		{method: http.MethodGet, pattern: "/v1/addresses/{address}/relations", handle: h.relations},
		{method: http.MethodPost, pattern: "/v1/addresses/{address}/risk", handle: h.scoreAddress},
		{method: http.MethodPost, pattern: "/v1/risk:scoreAll", handle: h.scoreAll, status: http.StatusAccepted},
		{method: http.MethodGet, pattern: "/v1/addresses/{address}/reports", handle: h.reports},
		{method: http.MethodPost, pattern: "/v1/addresses/{address}/patterns", handle: h.tagPatterns},
		{method: http.MethodGet, pattern: "/v1/addresses/{address}/dossier", handle: h.dossier},
		{method: http.MethodPost, pattern: "/v1/correlations", handle: h.correlate, status: http.StatusCreated},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, h.wrap(rt)); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func (h *ForensicsHandler) wrap(rt route) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		resp, err := rt.handle(r, params)
		if err != nil {
			status := statusOf(err)
			if status >= http.StatusInternalServerError {
				h.logger.Error("request failed", zap.String("route", rt.pattern), zap.Int("status", status), zap.Error(err))
			} else {
				h.logger.Debug("request rejected", zap.String("route", rt.pattern), zap.Int("status", status), zap.Error(err))
			}
			h.write(w, status, errorResponse{Error: err.Error()})
			return
		}
		status := rt.status
		if status == 0 {
			status = http.StatusOK
		}
		h.write(w, status, resp)
	}
}

func (h *ForensicsHandler) write(w http.ResponseWriter, status int, v any) {
	body, err := h.marshaler.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("failed to write response", zap.Error(err))
	}
}

func statusOf(err error) int {
	switch {
	case model.IsValidation(err), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, provider.ErrUnconfigured):
		return http.StatusInternalServerError
	case provider.Degradable(err), errors.Is(err, provider.ErrChallengeDetected):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	var apiErr *provider.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

var errBadRequest = errors.New("bad request")

func (h *ForensicsHandler) address(r *http.Request, params map[string]string) (any, error) {
	refresh, err := boolQuery(r, "refresh")
	if err != nil {
		return nil, err
	}
	addr, err := h.deps.Gateway.FetchAddress(r.Context(), params["address"], refresh)
	if err != nil {
		return nil, err
	}
	return toAddress(addr), nil
}

func (h *ForensicsHandler) transactions(r *http.Request, params map[string]string) (any, error) {
	refresh, err := boolQuery(r, "refresh")
	if err != nil {
		return nil, err
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	txs, err := h.deps.Gateway.FetchTransactionsForAddress(r.Context(), params["address"], limit, refresh)
	if err != nil {
		return nil, err
	}
	return toTransactions(txs), nil
}

func (h *ForensicsHandler) block(r *http.Request, params map[string]string) (any, error) {
	refresh, err := boolQuery(r, "refresh")
	if err != nil {
		return nil, err
	}
	b, err := h.deps.Gateway.FetchBlock(r.Context(), params["hash"], refresh)
	if err != nil {
		return nil, err
	}
	return toBlock(b), nil
}

func (h *ForensicsHandler) traceOrigin(r *http.Request, params map[string]string) (any, error) {
	depth, err := intQuery(r, "max_depth", tracer.DefaultOriginDepth)
	if err != nil {
		return nil, err
	}
	res, err := h.deps.Tracer.TraceOrigin(r.Context(), params["address"], depth)
	if err != nil {
		return nil, err
	}
	return toTrace(res), nil
}

func (h *ForensicsHandler) traceDestination(r *http.Request, params map[string]string) (any, error) {
	window, err := intQuery(r, "window_days", 0)
	if err != nil {
		return nil, err
	}
	depth, err := intQuery(r, "max_depth", 0)
	if err != nil {
		return nil, err
	}
	res, err := h.deps.Tracer.TraceDestination(r.Context(), params["address"], tracer.DestinationOptions{WindowDays: window, MaxDepth: depth})
	if err != nil {
		return nil, err
	}
	return toTrace(res), nil
}

func (h *ForensicsHandler) clusterByLabel(r *http.Request, params map[string]string) (any, error) {
	c, err := h.deps.Clusters.DetectByLabel(r.Context(), params["address"])
	if err != nil {
		return nil, err
	}
	return toCluster(c), nil
}

func (h *ForensicsHandler) clusterByCoOccurrence(r *http.Request, params map[string]string) (any, error) {
	hops, err := intQuery(r, "max_hops", 0)
	if err != nil {
		return nil, err
	}
	members, err := intQuery(r, "max_members", 0)
	if err != nil {
		return nil, err
	}
	c, err := h.deps.Clusters.DetectByCoOccurrence(r.Context(), params["address"], cluster.CoOccurrenceOptions{MaxHops: hops, MaxMembers: members})
	if err != nil {
		return nil, err
	}
	return toCluster(c), nil
}

// relations returns the stored relations; ?detect=true recomputes them first.
func (h *ForensicsHandler) relations(r *http.Request, params map[string]string) (any, error) {
	detect, err := boolQuery(r, "detect")
	if err != nil {
		return nil, err
	}
	var relations []model.Relation
	if detect {
		relations, err = h.deps.Clusters.DetectRelations(r.Context(), params["address"])
	} else {
		relations, err = h.deps.Clusters.RelationsForAddress(r.Context(), params["address"])
	}
	if err != nil {
		return nil, err
	}
	return toRelations(relations), nil
}

func (h *ForensicsHandler) scoreAddress(r *http.Request, params map[string]string) (any, error) {
	return h.deps.Scorer.ScoreAddress(r.Context(), params["address"])
}

func (h *ForensicsHandler) scoreAll(r *http.Request, _ map[string]string) (any, error) {
	return h.deps.Scorer.ScoreAllAddresses(r.Context())
}

func (h *ForensicsHandler) reports(r *http.Request, params map[string]string) (any, error) {
	refresh, err := boolQuery(r, "refresh")
	if err != nil {
		return nil, err
	}
	filed, err := h.deps.Reports.ReportsForAddress(r.Context(), params["address"], refresh)
	if err != nil {
		return nil, err
	}
	return toReports(filed), nil
}

func (h *ForensicsHandler) tagPatterns(r *http.Request, params map[string]string) (any, error) {
	return h.deps.Patterns.TagAddress(r.Context(), params["address"])
}

func (h *ForensicsHandler) dossier(r *http.Request, params map[string]string) (any, error) {
	d, err := h.deps.Dossiers.Build(r.Context(), params["address"])
	if err != nil {
		return nil, err
	}
	return toDossier(d), nil
}

func (h *ForensicsHandler) correlate(r *http.Request, _ map[string]string) (any, error) {
	var req correlationRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req); err != nil {
		return nil, fmt.Errorf("decode correlation request: %w: %w", errBadRequest, err)
	}
	c, err := h.deps.Correlator.Correlate(r.Context(), req.Addresses, req.Window)
	if err != nil {
		return nil, err
	}
	return toCorrelation(c), nil
}

func boolQuery(r *http.Request, key string) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("query %s=%q: %w", key, raw, errBadRequest)
	}
	return v, nil
}

// intQuery returns fallback when key is absent.
func intQuery(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query %s=%q: %w", key, raw, errBadRequest)
	}
	return v, nil
}
