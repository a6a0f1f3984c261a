// Package server exposes the calculators over a JSON HTTP API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/fincalc/internal/config"
	"github.com/iwvelando/fincalc/internal/engine"
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type requestIDKey struct{}

type handler struct {
	logger        *zap.Logger
	engine        *engine.Engine
	maxUploadSize int64
	version       string
}

type runResponse struct {
	Results  []engine.Result `json:"results"`
	Warnings []string        `json:"warnings,omitempty"`
	Duration string          `json:"duration"`
	CSV      string          `json:"csv"`
}

// NewHandler constructs the HTTP handler serving the calculator API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		engine:        engine.NewEngine(logger),
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculate", h.handleCalculate)
	mux.HandleFunc("/api/run", h.handleRun)
	mux.HandleFunc("/api/export", h.handleConfigExport)
	mux.HandleFunc("/api/calculators", h.handleCalculators)
	mux.HandleFunc("/api/version", h.handleVersion)

	return withRequestID(mux)
}

// withRequestID tags every request with an id, reusing one supplied by the client.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(constants.RequestIDHeader))
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(constants.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

// Serve runs the API on cfg.Address until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, cfg *Config, logger *zap.Logger, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewHandler(logger, cfg.UploadSizeBytes(), version),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("api server listening",
		zap.String("op", "server.Serve"),
		zap.String("address", cfg.Address),
		zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
		defer cancel()
		logger.Info("api server shutting down", zap.String("op", "server.Serve"))
		return server.Shutdown(shutdownCtx)
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("api server: %w", err)
	}
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var calc config.Calculation
	if err := json.NewDecoder(io.LimitReader(r.Body, h.maxUploadSize)).Decode(&calc); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode calculation: %v", err), op)
		return
	}
	if strings.TrimSpace(calc.Name) == "" {
		calc.Name = calc.Type
	}

	result, err := h.engine.Calculate(calc)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, engine.ErrUnknownType) {
			status = http.StatusNotFound
		}
		h.respondErrorWithOp(w, r, status, err.Error(), op)
		return
	}

	for _, warning := range calc.Validate(calc.Name) {
		w.Header().Add("X-Calculation-Warning", warning)
	}

	h.logger.Info("calculation computed",
		zap.String("op", op),
		zap.String("requestId", requestID(r)),
		zap.String("type", calc.Type),
	)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleRun(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRun"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "missing calculation file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read calculation file: %v", err), op)
		return
	}

	conf, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := conf.ValidateConfiguration()
	results, err := h.engine.Run(*conf)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, engine.ErrUnknownType) {
			status = http.StatusNotFound
		}
		h.respondErrorWithOp(w, r, status, err.Error(), op)
		return
	}

	if results == nil {
		results = []engine.Result{}
	}

	elapsed := time.Since(start)
	h.logger.Info("calculation file computed",
		zap.String("op", op),
		zap.String("requestId", requestID(r)),
		zap.Int("results", len(results)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, runResponse{
		Results:  results,
		Warnings: warnings,
		Duration: elapsed.String(),
		CSV:      output.CsvString(results),
	})
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(io.LimitReader(r.Body, h.maxUploadSize)).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func (h *handler) handleCalculators(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, engine.Calculators())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// exportKeyOrder fixes the leading keys of an exported calculation file.
var exportKeyOrder = []string{"logging", "output", "calculations"}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{}, len(exportKeyOrder))

	for _, key := range exportKeyOrder {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	rest := make([]string, 0, len(payload))
	for key := range payload {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	return yaml.Marshal(orderedConfig{items: items})
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, item := range o.items {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.key},
			valueNode,
		)
	}
	return mapNode, nil
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("api request failed",
		zap.String("op", op),
		zap.String("requestId", requestID(r)),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes payload before writing the status so an encoding failure
// can still be reported as a 500.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": "failed to encode response"})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
