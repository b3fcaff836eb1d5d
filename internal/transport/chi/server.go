package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/partsearch/internal/domain"
	"github.com/kailas-cloud/partsearch/internal/domain/product"
	"github.com/kailas-cloud/partsearch/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/partsearch/internal/logger"
	catalogsvc "github.com/kailas-cloud/partsearch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/partsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/partsearch/internal/usecase/search"
)

// ErrorCode is the machine-readable error code in error responses.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest        ErrorCode = "bad_request"
	ErrorCodeQueryTooLong      ErrorCode = "query_too_long"
	ErrorCodeUnauthorized      ErrorCode = "unauthorized"
	ErrorCodeCatalogLoadFailed ErrorCode = "catalog_load_failed"
	ErrorCodeCatalogEmpty      ErrorCode = "catalog_empty"
	ErrorCodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ProductResponse is a catalog entry in search results.
type ProductResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query  string            `json:"query"`
	Intent string            `json:"intent,omitempty"`
	Phase  string            `json:"phase"`
	Total  int               `json:"total"`
	Items  []ProductResponse `json:"items"`
}

// ReloadResponse is the body of POST /api/admin/reload.
type ReloadResponse struct {
	Status   string    `json:"status"`
	Products int       `json:"products"`
	Version  uint64    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status         string            `json:"status"`
	Checks         map[string]string `json:"checks"`
	Products       int               `json:"products"`
	CatalogVersion uint64            `json:"catalog_version"`
	LoadedAt       *time.Time        `json:"loaded_at,omitempty"` // nil until the first successful load
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the search API.
type Server struct {
	search         *searchuc.Service
	catalog        *catalogsvc.Service
	health         *healthuc.Service
	logger         *zap.Logger
	minQueryLength int
	staticDir      string
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	catalog *catalogsvc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:         search,
		catalog:        catalog,
		health:         health,
		logger:         logger,
		minQueryLength: 1,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrQueryRequired, http.StatusBadRequest, ErrorCodeBadRequest),
		sentinelHandler(domain.ErrQueryTooLong, http.StatusBadRequest, ErrorCodeQueryTooLong),
		sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized, ErrorCodeUnauthorized),
		sentinelHandler(domain.ErrCatalogLoad, http.StatusServiceUnavailable, ErrorCodeCatalogLoadFailed),
		sentinelHandler(domain.ErrCatalogEmpty, http.StatusServiceUnavailable, ErrorCodeCatalogEmpty),
	}
	return s
}

// WithMinQueryLength sets the shortest query (in runes, after trimming) that is searched.
func (s *Server) WithMinQueryLength(n int) *Server {
	if n > 0 {
		s.minQueryLength = n
	}
	return s
}

// WithStaticDir serves files from dir for every unmatched GET.
func (s *Server) WithStaticDir(dir string) *Server {
	s.staticDir = dir
	return s
}

// Routes registers all endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/search", s.Search)
	r.Post("/api/admin/reload", s.Reload)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	if s.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
	}
}

// Search handles GET /api/search?q=.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var q string
	if err := runtime.BindQueryParameter("form", true, true, "q", r.URL.Query(), &q); err != nil {
		s.handleDomainError(w, fmt.Errorf("%w: %w", domain.ErrQueryRequired, err))
		return
	}

	if utf8.RuneCountInString(strings.TrimSpace(q)) < s.minQueryLength {
		writeJSON(w, http.StatusOK, SearchResponse{
			Query: q,
			Phase: string(result.PhaseNone),
			Items: []ProductResponse{},
		})
		return
	}

	res, err := s.search.Search(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResultToResponse(q, &res))
}

// Reload handles POST /api/admin/reload.
func (s *Server) Reload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.catalog.Reload(logpkg.WithFields(r.Context(), zap.String("trigger", "http")))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ReloadResponse{
		Status:   "ok",
		Products: snap.Len(),
		Version:  snap.Version(),
		LoadedAt: snap.LoadedAt(),
	})
}

// HealthCheck handles GET /health. A degraded service still answers searches, so the status code stays 200.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	snap := s.catalog.Current()
	resp := HealthResponse{
		Status:         string(report.Status),
		Checks:         checks,
		Products:       snap.Len(),
		CatalogVersion: snap.Version(),
	}
	if loadedAt := snap.LoadedAt(); !loadedAt.IsZero() {
		resp.LoadedAt = &loadedAt
	}

	writeJSON(w, http.StatusOK, resp)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrQueryRequired,
		domain.ErrQueryTooLong,
		domain.ErrUnauthorized,
		domain.ErrCatalogLoad,
		domain.ErrCatalogEmpty,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func searchResultToResponse(query string, r *result.Result) SearchResponse {
	items := make([]ProductResponse, r.Len())
	for i, p := range r.Products() {
		items[i] = productToResponse(p)
	}
	phase := r.Phase()
	if phase == "" {
		phase = result.PhaseNone
	}
	return SearchResponse{
		Query:  query,
		Intent: string(r.Intent()),
		Phase:  string(phase),
		Total:  len(items),
		Items:  items,
	}
}

func productToResponse(p product.Product) ProductResponse {
	return ProductResponse{
		Code:        p.Code(),
		Name:        p.Name(),
		Category:    p.Category(),
		Description: p.Description(),
	}
}
