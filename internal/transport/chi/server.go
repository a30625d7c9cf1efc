// Package chi wires the search API onto a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/safequery/safequery/internal/domain"
	"github.com/safequery/safequery/internal/privacy"
	feedbackuc "github.com/safequery/safequery/internal/usecase/feedback"
	healthuc "github.com/safequery/safequery/internal/usecase/health"
	searchuc "github.com/safequery/safequery/internal/usecase/search"
	statsuc "github.com/safequery/safequery/internal/usecase/stats"
	suggestuc "github.com/safequery/safequery/internal/usecase/suggest"
	"github.com/safequery/safequery/internal/version"
)

// privacyLogMessage is the fixed privacy notice attached to every search
// response. It is informational only and never derived from the query.
const privacyLogMessage = "Query processed with privacy protection. " +
	"No query text or user data leaves this server."

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers for the search API.
type Server struct {
	search        *searchuc.Service
	suggest       *suggestuc.Service
	feedback      *feedbackuc.Service
	stats         *statsuc.Service
	health        *healthuc.Service
	queries       *privacy.QueryLog
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. queries can be nil to disable
// query logging.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	feedback *feedbackuc.Service,
	stats *statsuc.Service,
	health *healthuc.Service,
	queries *privacy.QueryLog,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		suggest:  suggest,
		feedback: feedback,
		stats:    stats,
		health:   health,
		queries:  queries,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyFeedback, http.StatusBadRequest,
			codeValidationFailed, "Feedback cannot be empty."),
	}
	return s
}

// Register mounts all routes on the router. Disallowed methods get chi's
// default 405.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.handleRoot)
	r.Post("/search", s.handleSearch)
	r.Get("/suggest", s.handleSuggest)
	r.Post("/feedback", s.handleFeedback)
	r.Get("/stats", s.handleStats)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleRoot serves the service banner.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "SafeQuery: Privacy-First Search Engine",
		"version":     version.Version,
		"description": "Keyword search over a static knowledge base with privacy protection",
		"endpoints": map[string]string{
			"search":   "POST /search - Rank the knowledge base against a query",
			"suggest":  "GET /suggest - Get search suggestions",
			"feedback": "POST /feedback - Submit user feedback",
			"stats":    "GET /stats - Get knowledge base statistics",
			"health":   "GET /health - Health check",
		},
	})
}

// handleSearch ranks the corpus against the request query. A missing or
// malformed body degrades to the empty query rather than failing.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Debug("search request body coerced to empty query", zap.Error(err))
		req = searchRequest{}
	}

	if s.queries != nil {
		s.queries.Record(req.Query)
	}

	res := s.search.Rank(req.Query)

	results := make([]searchResult, 0, len(res.Documents))
	for _, d := range res.Documents {
		results = append(results, searchResultFromDomain(d))
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Results:    results,
		Answer:     res.Answer,
		PrivacyLog: privacyLogMessage,
		Stats: searchStats{
			TotalResults:      len(results),
			KnowledgeBaseSize: s.stats.Report().CorpusSize,
			StorageType:       "in-memory",
		},
	})
}

// handleSuggest matches the partial query against the catalog.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("query")
	suggestions := s.suggest.Suggest(partial)
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions})
}

// handleFeedback validates and records a feedback submission.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.feedback.Submit(r.Context(), req.Feedback)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feedbackResponse{
		Message:    "Feedback received successfully.",
		FeedbackID: id,
	})
}

// handleStats serves knowledge base statistics.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponseFromReport(s.stats.Report()))
}

// handleHealth serves the aggregated component health report.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	writeJSON(w, http.StatusOK, healthResponseFromReport(report, time.Now().UTC().Format(time.RFC3339)))
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// sentinelHandler maps a domain sentinel error to a fixed HTTP response.
func sentinelHandler(target error, status int, code errorCode, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, target) {
			return false
		}
		writeError(w, status, code, message)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
