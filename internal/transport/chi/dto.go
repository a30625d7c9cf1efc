package chi

import (
	"github.com/safequery/safequery/internal/domain"
	healthuc "github.com/safequery/safequery/internal/usecase/health"
	statsuc "github.com/safequery/safequery/internal/usecase/stats"
)

// Display truncation for result content; the ranker always sees the full
// text, only the response payload is shortened.
const maxDisplayContentLen = 500

type searchRequest struct {
	Query string `json:"query"`
}

type searchResult struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	SearchScore int    `json:"searchScore"`
}

type searchStats struct {
	TotalResults      int    `json:"total_results"`
	KnowledgeBaseSize int    `json:"knowledge_base_size"`
	StorageType       string `json:"storage_type"`
}

type searchResponse struct {
	Results    []searchResult `json:"results"`
	Answer     string         `json:"answer"`
	PrivacyLog string         `json:"privacy_log"`
	Stats      searchStats    `json:"stats"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
}

type feedbackResponse struct {
	Message    string `json:"message"`
	FeedbackID string `json:"feedback_id"`
}

type statsResponse struct {
	CorpusSize      int      `json:"corpus_size"`
	CatalogSize     int      `json:"catalog_size"`
	StorageType     string   `json:"storage_type"`
	PrivacyFeatures []string `json:"privacy_features"`
	Capabilities    []string `json:"capabilities"`
}

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeInternalError    errorCode = "internal_error"
)

func searchResultFromDomain(d domain.ScoredDocument) searchResult {
	return searchResult{
		Title:       d.Title,
		Content:     displayContent(d.Content),
		URL:         d.URL,
		SearchScore: d.SearchScore,
	}
}

func displayContent(content string) string {
	r := []rune(content)
	if len(r) <= maxDisplayContentLen {
		return content
	}
	return string(r[:maxDisplayContentLen]) + "..."
}

func statsResponseFromReport(r statsuc.Report) statsResponse {
	return statsResponse{
		CorpusSize:      r.CorpusSize,
		CatalogSize:     r.CatalogSize,
		StorageType:     r.StorageType,
		PrivacyFeatures: r.PrivacyFeatures,
		Capabilities:    r.Capabilities,
	}
}

func healthResponseFromReport(r healthuc.Report, timestamp string) healthResponse {
	checks := make(map[string]string, len(r.Checks))
	for name, res := range r.Checks {
		checks[name] = string(res)
	}
	return healthResponse{Status: string(r.Status), Timestamp: timestamp, Checks: checks}
}
