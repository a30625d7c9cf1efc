// Package suggest matches partial queries against the suggestion catalog.
package suggest

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/safequery/safequery/internal/metrics"
)

const (
	// Partial queries shorter than this skip the catalog scan entirely.
	minQueryLen = 2

	maxSuggestions = 6
	maxTemplated   = 3
)

// Fallback patterns for partial queries with no catalog match. The list is
// always truncated to maxTemplated, so the trailing patterns are never
// emitted; kept for response compatibility with the reference service.
var fallbackTemplates = []string{
	"What is %s?",
	"How does %s work?",
	"Explain %s",
	"%s applications",
	"%s benefits",
}

// Service matches partial queries against the read-only catalog.
// Safe for concurrent use.
type Service struct {
	catalog []string
}

// New creates a suggestion service over the given catalog.
func New(catalog []string) *Service {
	return &Service{catalog: catalog}
}

// Suggest returns up to 6 catalog entries containing partial
// (case-insensitively), in catalog order. Partials shorter than 2
// characters yield nothing. When no catalog entry matches, up to 3
// templated suggestions are synthesized from the literal, non-normalized
// input.
func (s *Service) Suggest(partial string) []string {
	if utf8.RuneCountInString(partial) < minQueryLen {
		metrics.SuggestionsTotal.WithLabelValues("none").Inc()
		return []string{}
	}

	q := strings.ToLower(partial)
	matches := make([]string, 0, maxSuggestions)
	for _, entry := range s.catalog {
		if strings.Contains(strings.ToLower(entry), q) {
			matches = append(matches, entry)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}

	if len(matches) > 0 {
		metrics.SuggestionsTotal.WithLabelValues("catalog").Inc()
		return matches
	}

	metrics.SuggestionsTotal.WithLabelValues("template").Inc()
	return templated(partial)
}

func templated(partial string) []string {
	// Unreachable through Suggest's length guard; templates built from an
	// empty string would be nonsense.
	if partial == "" {
		return []string{}
	}

	out := make([]string, 0, len(fallbackTemplates))
	for _, t := range fallbackTemplates {
		out = append(out, fmt.Sprintf(t, partial))
	}
	return out[:maxTemplated]
}
