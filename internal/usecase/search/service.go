// Package search ranks the static corpus against free-text queries.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/safequery/safequery/internal/domain"
	"github.com/safequery/safequery/internal/metrics"
)

const (
	// Whole-query substring bonuses.
	titlePhraseBonus   = 10
	contentPhraseBonus = 5

	// Per-word bonuses. A document collects both when a word appears in
	// title and content, and separate bonuses for each distinct word.
	titleWordBonus   = 3
	contentWordBonus = 1

	// Tokens shorter than this are treated as noise and ignored.
	minWordLen = 3

	maxResults       = 5
	answerSnippetLen = 200

	answerPrefix = "Based on the available information: "
	noHitAnswer  = "No relevant information found for your query."
)

// Result is the outcome of ranking one query against the corpus.
type Result struct {
	Documents []domain.ScoredDocument
	Answer    string
}

// Service scores, filters, and ranks corpus documents for a query.
// It holds only the read-only corpus and is safe for concurrent use.
type Service struct {
	corpus []domain.Document
}

// New creates a ranking service over the given corpus.
func New(corpus []domain.Document) *Service {
	return &Service{corpus: corpus}
}

// Rank scores every corpus document against query, drops zero scores,
// sorts descending by score (ties keep corpus order), and truncates to
// the top 5. The answer is derived from the top hit, or a fixed
// not-found sentence when nothing matches.
//
// The empty query is a substring of everything, so it ranks the whole
// corpus (every document scores at least 15) in corpus order. That
// degenerate behavior is deliberate and covered by tests.
func (s *Service) Rank(query string) Result {
	q := strings.ToLower(query)
	words := queryWords(q)

	scored := make([]domain.ScoredDocument, 0, len(s.corpus))
	for _, d := range s.corpus {
		if score := scoreDocument(d, q, words); score > 0 {
			scored = append(scored, domain.ScoredDocument{Document: d, SearchScore: score})
		}
	}

	// Stable: equal scores keep corpus order, so identical inputs always
	// produce identical output.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SearchScore > scored[j].SearchScore
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	if len(scored) == 0 {
		metrics.SearchesTotal.WithLabelValues("miss").Inc()
	} else {
		metrics.SearchesTotal.WithLabelValues("hit").Inc()
	}

	return Result{Documents: scored, Answer: answerFor(scored)}
}

func scoreDocument(d domain.Document, q string, words []string) int {
	title := strings.ToLower(d.Title)
	content := strings.ToLower(d.Content)

	score := 0
	if strings.Contains(title, q) {
		score += titlePhraseBonus
	}
	if strings.Contains(content, q) {
		score += contentPhraseBonus
	}
	for _, w := range words {
		if strings.Contains(title, w) {
			score += titleWordBonus
		}
		if strings.Contains(content, w) {
			score += contentWordBonus
		}
	}
	return score
}

// queryWords splits the normalized query on whitespace and drops short
// tokens. May return an empty slice; the phrase bonuses still apply then.
func queryWords(q string) []string {
	fields := strings.Fields(q)
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if utf8.RuneCountInString(w) >= minWordLen {
			words = append(words, w)
		}
	}
	return words
}

// answerFor builds the single-sentence answer from the top hit: a fixed
// prefix, the first 200 characters of the content, and an ellipsis.
func answerFor(scored []domain.ScoredDocument) string {
	if len(scored) == 0 {
		return noHitAnswer
	}
	snippet := scored[0].Content
	if r := []rune(snippet); len(r) > answerSnippetLen {
		snippet = string(r[:answerSnippetLen])
	}
	return answerPrefix + snippet + "..."
}
