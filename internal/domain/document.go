package domain

import "time"

// Document is a static corpus entry. The corpus is loaded once at startup
// and never mutated afterwards.
//
// BaseScore is an authoring-time weight reserved in the dataset schema.
// Ranking does not read it; see internal/usecase/search.
type Document struct {
	Title     string  `yaml:"title" json:"title"`
	Content   string  `yaml:"content" json:"content"`
	URL       string  `yaml:"url" json:"url"`
	BaseScore float64 `yaml:"base_score" json:"baseScore"`
}

// ScoredDocument pairs a Document with its relevance score for one query.
// SearchScore is deterministic for a given (query, document) pair.
type ScoredDocument struct {
	Document
	SearchScore int `json:"searchScore"`
}

// FeedbackRecord is what gets persisted for an accepted feedback
// submission. The feedback text itself is never stored, only its
// hash-derived ID and length.
type FeedbackRecord struct {
	ID        string
	Length    int
	CreatedAt time.Time
}
