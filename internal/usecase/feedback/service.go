// Package feedback validates and records user feedback submissions.
package feedback

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/safequery/safequery/internal/domain"
	"github.com/safequery/safequery/internal/metrics"
)

// idLen is the number of hex characters kept from the SHA-256 digest.
const idLen = 16

// Service handles feedback submissions.
type Service struct {
	store Store
	now   func() time.Time
}

// New creates a feedback service backed by the given store.
func New(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit validates the feedback text and records it. The text itself is
// never persisted: the store receives only a content-derived ID, the
// length, and a timestamp. Returns the feedback ID.
func (s *Service) Submit(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		metrics.FeedbackTotal.WithLabelValues("rejected").Inc()
		return "", domain.ErrEmptyFeedback
	}

	sum := sha256.Sum256([]byte(text))
	id := hex.EncodeToString(sum[:])[:idLen]

	rec := domain.FeedbackRecord{
		ID:        id,
		Length:    utf8.RuneCountInString(text),
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Append(ctx, rec); err != nil {
		return "", fmt.Errorf("append feedback: %w", err)
	}

	metrics.FeedbackTotal.WithLabelValues("accepted").Inc()
	return id, nil
}
