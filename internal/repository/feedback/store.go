// Package feedback implements the append-only file store for feedback
// records.
package feedback

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/safequery/safequery/internal/domain"
)

// FileStore appends feedback records to a local log file. Entries hold
// the hash-derived ID and length only, never the feedback text.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store writing to path. The file is created on
// first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append writes one record to the log file.
func (s *FileStore) Append(_ context.Context, rec domain.FeedbackRecord) error {
	entry := fmt.Sprintf(
		"[%s] Feedback ID: %s\nLength: %d chars\n--------------------\n\n",
		rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.ID, rec.Length,
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(filepath.Clean(s.path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", domain.ErrStoreUnavailable, s.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrStoreUnavailable, s.path, err)
	}
	return nil
}

// Ping verifies the log file can be opened for appending.
func (s *FileStore) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(filepath.Clean(s.path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return f.Close()
}
