package feedback

import (
	"context"

	"github.com/safequery/safequery/internal/domain"
)

// Store persists accepted feedback records.
type Store interface {
	Append(ctx context.Context, rec domain.FeedbackRecord) error
}
