package domain

import "errors"

var (
	// ErrEmptyFeedback signals a feedback submission that is empty after trimming.
	ErrEmptyFeedback = errors.New("feedback is empty")
	// ErrStoreUnavailable signals that a persistence target cannot be written.
	ErrStoreUnavailable = errors.New("store unavailable")
)
