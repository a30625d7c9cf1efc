package health

import "context"

// StorePinger checks that a persistence target is writable.
type StorePinger interface {
	Ping(ctx context.Context) error
}
