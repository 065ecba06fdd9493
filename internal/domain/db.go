package domain

import "context"

// Database defines lifecycle operations for the underlying store. An
// implementation owns its own migration files and strategy, so the whole
// persistence backend can be swapped without touching the services.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
