package app

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/moodmate-backend/internal/adapter/memory"
	"github.com/heartmarshall/moodmate-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/moodmate-backend/internal/config"
)

// Storage is the keyed blob backend behind the record store.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

// OpenStorage opens the backend selected by cfg.Driver. SQLite files are
// created and migrated on first use.
func OpenStorage(ctx context.Context, cfg config.StorageConfig, clock clockwork.Clock) (Storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewStore(), nil
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.Path, clock)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
