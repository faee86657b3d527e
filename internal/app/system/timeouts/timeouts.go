// Package timeouts holds the context deadlines used for MongoDB calls.
//
//   - Ping: health checks and connectivity verification
//   - Short: single-document writes made on behalf of a request
//   - Batch: loading or seeding whole collections at startup
//
// Values are set once at startup with Configure; zero fields keep the default.
package timeouts

import (
	"sync"
	"time"
)

const (
	DefaultPing  = 2 * time.Second
	DefaultShort = 5 * time.Second
	DefaultBatch = 60 * time.Second
)

var (
	mu    sync.RWMutex
	ping  = DefaultPing
	short = DefaultShort
	batch = DefaultBatch
)

// Config holds timeout values. Zero values are ignored.
type Config struct {
	Ping  time.Duration
	Short time.Duration
	Batch time.Duration
}

func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

func Batch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return batch
}

// Configure overrides the non-zero values in cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Batch > 0 {
		batch = cfg.Batch
	}
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping, short, batch = DefaultPing, DefaultShort, DefaultBatch
}

// Current returns the active values.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Short: short, Batch: batch}
}
