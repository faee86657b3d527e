package timeouts_test

import (
	"testing"
	"time"

	"github.com/dalemusser/fieldhub/internal/app/system/timeouts"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Short: 9 * time.Second})
	got := timeouts.Current()
	if got.Short != 9*time.Second {
		t.Errorf("Short = %v, want 9s", got.Short)
	}
	if got.Ping != timeouts.DefaultPing || got.Batch != timeouts.DefaultBatch {
		t.Errorf("zero fields changed defaults: %+v", got)
	}
}

func TestReset(t *testing.T) {
	timeouts.Configure(timeouts.Config{Ping: time.Second, Short: time.Second, Batch: time.Second})
	timeouts.Reset()
	if timeouts.Ping() != timeouts.DefaultPing || timeouts.Short() != timeouts.DefaultShort || timeouts.Batch() != timeouts.DefaultBatch {
		t.Errorf("Reset left %+v", timeouts.Current())
	}
}
