// internal/app/system/workers/pruner.go
package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pruner drops stale in-memory state and reports how many entries went.
type Pruner interface {
	Prune() int
}

// PruneWorker calls Prune on a fixed interval until stopped.
type PruneWorker struct {
	name     string
	target   Pruner
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPruneWorker creates a worker named name that prunes target every interval.
func NewPruneWorker(name string, target Pruner, logger *zap.Logger, interval time.Duration) *PruneWorker {
	return &PruneWorker{
		name:     name,
		target:   target,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background loop.
func (w *PruneWorker) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("prune worker started",
		zap.String("worker", w.name),
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish. Safe to call twice.
func (w *PruneWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("prune worker stopped", zap.String("worker", w.name))
	})
}

func (w *PruneWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.prune()
		}
	}
}

func (w *PruneWorker) prune() {
	if n := w.target.Prune(); n > 0 {
		w.log.Debug("pruned entries", zap.String("worker", w.name), zap.Int("count", n))
	}
}
