// internal/app/bootstrap/workers.go
package bootstrap

import (
	"sync"

	"github.com/dalemusser/fieldhub/internal/app/system/workers"
)

// Background workers started by BuildHandler and stopped by Shutdown.
var (
	workersMu sync.Mutex
	running   []*workers.PruneWorker
)

func startWorker(w *workers.PruneWorker) {
	workersMu.Lock()
	defer workersMu.Unlock()
	w.Start()
	running = append(running, w)
}

func stopWorkers() {
	workersMu.Lock()
	defer workersMu.Unlock()
	for _, w := range running {
		w.Stop()
	}
	running = nil
}
