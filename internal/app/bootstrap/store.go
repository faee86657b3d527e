// internal/app/bootstrap/store.go
package bootstrap

import (
	"context"
	"fmt"

	customerstore "github.com/dalemusser/fieldhub/internal/app/store/customers"
	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/app/store/mongomirror"
	"github.com/dalemusser/fieldhub/internal/app/store/seed"
	workorderstore "github.com/dalemusser/fieldhub/internal/app/store/workorders"
	"github.com/dalemusser/fieldhub/internal/app/system/idgen"
	"github.com/dalemusser/fieldhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// buildStore returns the live record store. With Mongo it starts from the
// persisted collections and mirrors every commit back; otherwise from the seed.
func buildStore(appCfg AppConfig, deps DBDeps, logger *zap.Logger) (*fieldstore.Store, error) {
	gen := idgen.NewULID(appCfg.DisplayIDStart)
	opts := []fieldstore.Option{fieldstore.WithLogger(logger)}

	if deps.MongoDatabase == nil {
		return fieldstore.New(seed.Load(), gen, opts...), nil
	}

	snap, err := loadSnapshot(deps)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded records from MongoDB",
		zap.Int("customers", len(snap.Customers)),
		zap.Int("work_orders", len(snap.WorkOrders)))

	opts = append(opts, fieldstore.WithMirror(mongomirror.New(deps.MongoDatabase)))
	return fieldstore.New(snap, gen, opts...), nil
}

// loadSnapshot reads customers and work orders from MongoDB. Users and
// notifications are not persisted and always come from the seed.
func loadSnapshot(deps DBDeps) (seed.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Batch())
	defer cancel()

	cs, err := customerstore.New(deps.MongoDatabase).Find(ctx)
	if err != nil {
		return seed.Snapshot{}, fmt.Errorf("load customers: %w", err)
	}
	wos, err := workorderstore.New(deps.MongoDatabase).Find(ctx)
	if err != nil {
		return seed.Snapshot{}, fmt.Errorf("load work orders: %w", err)
	}

	return seed.Snapshot{
		Users:         seed.Users(),
		Customers:     cs,
		WorkOrders:    wos,
		Notifications: seed.Notifications(),
	}, nil
}
