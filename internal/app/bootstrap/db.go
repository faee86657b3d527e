// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	customerstore "github.com/dalemusser/fieldhub/internal/app/store/customers"
	"github.com/dalemusser/fieldhub/internal/app/store/seed"
	workorderstore "github.com/dalemusser/fieldhub/internal/app/store/workorders"
	"github.com/dalemusser/fieldhub/internal/app/system/indexes"
	"github.com/dalemusser/fieldhub/internal/app/system/timeouts"
	"github.com/dalemusser/fieldhub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB when the mongo backend is selected.
// The memory backend returns empty DBDeps.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.UsesMongo() {
		logger.Info("memory store backend; skipping MongoDB")
		return DBDeps{}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(appCfg.MongoURI).
		SetAppName("fieldhub"))
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingTimeout := appCfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = timeouts.DefaultPing
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema attaches validators, builds indexes and seeds an empty
// database with the fixture records. Nothing happens with the memory backend.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	db := deps.MongoDatabase

	if err := validators.EnsureAll(ctx, db, logger); err != nil {
		return fmt.Errorf("validators: %w", err)
	}
	if err := indexes.EnsureAll(ctx, db, logger); err != nil {
		return fmt.Errorf("indexes: %w", err)
	}
	return seedIfEmpty(ctx, db, logger)
}

// seedIfEmpty inserts the fixtures when work_orders holds no documents.
// Customers are only seeded into an empty customers collection.
func seedIfEmpty(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	orders := workorderstore.New(db)
	n, err := orders.Count(ctx)
	if err != nil {
		return fmt.Errorf("count work orders: %w", err)
	}
	if n > 0 {
		logger.Debug("work_orders not empty; skipping seed", zap.Int64("count", n))
		return nil
	}

	snap := seed.Load()
	customers := customerstore.New(db)
	nc, err := customers.Count(ctx)
	if err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if nc == 0 {
		if err := customers.InsertMany(ctx, snap.Customers); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}
	if err := orders.InsertMany(ctx, snap.WorkOrders); err != nil {
		return fmt.Errorf("seed work orders: %w", err)
	}
	logger.Info("seeded MongoDB",
		zap.Int("customers", len(snap.Customers)),
		zap.Int("work_orders", len(snap.WorkOrders)))
	return nil
}
