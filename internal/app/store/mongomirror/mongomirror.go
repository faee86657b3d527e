// Package mongomirror persists records committed to the session store.
package mongomirror

import (
	"context"
	"fmt"

	customerstore "github.com/dalemusser/fieldhub/internal/app/store/customers"
	workorderstore "github.com/dalemusser/fieldhub/internal/app/store/workorders"
	"github.com/dalemusser/fieldhub/internal/app/system/timeouts"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mirror upserts work orders and customers into MongoDB.
type Mirror struct {
	WorkOrders *workorderstore.Store
	Customers  *customerstore.Store
}

// New builds a Mirror over db.
func New(db *mongo.Database) *Mirror {
	return &Mirror{
		WorkOrders: workorderstore.New(db),
		Customers:  customerstore.New(db),
	}
}

func (m *Mirror) SaveWorkOrder(ctx context.Context, wo models.WorkOrder) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	if err := m.WorkOrders.Upsert(ctx, wo); err != nil {
		return fmt.Errorf("upsert work order %s: %w", wo.ID, err)
	}
	return nil
}

func (m *Mirror) SaveCustomer(ctx context.Context, c models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	if err := m.Customers.Upsert(ctx, c); err != nil {
		return fmt.Errorf("upsert customer %s: %w", c.ID, err)
	}
	return nil
}
