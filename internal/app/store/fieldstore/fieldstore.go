// internal/app/store/fieldstore/fieldstore.go
package fieldstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/fieldhub/internal/app/store/seed"
	"github.com/dalemusser/fieldhub/internal/app/system/idgen"
	"github.com/dalemusser/fieldhub/internal/app/system/records"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"go.uber.org/zap"
)

// Mirror receives every committed record, e.g. to persist it to MongoDB.
type Mirror interface {
	SaveWorkOrder(ctx context.Context, wo models.WorkOrder) error
	SaveCustomer(ctx context.Context, c models.Customer) error
}

// ErrNotPersisted wraps a Mirror failure. The in-memory commit still stands.
var ErrNotPersisted = errors.New("record not persisted")

// displayStarter is implemented by generators whose counter can be moved past
// display numbers that already exist.
type displayStarter interface {
	SetDisplayStart(n int)
}

// Store owns the live collections for one server (or one test).
// Reads return copies; writes go through the records package and swap the
// held slice under the lock.
type Store struct {
	mu            sync.RWMutex
	users         []models.User
	customers     []models.Customer
	workOrders    []models.WorkOrder
	notifications []models.Notification

	gen    idgen.Generator
	now    func() time.Time
	mirror Mirror
	log    *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithMirror installs a Mirror that receives committed records.
func WithMirror(m Mirror) Option {
	return func(s *Store) { s.mirror = m }
}

// WithLogger sets the logger used for mirror failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New builds a Store from snap. The snapshot's slices are copied.
func New(snap seed.Snapshot, gen idgen.Generator, opts ...Option) *Store {
	s := &Store{
		users:         append([]models.User(nil), snap.Users...),
		customers:     append([]models.Customer(nil), snap.Customers...),
		workOrders:    append([]models.WorkOrder(nil), snap.WorkOrders...),
		notifications: append([]models.Notification(nil), snap.Notifications...),
		gen:           gen,
		now:           time.Now,
		log:           zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	if ds, ok := gen.(displayStarter); ok {
		max := 0
		for _, wo := range s.workOrders {
			if n, ok := idgen.ParseDisplayID(wo.DisplayID); ok && n > max {
				max = n
			}
		}
		if max > 0 {
			ds.SetDisplayStart(max + 1)
		}
	}
	return s
}

// WorkOrders returns the work orders, newest first.
func (s *Store) WorkOrders() []models.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WorkOrder(nil), s.workOrders...)
}

// Customers returns the customers in insertion order.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

// Notifications returns the notifications.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

// Users returns the known users.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// WorkOrderByID resolves a work order. ok is false when id is unknown.
func (s *Store) WorkOrderByID(id string) (models.WorkOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return records.FindWorkOrder(s.workOrders, id)
}

// CustomerByID resolves a customer. ok is false when id is unknown.
func (s *Store) CustomerByID(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return records.FindCustomer(s.customers, id)
}

// UserByID resolves a user.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmail resolves a user by email, ignoring case.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	email = strings.TrimSpace(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateWorkOrder creates a work order assigned to actor and puts it at the head.
func (s *Store) CreateWorkOrder(ctx context.Context, in records.WorkOrderInput, actor models.User) (models.WorkOrder, error) {
	s.mu.Lock()
	next, wo, err := records.CreateWorkOrder(s.workOrders, s.customers, in, actor, s.gen, s.now())
	if err == nil {
		s.workOrders = next
	}
	s.mu.Unlock()
	if err != nil {
		return models.WorkOrder{}, err
	}
	return wo, s.mirrorWorkOrder(ctx, wo)
}

// CreateWorkOrderForCustomer creates a work order linked to customerID.
func (s *Store) CreateWorkOrderForCustomer(ctx context.Context, customerID string, in records.WorkOrderInput, actor models.User) (models.WorkOrder, error) {
	s.mu.Lock()
	next, wo, err := records.CreateWorkOrderForCustomer(s.workOrders, s.customers, customerID, in, actor, s.gen, s.now())
	if err == nil {
		s.workOrders = next
	}
	s.mu.Unlock()
	if err != nil {
		return models.WorkOrder{}, err
	}
	return wo, s.mirrorWorkOrder(ctx, wo)
}

// CreateCustomer validates in and appends a new customer.
func (s *Store) CreateCustomer(ctx context.Context, in records.CustomerInput) (models.Customer, error) {
	s.mu.Lock()
	next, c, err := records.CreateCustomer(s.customers, in, s.gen)
	if err == nil {
		s.customers = next
	}
	s.mu.Unlock()
	if err != nil {
		return models.Customer{}, err
	}
	return c, s.mirrorCustomer(ctx, c)
}

// UpdateCustomer replaces the mutable fields of customer id.
func (s *Store) UpdateCustomer(ctx context.Context, id string, in records.CustomerInput) (models.Customer, error) {
	s.mu.Lock()
	next, c, err := records.UpdateCustomer(s.customers, id, in)
	if err == nil {
		s.customers = next
	}
	s.mu.Unlock()
	if err != nil {
		return models.Customer{}, err
	}
	return c, s.mirrorCustomer(ctx, c)
}

func (s *Store) mirrorWorkOrder(ctx context.Context, wo models.WorkOrder) error {
	if s.mirror == nil {
		return nil
	}
	if err := s.mirror.SaveWorkOrder(ctx, wo); err != nil {
		s.log.Error("mirror work order", zap.String("id", wo.ID), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}

func (s *Store) mirrorCustomer(ctx context.Context, c models.Customer) error {
	if s.mirror == nil {
		return nil
	}
	if err := s.mirror.SaveCustomer(ctx, c); err != nil {
		s.log.Error("mirror customer", zap.String("id", c.ID), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}
