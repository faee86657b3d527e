// internal/app/features/profile/handler.go
package profile

import (
	"context"

	"github.com/dalemusser/fieldhub/internal/app/store/fieldstore"
	"github.com/dalemusser/fieldhub/internal/domain/models"
	"go.uber.org/zap"
)

// LoginHistory lists a user's recent sign-ins. Only the Mongo backend keeps one.
type LoginHistory interface {
	Recent(ctx context.Context, userID string, limit int64) ([]models.LoginRecord, error)
}

type Handler struct {
	Store  *fieldstore.Store
	Logins LoginHistory // nil with the memory backend
	Log    *zap.Logger
}

func NewHandler(store *fieldstore.Store, logins LoginHistory, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Logins: logins,
		Log:    logger,
	}
}
