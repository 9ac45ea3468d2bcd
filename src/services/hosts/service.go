// Package hosts maintains the host profile documents backing form
// ownership.
package hosts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Backend-EaseForm/src/apperrors"
	"Backend-EaseForm/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the privileged hosts capability. A new principal has no host
// document yet, so the existence check and insert must not depend on scoped
// visibility.
type Store interface {
	HostExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	InsertHost(ctx context.Context, host *models.Host) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Ensure lazily creates the host profile for a principal before its first
// form insert, so the owner reference is always satisfiable. Any failure is
// a bootstrap failure: the caller must abort its insert.
func (s *Service) Ensure(ctx context.Context, hostID primitive.ObjectID, email string) error {
	exists, err := s.store.HostExists(ctx, hostID)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBootstrap, err)
	}
	if exists {
		return nil
	}

	if email == "" {
		email = hostID.Hex() + "@placeholder.com"
	}
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	host := &models.Host{
		ID:               hostID,
		Email:            email,
		Name:             name,
		ActiveFormsCount: 0,
		CreatedAt:        time.Now(),
	}
	if err := s.store.InsertHost(ctx, host); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBootstrap, err)
	}
	return nil
}
