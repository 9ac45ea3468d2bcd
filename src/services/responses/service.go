// Package responses implements anonymous submission with per-device
// deduplication, plus the owner-side listing and deletion of responses.
package responses

import (
	"context"
	"time"

	"Backend-EaseForm/src/apperrors"
	"Backend-EaseForm/src/models"
	"Backend-EaseForm/src/services/authz"
	"Backend-EaseForm/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the responses storage contract. Responses carry no owner field;
// ownership is checked through the parent form before any owner-side call.
type Store interface {
	HasFingerprint(ctx context.Context, formID primitive.ObjectID, deviceHash string) (bool, error)
	InsertResponse(ctx context.Context, response *models.Response) error
	ListByForm(ctx context.Context, formID primitive.ObjectID) ([]models.Response, error)
	FindResponse(ctx context.Context, id primitive.ObjectID) (*models.Response, error)
	DeleteResponse(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// FormFinder gives the service the two form reads it needs: the anonymous
// read for the submission path and the scoped read for ownership checks.
type FormFinder interface {
	FindForm(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	FindOwnedForm(ctx context.Context, hostID, id primitive.ObjectID) (*models.Form, error)
}

type Service struct {
	store    Store
	forms    FormFinder
	resolver *authz.Resolver
}

func NewService(store Store, forms FormFinder, resolver *authz.Resolver) *Service {
	return &Service{store: store, forms: forms, resolver: resolver}
}

// Submit accepts one anonymous response per device per form. The form must
// exist and be open; the device fingerprint must be unseen for this form.
//
// The existence check and the insert are not atomic: two concurrent
// submissions with the same fingerprint can both pass the check, leaving at
// most one extra row. A unique index on (formId, deviceHash) at the storage
// layer would close the race.
func (s *Service) Submit(ctx context.Context, formID primitive.ObjectID, userAgent, clientIP string, answers map[string]interface{}) (*models.Response, error) {
	form, err := s.forms.FindForm(ctx, formID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if form == nil {
		return nil, apperrors.ErrNotFound
	}
	if form.AcceptanceState() != models.StateOpen {
		return nil, apperrors.ErrAcceptanceClosed
	}

	deviceHash := utils.DeviceHash(userAgent, clientIP, formID.Hex())

	seen, err := s.store.HasFingerprint(ctx, formID, deviceHash)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if seen {
		return nil, apperrors.ErrDuplicateConflict
	}

	if answers == nil {
		answers = map[string]interface{}{}
	}
	response := &models.Response{
		FormID:     formID,
		Answers:    answers,
		DeviceHash: deviceHash,
		CreatedAt:  time.Now(),
	}
	if err := s.store.InsertResponse(ctx, response); err != nil {
		return nil, apperrors.Storage(err)
	}
	return response, nil
}

// ListForForm returns the normalized responses of a form the host owns.
func (s *Service) ListForForm(ctx context.Context, hostID, formID primitive.ObjectID) ([]models.ResponseView, error) {
	if err := s.ensureOwned(ctx, hostID, formID); err != nil {
		return nil, err
	}

	raw, err := s.store.ListByForm(ctx, formID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	views := make([]models.ResponseView, 0, len(raw))
	for _, r := range raw {
		views = append(views, Normalize(r))
	}
	return views, nil
}

// Delete removes one response after verifying the caller owns its form.
func (s *Service) Delete(ctx context.Context, hostID, responseID primitive.ObjectID) error {
	response, err := s.store.FindResponse(ctx, responseID)
	if err != nil {
		return apperrors.Storage(err)
	}
	if response == nil {
		return apperrors.ErrNotFound
	}

	if err := s.ensureOwned(ctx, hostID, response.FormID); err != nil {
		return err
	}

	deleted, err := s.store.DeleteResponse(ctx, responseID)
	if err != nil {
		return apperrors.Storage(err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

// ensureOwned resolves form ownership for hostID: scoped read first, then
// the resolver on an empty result.
func (s *Service) ensureOwned(ctx context.Context, hostID, formID primitive.ObjectID) error {
	form, err := s.forms.FindOwnedForm(ctx, hostID, formID)
	if err != nil {
		return apperrors.Storage(err)
	}
	if form != nil {
		return nil
	}

	decision, err := s.resolver.ResolveForm(ctx, formID, hostID)
	if err != nil {
		return err
	}
	if decision != authz.Authorized {
		return decision.Err()
	}
	return nil
}

// Normalize maps a stored response to its external shape. Total: a nil
// answers map from a partial write becomes an empty one, everything else
// passes through.
func Normalize(raw models.Response) models.ResponseView {
	answers := raw.Answers
	if answers == nil {
		answers = map[string]interface{}{}
	}
	return models.ResponseView{
		ID:         raw.ID,
		FormID:     raw.FormID,
		Answers:    answers,
		DeviceHash: raw.DeviceHash,
		CreatedAt:  raw.CreatedAt,
	}
}
