// Package forms implements form lifecycle management: create with host
// bootstrap, owner-scoped reads and mutations with resolver fallback, the
// one-way stop transition, and the public read path.
package forms

import (
	"context"
	"log"
	"time"

	"Backend-EaseForm/src/apperrors"
	"Backend-EaseForm/src/models"
	"Backend-EaseForm/src/services/authz"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the forms storage contract. Owned* methods are scoped to the
// acting host; *Privileged methods may only be called after the resolver
// returned Authorized.
type Store interface {
	FindOwnedForm(ctx context.Context, hostID, id primitive.ObjectID) (*models.Form, error)
	ListOwnedForms(ctx context.Context, hostID primitive.ObjectID) ([]models.FormListItem, error)
	InsertForm(ctx context.Context, form *models.Form) error
	UpdateOwnedForm(ctx context.Context, hostID, id primitive.ObjectID, set bson.M) (*models.Form, error)
	DeleteOwnedForm(ctx context.Context, hostID, id primitive.ObjectID) (bool, error)
	FindForm(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	FindFormPrivileged(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
	UpdateFormPrivileged(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Form, error)
	DeleteFormPrivileged(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// Bootstrapper ensures the host profile exists before the first insert.
type Bootstrapper interface {
	Ensure(ctx context.Context, hostID primitive.ObjectID, email string) error
}

// ResponsePurger removes the responses of a deleted form.
type ResponsePurger interface {
	DeleteByForm(ctx context.Context, formID primitive.ObjectID) (int64, error)
}

// TaskQueue hands background work to the worker when one is running.
type TaskQueue interface {
	EnqueueResponsePurge(formID primitive.ObjectID) error
	EnqueueFormStoppedEmail(formID primitive.ObjectID) error
}

type Service struct {
	store     Store
	resolver  *authz.Resolver
	bootstrap Bootstrapper
	purger    ResponsePurger
	queue     TaskQueue // nil when Redis is not configured
}

func NewService(store Store, resolver *authz.Resolver, bootstrap Bootstrapper, purger ResponsePurger, queue TaskQueue) *Service {
	return &Service{
		store:     store,
		resolver:  resolver,
		bootstrap: bootstrap,
		purger:    purger,
		queue:     queue,
	}
}

// Create bootstraps the host profile, then inserts the form. Privacy flags
// are forced on and closed starts false no matter what the client sent.
func (s *Service) Create(ctx context.Context, hostID primitive.ObjectID, email string, req *models.FormCreate) (*models.Form, error) {
	if err := s.bootstrap.Ensure(ctx, hostID, email); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	form := &models.Form{
		HostID:      hostID,
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
		IsActive:    isActive,
		Closed:      false,
		// Anonymous collection and one-per-device dedup are not configurable.
		Anonymous:            true,
		OneResponsePerDevice: true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if form.Questions == nil {
		form.Questions = []models.Question{}
	}

	if err := s.store.InsertForm(ctx, form); err != nil {
		return nil, apperrors.Storage(err)
	}
	return form, nil
}

// List returns the host's forms, newest first.
func (s *Service) List(ctx context.Context, hostID primitive.ObjectID) ([]models.FormListItem, error) {
	items, err := s.store.ListOwnedForms(ctx, hostID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return items, nil
}

// Get fetches one owned form, falling back to the resolver when the scoped
// read returns nothing.
func (s *Service) Get(ctx context.Context, hostID, id primitive.ObjectID) (*models.Form, error) {
	form, err := s.store.FindOwnedForm(ctx, hostID, id)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if form != nil {
		return form, nil
	}

	decision, err := s.resolver.ResolveForm(ctx, id, hostID)
	if err != nil {
		return nil, err
	}
	if decision != authz.Authorized {
		return nil, decision.Err()
	}

	// Spurious scoped miss: the owner is the caller, retry privileged.
	form, err = s.store.FindFormPrivileged(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if form == nil {
		return nil, apperrors.ErrNotFound
	}
	return form, nil
}

// Update mutates an owned form. The privacy flags are re-forced on every
// update and closed is never part of the set document.
func (s *Service) Update(ctx context.Context, hostID, id primitive.ObjectID, req *models.FormUpdate) (*models.Form, error) {
	set := bson.M{
		"anonymous":            true,
		"oneResponsePerDevice": true,
		"updatedAt":            time.Now(),
	}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Questions != nil {
		set["questions"] = req.Questions
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}

	return s.applyOwned(ctx, hostID, id, set)
}

// Stop closes the form: closed=true, isActive=false. One-way and
// idempotent; stopping an already-closed form matches the same scoped filter
// and simply rewrites the same values.
func (s *Service) Stop(ctx context.Context, hostID, id primitive.ObjectID) (*models.Form, error) {
	set := bson.M{
		"closed":    true,
		"isActive":  false,
		"updatedAt": time.Now(),
	}
	form, err := s.applyOwned(ctx, hostID, id, set)
	if err != nil {
		return nil, err
	}

	// Best effort; the stop itself already succeeded.
	if s.queue != nil {
		if err := s.queue.EnqueueFormStoppedEmail(id); err != nil {
			log.Printf("[forms] stopped-email enqueue failed for form %s: %v", id.Hex(), err)
		}
	}
	return form, nil
}

// applyOwned runs the scoped update and, when it matches nothing, lets the
// resolver decide between not-found, forbidden, and a privileged retry.
func (s *Service) applyOwned(ctx context.Context, hostID, id primitive.ObjectID, set bson.M) (*models.Form, error) {
	form, err := s.store.UpdateOwnedForm(ctx, hostID, id, set)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if form != nil {
		return form, nil
	}

	decision, err := s.resolver.ResolveForm(ctx, id, hostID)
	if err != nil {
		return nil, err
	}
	if decision != authz.Authorized {
		return nil, decision.Err()
	}

	log.Printf("[forms] scoped update missed form %s owned by caller, retrying privileged", id.Hex())

	form, err = s.store.UpdateFormPrivileged(ctx, id, set)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if form == nil {
		return nil, apperrors.ErrNotFound
	}
	return form, nil
}

// Delete removes an owned form and purges its responses. The purge is
// handed to the background worker when one is available, otherwise done
// inline.
func (s *Service) Delete(ctx context.Context, hostID, id primitive.ObjectID) error {
	deleted, err := s.store.DeleteOwnedForm(ctx, hostID, id)
	if err != nil {
		return apperrors.Storage(err)
	}

	if !deleted {
		decision, err := s.resolver.ResolveForm(ctx, id, hostID)
		if err != nil {
			return err
		}
		if decision != authz.Authorized {
			return decision.Err()
		}
		deleted, err = s.store.DeleteFormPrivileged(ctx, id)
		if err != nil {
			return apperrors.Storage(err)
		}
		if !deleted {
			return apperrors.ErrNotFound
		}
	}

	if s.queue != nil {
		if err := s.queue.EnqueueResponsePurge(id); err == nil {
			return nil
		}
		log.Printf("[forms] purge enqueue failed for form %s, purging inline", id.Hex())
	}
	if _, err := s.purger.DeleteByForm(ctx, id); err != nil {
		// The form itself is gone; the orphan sweep will pick these up.
		log.Printf("[forms] inline response purge failed for form %s: %v", id.Hex(), err)
	}
	return nil
}

// GetPublic is the anonymous read path. Closed forms are still returned so
// respondents holding a link see a closed-form message; drafts leak nothing,
// not even their existence.
func (s *Service) GetPublic(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	form, err := s.store.FindForm(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if form == nil {
		return nil, apperrors.ErrNotFound
	}
	if form.AcceptanceState() == models.StateDraft {
		return nil, apperrors.ErrNotFound
	}
	return form, nil
}
