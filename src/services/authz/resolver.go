// Package authz reconciles scoped storage results against a privileged
// owner lookup. The scoped channel cannot tell "form does not exist" from
// "form exists but is foreign-owned", and it occasionally misses rows a
// legitimate owner should see; the resolver turns that ambiguity into an
// explicit three-way decision.
package authz

import (
	"context"

	"Backend-EaseForm/src/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Decision is the outcome of an ownership check.
type Decision int

const (
	// Authorized means the principal owns the resource. When it follows an
	// empty scoped result, the scoped miss was spurious and the caller
	// should retry the operation on the privileged channel.
	Authorized Decision = iota
	// NotFound means the resource does not exist.
	NotFound
	// Forbidden means the resource exists but belongs to someone else. The
	// boundary reports it exactly like NotFound.
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Authorized:
		return "authorized"
	case NotFound:
		return "not_found"
	default:
		return "forbidden"
	}
}

// OwnerLookup is the single privileged capability the resolver holds: it can
// read the owner field of a form, nothing more.
type OwnerLookup interface {
	FormOwner(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, bool, error)
}

// Resolver decides what an empty scoped result means.
type Resolver struct {
	owners OwnerLookup
}

func NewResolver(owners OwnerLookup) *Resolver {
	return &Resolver{owners: owners}
}

// ResolveForm disambiguates an empty scoped result for form id on behalf of
// hostID. It never mutates anything; callers act on the decision.
func (r *Resolver) ResolveForm(ctx context.Context, id, hostID primitive.ObjectID) (Decision, error) {
	owner, found, err := r.owners.FormOwner(ctx, id)
	if err != nil {
		return NotFound, apperrors.Storage(err)
	}
	if !found {
		return NotFound, nil
	}
	if owner == hostID {
		return Authorized, nil
	}
	return Forbidden, nil
}

// Err maps a non-authorized decision to its sentinel error. Forbidden keeps
// its own sentinel internally; the boundary downgrades it to a 404.
func (d Decision) Err() error {
	switch d {
	case NotFound:
		return apperrors.ErrNotFound
	case Forbidden:
		return apperrors.ErrForbidden
	default:
		return nil
	}
}
