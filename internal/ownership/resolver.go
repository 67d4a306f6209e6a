// Package ownership maps a resource kind and id to the id of the user who owns it.
package ownership

import (
	"context"
	"fmt"

	"job-portal-backend/internal/domain"
)

// Lookup returns the owning user id of the record with the given id, or
// domain.ErrNotFound when the record does not exist.
type Lookup func(ctx context.Context, id int64) (int64, error)

// Store provides one lookup per resource kind.
type Store interface {
	UserOwner(ctx context.Context, id int64) (int64, error)
	ApplicantOwner(ctx context.Context, id int64) (int64, error)
	CompanyOwner(ctx context.Context, id int64) (int64, error)
	JobOwner(ctx context.Context, id int64) (int64, error)
	ExperienceOwner(ctx context.Context, id int64) (int64, error)
	ApplicationOwner(ctx context.Context, id int64) (int64, error)
}

type Resolver struct {
	lookups map[domain.ResourceKind]Lookup
}

func NewResolver(store Store) *Resolver {
	return &Resolver{lookups: map[domain.ResourceKind]Lookup{
		domain.ResourceUser:        store.UserOwner,
		domain.ResourceApplicant:   store.ApplicantOwner,
		domain.ResourceCompany:     store.CompanyOwner,
		domain.ResourceJob:         store.JobOwner,
		domain.ResourceExperience:  store.ExperienceOwner,
		domain.ResourceApplication: store.ApplicationOwner,
	}}
}

// Owner returns the owning user id for (kind, id).
func (r *Resolver) Owner(ctx context.Context, kind domain.ResourceKind, id int64) (int64, error) {
	lookup, ok := r.lookups[kind]
	if !ok {
		return 0, fmt.Errorf("ownership: no lookup for resource kind %s", kind)
	}
	return lookup(ctx, id)
}

// Supports reports whether kind has a registered lookup.
func (r *Resolver) Supports(kind domain.ResourceKind) bool {
	_, ok := r.lookups[kind]
	return ok
}
