package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/givehub/backend/internal/domain"
)

// PrincipalResolver looks up a principal by the id embedded in a token.
// A nil principal with nil error means "not mine"; the guard tries the
// next resolver in order.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, id primitive.ObjectID) (*domain.Principal, error)
}

type donorPrincipals struct{ s *Store }

func (r donorPrincipals) ResolvePrincipal(ctx context.Context, id primitive.ObjectID) (*domain.Principal, error) {
	d, err := r.s.FindDonorByID(ctx, id)
	if err != nil || d == nil {
		return nil, err
	}
	return &domain.Principal{ID: d.ID, Role: d.Role, Name: d.Name, Email: d.Email}, nil
}

type adminPrincipals struct{ s *Store }

func (r adminPrincipals) ResolvePrincipal(ctx context.Context, id primitive.ObjectID) (*domain.Principal, error) {
	a, err := r.s.FindAdminByID(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}
	return &domain.Principal{ID: a.ID, Role: a.Role, Name: a.Name, Email: a.Email}, nil
}

// PrincipalResolvers returns the ordered lookup chain: donors first,
// then admins.
func (s *Store) PrincipalResolvers() []PrincipalResolver {
	return []PrincipalResolver{donorPrincipals{s}, adminPrincipals{s}}
}
