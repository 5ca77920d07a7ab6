package repository

import (
	"context"

	"github.com/forgo/lmskit/internal/model"
)

// MembershipRepository resolves posts into memberships
type MembershipRepository struct {
	posts PostStore
}

// NewMembershipRepository creates a membership lookup over a post store
func NewMembershipRepository(posts PostStore) *MembershipRepository {
	return &MembershipRepository{posts: posts}
}

// GetByID returns the membership with the given ID.
// Returns nil when the post does not exist or is not a membership.
func (r *MembershipRepository) GetByID(ctx context.Context, id string) (*model.Membership, error) {
	post, err := r.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.AsMembership(post), nil
}

// List returns every membership in the store
func (r *MembershipRepository) List(ctx context.Context) ([]*model.Membership, error) {
	posts, err := r.posts.ListByType(ctx, model.PostTypeMembership)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Membership, 0, len(posts))
	for _, p := range posts {
		out = append(out, model.AsMembership(p))
	}
	return out, nil
}
