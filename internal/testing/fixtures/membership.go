package fixtures

import (
	"context"
	"testing"

	"github.com/forgo/lmskit/internal/model"
	"github.com/forgo/lmskit/internal/repository"
)

// MembershipDefaults returns the default definitions for memberships.
// Every call builds fresh sequences starting at start.
func MembershipDefaults(start int) Definitions {
	return Definitions{
		FieldStatus:   Static(model.PostStatusPublish),
		FieldTitle:    MustSequence("Membership title %s", start),
		FieldContent:  MustSequence("Membership content %s", start),
		FieldExcerpt:  MustSequence("Membership excerpt %s", start),
		FieldPostType: Static(model.PostTypeMembership),
	}
}

// MembershipFactory creates llms_membership posts
type MembershipFactory struct {
	*PostFactory
	memberships *repository.MembershipRepository
}

// NewMembershipFactory creates a membership factory over store.
// Its defaults are built once here and owned by the factory.
func NewMembershipFactory(store repository.PostStore, opts ...FactoryOption) *MembershipFactory {
	cfg := newFactoryConfig(opts)
	return &MembershipFactory{
		PostFactory: NewPostFactory(store, model.PostTypeMembership, MembershipDefaults(cfg.sequenceStart), opts...),
		memberships: repository.NewMembershipRepository(store),
	}
}

// GetObjectByID returns the membership with the given ID.
// Returns nil if the ID is unknown or belongs to a post of another type.
func (f *MembershipFactory) GetObjectByID(ctx context.Context, id string) (*model.Membership, error) {
	return f.memberships.GetByID(ctx, id)
}

// CreateAndGet creates a membership and reads it back
func (f *MembershipFactory) CreateAndGet(t testing.TB, overrides ...Override) *model.Membership {
	t.Helper()

	id := f.Create(t, overrides...)

	ctx, cancel := context.WithTimeout(t.Context(), f.timeout)
	defer cancel()

	m, err := f.GetObjectByID(ctx, id)
	if err != nil {
		t.Fatalf("fixtures: failed to load membership %s: %v", id, err)
	}
	if m == nil {
		t.Fatalf("fixtures: membership %s vanished after create", id)
	}
	return m
}
