package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/lmskit/internal/model"
	"github.com/forgo/lmskit/internal/testing/helpers"
	"github.com/forgo/lmskit/internal/testing/testdb"
)

// =============================================================================
// Defaults
// =============================================================================

func TestMembershipDefaults(t *testing.T) {
	f := NewMembershipFactory(testdb.New(t).Posts)
	defs := f.Defaults()

	assert.Equal(t, "llms_membership", defs[FieldPostType].Next())
	assert.Equal(t, "publish", defs[FieldStatus].Next())
	assert.Equal(t, "Membership title 1", defs[FieldTitle].Next())
	assert.Equal(t, "Membership content 1", defs[FieldContent].Next())
	assert.Equal(t, "Membership excerpt 1", defs[FieldExcerpt].Next())
	assert.Equal(t, model.PostTypeMembership, f.PostType())
}

func TestMembershipDefaults_FreshPerCall(t *testing.T) {
	a := MembershipDefaults(1)
	b := MembershipDefaults(1)
	a[FieldTitle].Next()
	assert.Equal(t, "Membership title 1", b[FieldTitle].Next())
}

// =============================================================================
// Create
// =============================================================================

func TestMembershipFactory_Create(t *testing.T) {
	tdb := testdb.New(t)
	f := NewMembershipFactory(tdb.Posts)

	m := f.CreateAndGet(t)
	require.NotNil(t, m)
	assert.Equal(t, model.PostTypeMembership, m.Type)
	assert.Equal(t, model.PostStatusPublish, m.Status)
	assert.Equal(t, "Membership title 1", m.Title)
	assert.Equal(t, "Membership content 1", m.Content)
	assert.Equal(t, "Membership excerpt 1", m.Excerpt)
	assert.Equal(t, "membership-title-1", m.Name)
	assert.False(t, m.CreatedOn.IsZero())

	helpers.AssertPostType(t, tdb.Posts, m.ID, model.PostTypeMembership)
}

func TestMembershipFactory_DistinctTitles(t *testing.T) {
	f := NewMembershipFactory(testdb.New(t).Posts)

	first := f.CreateAndGet(t)
	second := f.CreateAndGet(t)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Title, second.Title)
	assert.Equal(t, "Membership title 2", second.Title)
}

func TestMembershipFactory_Overrides(t *testing.T) {
	f := NewMembershipFactory(testdb.New(t).Posts)

	m := f.CreateAndGet(t, WithTitle("Gold"), WithStatus(model.PostStatusDraft))
	assert.Equal(t, "Gold", m.Title)
	assert.Equal(t, model.PostStatusDraft, m.Status)
	assert.Equal(t, "Membership content 1", m.Content)

	// The overridden title did not consume a sequence value
	next := f.CreateAndGet(t)
	assert.Equal(t, "Membership title 1", next.Title)
	assert.Equal(t, "Membership content 2", next.Content)
}

func TestMembershipFactory_OverridesDoNotLeak(t *testing.T) {
	f := NewMembershipFactory(testdb.New(t).Posts)

	f.Create(t, WithStatus(model.PostStatusPrivate))
	m := f.CreateAndGet(t)
	assert.Equal(t, model.PostStatusPublish, m.Status)
	assert.Equal(t, "publish", f.Defaults()[FieldStatus].Next())
}

func TestMembershipFactory_PostTypeForced(t *testing.T) {
	f := NewMembershipFactory(testdb.New(t).Posts)

	m := f.CreateAndGet(t, WithField(FieldPostType, "course"))
	assert.Equal(t, model.PostTypeMembership, m.Type)
}

func TestMembershipFactory_CreateMany(t *testing.T) {
	tdb := testdb.New(t)
	f := NewMembershipFactory(tdb.Posts)

	ids := f.CreateMany(t, 3)
	require.Len(t, ids, 3)

	seen := map[string]bool{}
	for _, id := range ids {
		m, err := f.GetObjectByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, m)
		seen[m.Title] = true
	}
	assert.Len(t, seen, 3)
}

// =============================================================================
// GetObjectByID
// =============================================================================

func TestMembershipFactory_GetObjectByID(t *testing.T) {
	tdb := testdb.New(t)
	ctx := context.Background()
	memberships := NewMembershipFactory(tdb.Posts)
	courses := NewPostFactory(tdb.Posts, model.PostTypeCourse, PostDefaults(1))

	id := memberships.Create(t)
	courseID := courses.Create(t)

	t.Run("created membership", func(t *testing.T) {
		m, err := memberships.GetObjectByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, id, m.ID)
	})

	t.Run("never created", func(t *testing.T) {
		m, err := memberships.GetObjectByID(ctx, "post:does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("other post type", func(t *testing.T) {
		m, err := memberships.GetObjectByID(ctx, courseID)
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("not a post id", func(t *testing.T) {
		m, err := memberships.GetObjectByID(ctx, "user:123")
		require.NoError(t, err)
		assert.Nil(t, m)
	})
}

// =============================================================================
// Error results
// =============================================================================

func TestMembershipFactory_EmptyContent(t *testing.T) {
	tdb := testdb.New(t)
	f := NewMembershipFactory(tdb.Posts)

	_, err := f.CreateContext(context.Background(), WithTitle(""), WithContent(""), WithExcerpt(""))
	helpers.AssertIsWPError(t, err)

	result, ok := err.(model.ErrorResult)
	require.True(t, ok)
	helpers.AssertWPErrorCodeEquals(t, model.ErrCodeEmptyContent, result)

	posts, err := tdb.Posts.ListByType(context.Background(), model.PostTypeMembership)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestMembershipFactory_PartialContentAccepted(t *testing.T) {
	f := NewMembershipFactory(testdb.New(t).Posts)

	m := f.CreateAndGet(t, WithTitle(""), WithContent(""))
	assert.Empty(t, m.Title)
	assert.Equal(t, "Membership excerpt 1", m.Excerpt)
}

func TestMembershipFactory_InvalidStatus(t *testing.T) {
	f := NewMembershipFactory(testdb.New(t).Posts)

	_, err := f.CreateContext(context.Background(), WithStatus("archived"))
	helpers.AssertIsWPError(t, err)
	helpers.AssertWPErrorCodeEquals(t, model.ErrCodeInvalidPostStatus, err.(model.ErrorResult))
}

func TestMembershipFactory_UnknownField(t *testing.T) {
	f := NewMembershipFactory(testdb.New(t).Posts)

	_, err := f.CreateContext(context.Background(), WithField("colour", "gold"))
	helpers.AssertIsWPError(t, err)

	wpErr, ok := err.(*model.WPError)
	require.True(t, ok)
	assert.Equal(t, model.ErrCodeInvalidField, wpErr.ErrorCode())
	assert.Contains(t, wpErr.ErrorMessage(""), "colour")
}

// =============================================================================
// Backends
// =============================================================================

func TestMembershipFactory_SQLiteStore(t *testing.T) {
	tdb := testdb.NewSQLite(t)
	f := NewMembershipFactory(tdb.Posts)

	ids := f.CreateMany(t, 2)
	m, err := f.GetObjectByID(context.Background(), ids[1])
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Membership title 2", m.Title)

	_, err = f.CreateContext(context.Background(), WithTitle(""), WithContent(""), WithExcerpt(""))
	helpers.AssertWPErrorCodeEquals(t, model.ErrCodeEmptyContent, err.(model.ErrorResult))
}
