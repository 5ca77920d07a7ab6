package repository

import (
	"context"

	"github.com/forgo/lmskit/internal/model"
)

// PostStore is the entity store fixtures write through.
//
// Create assigns ID, CreatedOn and UpdatedOn on the passed post.
// GetByID returns (nil, nil) when no post has that ID.
// Update returns database.ErrNotFound for an unknown ID.
// Create and Update reject invalid posts with a *model.WPError.
type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id string) error
	ListByType(ctx context.Context, postType model.PostType) ([]*model.Post, error)
}

// prepareCreate validates a post and fills in derived fields
func prepareCreate(post *model.Post) error {
	if err := model.ValidatePost(post); err != nil {
		return err
	}
	if post.Name == "" {
		post.Name = model.Slugify(post.Title)
	}
	return nil
}
