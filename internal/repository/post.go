package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/lmskit/internal/database"
	"github.com/forgo/lmskit/internal/model"
)

// PostRepository stores posts in SurrealDB
type PostRepository struct {
	db database.Database
}

// NewPostRepository creates a new post repository
func NewPostRepository(db database.Database) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	if err := prepareCreate(post); err != nil {
		return err
	}

	query := `
		CREATE post CONTENT {
			post_type: $post_type,
			status: $status,
			title: $title,
			content: $content,
			excerpt: $excerpt,
			name: $name,
			author_id: $author_id,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	result, err := r.db.Query(ctx, query, postVars(post))
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	data, ok := firstRecord(result)
	if !ok {
		return errors.New("failed to create post: no record returned")
	}
	created := parsePost(data)
	post.ID = created.ID
	post.CreatedOn = created.CreatedOn
	post.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	if !isPostID(id) {
		return nil, nil
	}

	// Direct record access - more efficient than WHERE id =
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected post result type %T", result)
	}
	return parsePost(data), nil
}

// Update overwrites the mutable fields of an existing post
func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	if err := model.ValidatePost(post); err != nil {
		return err
	}
	existing, err := r.GetByID(ctx, post.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return database.ErrNotFound
	}

	query := `
		UPDATE type::record($id) SET
			post_type = $post_type,
			status = $status,
			title = $title,
			content = $content,
			excerpt = $excerpt,
			name = $name,
			author_id = $author_id,
			updated_on = time::now()
	`
	vars := postVars(post)
	vars["id"] = post.ID

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if data, ok := firstRecord(result); ok {
		post.UpdatedOn = parseTime(data["updated_on"])
	}
	post.CreatedOn = existing.CreatedOn
	return nil
}

// Delete removes a post
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	if !isPostID(id) {
		return nil
	}
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}

// ListByType returns every post of the given type, oldest first
func (r *PostRepository) ListByType(ctx context.Context, postType model.PostType) ([]*model.Post, error) {
	query := `SELECT * FROM post WHERE post_type = $post_type ORDER BY created_on ASC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"post_type": string(postType)})
	if err != nil {
		return nil, err
	}

	rows := allRecords(result)
	posts := make([]*model.Post, 0, len(rows))
	for _, data := range rows {
		posts = append(posts, parsePost(data))
	}
	return posts, nil
}

func postVars(post *model.Post) map[string]interface{} {
	return map[string]interface{}{
		"post_type": string(post.Type),
		"status":    string(post.Status),
		"title":     post.Title,
		"content":   post.Content,
		"excerpt":   post.Excerpt,
		"name":      post.Name,
		"author_id": post.AuthorID,
	}
}

func parsePost(data map[string]interface{}) *model.Post {
	return &model.Post{
		ID:        extractRecordID(data["id"]),
		Type:      model.PostType(getString(data, "post_type")),
		Status:    model.PostStatus(getString(data, "status")),
		Title:     getString(data, "title"),
		Content:   getString(data, "content"),
		Excerpt:   getString(data, "excerpt"),
		Name:      getString(data, "name"),
		AuthorID:  getString(data, "author_id"),
		CreatedOn: parseTime(data["created_on"]),
		UpdatedOn: parseTime(data["updated_on"]),
	}
}
