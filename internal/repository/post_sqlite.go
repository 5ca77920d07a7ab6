package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/forgo/lmskit/internal/database"
	"github.com/forgo/lmskit/internal/model"
)

// SQLiteSchema creates the posts table. Pass it to database.OpenSQLite.
var SQLiteSchema = []string{
	`CREATE TABLE IF NOT EXISTS posts (
		id TEXT NOT NULL PRIMARY KEY,
		post_type TEXT NOT NULL,
		status TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		excerpt TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		author_id TEXT NOT NULL DEFAULT '',
		created_on INTEGER NOT NULL,
		updated_on INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS posts_post_type ON posts (post_type, created_on)`,
}

// sqlPost is the row shape of the posts table. Times are unix nanoseconds.
type sqlPost struct {
	ID        string `db:"id"`
	Type      string `db:"post_type"`
	Status    string `db:"status"`
	Title     string `db:"title"`
	Content   string `db:"content"`
	Excerpt   string `db:"excerpt"`
	Name      string `db:"name"`
	AuthorID  string `db:"author_id"`
	CreatedOn int64  `db:"created_on"`
	UpdatedOn int64  `db:"updated_on"`
}

func toRow(p *model.Post) sqlPost {
	return sqlPost{
		ID:        p.ID,
		Type:      string(p.Type),
		Status:    string(p.Status),
		Title:     p.Title,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		Name:      p.Name,
		AuthorID:  p.AuthorID,
		CreatedOn: p.CreatedOn.UnixNano(),
		UpdatedOn: p.UpdatedOn.UnixNano(),
	}
}

func (r sqlPost) post() *model.Post {
	return &model.Post{
		ID:        r.ID,
		Type:      model.PostType(r.Type),
		Status:    model.PostStatus(r.Status),
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Name:      r.Name,
		AuthorID:  r.AuthorID,
		CreatedOn: time.Unix(0, r.CreatedOn).UTC(),
		UpdatedOn: time.Unix(0, r.UpdatedOn).UTC(),
	}
}

// SQLitePostRepository stores posts in a SQLite table through sqlx
type SQLitePostRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLitePostRepository creates a post repository over a database opened
// with SQLiteSchema
func NewSQLitePostRepository(db *sqlx.DB) *SQLitePostRepository {
	return &SQLitePostRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create creates a new post
func (r *SQLitePostRepository) Create(ctx context.Context, post *model.Post) error {
	if err := prepareCreate(post); err != nil {
		return err
	}

	now := r.now()
	stored := *post
	stored.ID = postTable + ":" + uuid.NewString()
	stored.CreatedOn = now
	stored.UpdatedOn = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO posts (id, post_type, status, title, content, excerpt, name, author_id, created_on, updated_on)
		VALUES (:id, :post_type, :status, :title, :content, :excerpt, :name, :author_id, :created_on, :updated_on)`,
		toRow(&stored))
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	*post = stored
	return nil
}

// GetByID retrieves a post by ID
func (r *SQLitePostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	if !isPostID(id) {
		return nil, nil
	}

	var row sqlPost
	err := r.db.GetContext(ctx, &row, `SELECT * FROM posts WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", database.ErrQuery, err)
	}
	return row.post(), nil
}

// Update replaces every field of an existing post except its creation time
func (r *SQLitePostRepository) Update(ctx context.Context, post *model.Post) error {
	if err := model.ValidatePost(post); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", database.ErrQuery, err)
	}
	defer func() { _ = tx.Rollback() }()

	var created int64
	err = tx.GetContext(ctx, &created, `SELECT created_on FROM posts WHERE id = ?`, post.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return database.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", database.ErrQuery, err)
	}

	next := *post
	next.CreatedOn = time.Unix(0, created).UTC()
	next.UpdatedOn = r.now()

	if _, err := tx.NamedExecContext(ctx, `
		UPDATE posts SET
			post_type = :post_type,
			status = :status,
			title = :title,
			content = :content,
			excerpt = :excerpt,
			name = :name,
			author_id = :author_id,
			updated_on = :updated_on
		WHERE id = :id`, toRow(&next)); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", database.ErrQuery, err)
	}
	*post = next
	return nil
}

// Delete removes a post. Deleting an unknown post is a no-op.
func (r *SQLitePostRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// ListByType returns every post of the given type, oldest first
func (r *SQLitePostRepository) ListByType(ctx context.Context, postType model.PostType) ([]*model.Post, error) {
	var rows []sqlPost
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM posts WHERE post_type = ? ORDER BY created_on ASC, rowid ASC`, string(postType))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", database.ErrQuery, err)
	}

	posts := make([]*model.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.post())
	}
	return posts, nil
}
