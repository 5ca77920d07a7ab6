package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/forgo/lmskit/internal/database"
	"github.com/forgo/lmskit/internal/model"
)

// BadgerPostRepository stores posts as JSON values in an embedded Badger database.
// Keys are "post/<id>"; IDs look like SurrealDB record IDs ("post:<uuid>").
type BadgerPostRepository struct {
	db  *badger.DB
	now func() time.Time
}

// NewBadgerPostRepository creates a post repository over an open Badger database
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

var postKeyPrefix = []byte(postTable + "/")

func postKey(id string) []byte {
	return append(append([]byte{}, postKeyPrefix...), id...)
}

// Create creates a new post
func (r *BadgerPostRepository) Create(ctx context.Context, post *model.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := prepareCreate(post); err != nil {
		return err
	}

	now := r.now()
	stored := *post
	stored.ID = postTable + ":" + uuid.NewString()
	stored.CreatedOn = now
	stored.UpdatedOn = now

	if err := r.put(&stored); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	*post = stored
	return nil
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !isPostID(id) {
		return nil, nil
	}

	var post *model.Post
	err := r.db.View(func(txn *badger.Txn) error {
		p, err := getPost(txn, id)
		post = p
		return err
	})
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Update overwrites the mutable fields of an existing post
func (r *BadgerPostRepository) Update(ctx context.Context, post *model.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := model.ValidatePost(post); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		existing, err := getPost(txn, post.ID)
		if err != nil {
			return err
		}
		post.CreatedOn = existing.CreatedOn
		post.UpdatedOn = r.now()

		value, err := json.Marshal(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), value)
	})
}

// Delete removes a post. Deleting an unknown post is a no-op.
func (r *BadgerPostRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(postKey(id))
	})
}

// ListByType returns every post of the given type, oldest first
func (r *BadgerPostRepository) ListByType(ctx context.Context, postType model.PostType) ([]*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var posts []*model.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = postKeyPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var p model.Post
			if err := it.Item().Value(func(val []byte) error {
				return json.NewDecoder(bytes.NewReader(val)).Decode(&p)
			}); err != nil {
				return err
			}
			if p.Type == postType {
				posts = append(posts, &p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedOn.Before(posts[j].CreatedOn)
	})
	return posts, nil
}

func (r *BadgerPostRepository) put(post *model.Post) error {
	value, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), value)
	})
}

func getPost(txn *badger.Txn, id string) (*model.Post, error) {
	item, err := txn.Get(postKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var post model.Post
	if err := json.Unmarshal(value, &post); err != nil {
		return nil, fmt.Errorf("decode post %s: %w", id, err)
	}
	return &post, nil
}
