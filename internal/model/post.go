package model

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// PostType identifies the kind of content a post holds
type PostType string

const (
	PostTypePost       PostType = "post"
	PostTypePage       PostType = "page"
	PostTypeCourse     PostType = "course"
	PostTypeMembership PostType = "llms_membership"
)

// PostStatus is the publication state of a post
type PostStatus string

const (
	PostStatusPublish PostStatus = "publish"
	PostStatusDraft   PostStatus = "draft"
	PostStatusPending PostStatus = "pending"
	PostStatusPrivate PostStatus = "private"
	PostStatusFuture  PostStatus = "future"
	PostStatusTrash   PostStatus = "trash"
)

// Valid reports whether s is a known post status
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusPublish, PostStatusDraft, PostStatusPending,
		PostStatusPrivate, PostStatusFuture, PostStatusTrash:
		return true
	}
	return false
}

// Error codes returned by ValidatePost
const (
	ErrCodeEmptyContent      = "empty_content"
	ErrCodeInvalidPostType   = "invalid_post_type"
	ErrCodeInvalidPostStatus = "invalid_post_status"
	ErrCodeInvalidField      = "invalid_field"
)

// MaxPostTypeLength matches the host CMS column width for post types
const MaxPostTypeLength = 20

// Post is a generic content entity
type Post struct {
	ID        string     `json:"id"`
	Type      PostType   `json:"post_type"`
	Status    PostStatus `json:"status"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Excerpt   string     `json:"excerpt"`
	Name      string     `json:"name,omitempty"`
	AuthorID  string     `json:"author_id,omitempty"`
	CreatedOn time.Time  `json:"created_on"`
	UpdatedOn time.Time  `json:"updated_on"`
}

// IsPublished reports whether the post is publicly visible
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublish
}

// ValidatePost checks a post before it is written to a store.
// It returns nil or a *WPError carrying the first failing code.
func ValidatePost(p *Post) error {
	if p.Title == "" && p.Content == "" && p.Excerpt == "" {
		return NewWPError(ErrCodeEmptyContent, "Content, title, and excerpt are empty.")
	}
	if p.Type == "" || len(p.Type) > MaxPostTypeLength {
		return NewWPError(ErrCodeInvalidPostType, fmt.Sprintf("Invalid post type %q.", p.Type))
	}
	if !p.Status.Valid() {
		return NewWPError(ErrCodeInvalidPostStatus, fmt.Sprintf("Invalid post status %q.", p.Status))
	}
	return nil
}

// Slugify derives a post name from a title: lowercase, alphanumerics
// kept, every other run of characters collapsed to a single dash.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
