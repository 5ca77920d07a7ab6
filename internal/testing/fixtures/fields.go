package fixtures

import (
	"fmt"

	"github.com/forgo/lmskit/internal/model"
)

// Field names understood by post factories
const (
	FieldStatus   = "status"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldExcerpt  = "excerpt"
	FieldPostType = "post_type"
	FieldName     = "name"
	FieldAuthor   = "author"
)

// Fields holds the field values used to create or update a post
type Fields map[string]string

// Override customizes a single fixture creation
type Override func(Fields)

// WithField sets any field by name
func WithField(name, value string) Override {
	return func(f Fields) { f[name] = value }
}

// WithTitle sets the post title
func WithTitle(title string) Override { return WithField(FieldTitle, title) }

// WithContent sets the post content
func WithContent(content string) Override { return WithField(FieldContent, content) }

// WithExcerpt sets the post excerpt
func WithExcerpt(excerpt string) Override { return WithField(FieldExcerpt, excerpt) }

// WithStatus sets the post status
func WithStatus(status model.PostStatus) Override { return WithField(FieldStatus, string(status)) }

// WithName sets the post slug
func WithName(name string) Override { return WithField(FieldName, name) }

// WithAuthor sets the post author
func WithAuthor(authorID string) Override { return WithField(FieldAuthor, authorID) }

func collect(overrides []Override) Fields {
	f := Fields{}
	for _, o := range overrides {
		o(f)
	}
	return f
}

// applyFields copies field values onto a post. Unknown names yield an
// invalid_field error result listing every offending field.
func applyFields(p *model.Post, fields Fields) error {
	var bad *model.WPError
	for name, value := range fields {
		switch name {
		case FieldStatus:
			p.Status = model.PostStatus(value)
		case FieldTitle:
			p.Title = value
		case FieldContent:
			p.Content = value
		case FieldExcerpt:
			p.Excerpt = value
		case FieldPostType:
			p.Type = model.PostType(value)
		case FieldName:
			p.Name = value
		case FieldAuthor:
			p.AuthorID = value
		default:
			if bad == nil {
				bad = model.NewWPError("", "")
			}
			bad.Add(model.ErrCodeInvalidField, fmt.Sprintf("Unknown post field %q.", name))
		}
	}
	if bad != nil {
		return bad
	}
	return nil
}
