// Package model defines domain entities and data structures for lmskit.
//
// The model package holds the post-shaped content entities that fixtures
// create and the error result type operations under test return.
//
// # Domain Entities
//
//   - Post: generic content entity stored by a PostStore
//   - Membership: a Post of type llms_membership
//
// # JSON Serialization
//
// All models use json struct tags, which the Badger backend relies on:
//
//	type Post struct {
//	    ID    string   `json:"id"`
//	    Type  PostType `json:"post_type"`
//	    Title string   `json:"title"`
//	}
//
// # Error Results
//
// WPError mirrors the host CMS error object: an ordered set of codes, each
// carrying messages and optional data. Anything exposing IsError and
// ErrorCode satisfies ErrorResult:
//
//	err := model.NewWPError("empty_content", "Content, title, and excerpt are empty.")
//	if model.IsWPError(err) {
//	    log.Println(err.ErrorCode())
//	}
package model
