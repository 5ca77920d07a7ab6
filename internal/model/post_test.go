package model

import "testing"

func TestValidatePost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		post     Post
		wantCode string
	}{
		{
			name:     "valid",
			post:     Post{Type: PostTypeMembership, Status: PostStatusPublish, Title: "Gold"},
			wantCode: "",
		},
		{
			name:     "empty content",
			post:     Post{Type: PostTypeMembership, Status: PostStatusPublish},
			wantCode: ErrCodeEmptyContent,
		},
		{
			name:     "missing type",
			post:     Post{Status: PostStatusDraft, Content: "body"},
			wantCode: ErrCodeInvalidPostType,
		},
		{
			name:     "type too long",
			post:     Post{Type: "a_post_type_that_is_too_long", Status: PostStatusDraft, Content: "body"},
			wantCode: ErrCodeInvalidPostType,
		},
		{
			name:     "unknown status",
			post:     Post{Type: PostTypePost, Status: "archived", Excerpt: "x"},
			wantCode: ErrCodeInvalidPostStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePost(&tt.post)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			wpErr, ok := err.(*WPError)
			if !ok {
				t.Fatalf("expected *WPError, got %T", err)
			}
			if wpErr.ErrorCode() != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, wpErr.ErrorCode())
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Membership title 1": "membership-title-1",
		"  Gold -- Tier!  ":  "gold-tier",
		"Already-slugged":    "already-slugged",
		"":                   "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAsMembership(t *testing.T) {
	t.Parallel()

	if AsMembership(nil) != nil {
		t.Error("expected nil for nil post")
	}
	if AsMembership(&Post{Type: PostTypeCourse}) != nil {
		t.Error("expected nil for non-membership post")
	}

	m := AsMembership(&Post{ID: "post:1", Type: PostTypeMembership, Title: "Gold"})
	if m == nil {
		t.Fatal("expected membership")
	}
	if m.ID != "post:1" || m.Title != "Gold" {
		t.Errorf("unexpected membership fields: %+v", m.Post)
	}
}
