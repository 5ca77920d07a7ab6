package model

// Membership is an LMS membership: a post of type llms_membership
type Membership struct {
	*Post
}

// AsMembership wraps p as a Membership.
// Returns nil if p is nil or is not a membership post.
func AsMembership(p *Post) *Membership {
	if p == nil || p.Type != PostTypeMembership {
		return nil
	}
	return &Membership{Post: p}
}
