// Package helpers provides test utility functions for lmskit.
//
// # WP_Error Assertions
//
// Assert that an operation produced an error result, and check its code:
//
//	_, err := f.Membership.CreateContext(ctx, fixtures.WithTitle(""), ...)
//	helpers.AssertIsWPError(t, err)
//	helpers.AssertWPErrorCodeEquals(t, "empty_content", err.(model.ErrorResult))
//
// Both stop the test on failure. In testify suites, embed WPErrorSuite
// and call the same assertions as methods:
//
//	type MembershipSuite struct {
//	    helpers.WPErrorSuite
//	}
//
//	func (s *MembershipSuite) TestRejectsEmpty() {
//	    s.AssertIsWPError(err)
//	}
//
// # Store Assertions
//
//	helpers.AssertPostExists(t, store, id)
//	helpers.AssertPostNotExists(t, store, "post:missing")
//	helpers.AssertPostType(t, store, id, model.PostTypeMembership)
package helpers
