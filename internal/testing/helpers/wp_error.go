package helpers

import (
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/forgo/lmskit/internal/model"
)

type tHelper interface {
	Helper()
}

// AssertIsWPError fails the test immediately unless value is an error result
func AssertIsWPError(t require.TestingT, value interface{}, msgAndArgs ...interface{}) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	require.True(t, model.IsWPError(value), msgAndArgs...)
}

// AssertWPErrorCodeEquals fails the test immediately unless value's primary
// error code equals expected. value is not checked for being an error
// result first; a nil value panics.
func AssertWPErrorCodeEquals(t require.TestingT, expected string, value model.ErrorResult, msgAndArgs ...interface{}) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	require.Equal(t, expected, value.ErrorCode(), msgAndArgs...)
}

// WPErrorSuite is a testify suite with the WP_Error assertions mixed in.
// Embed it in place of suite.Suite:
//
//	type MembershipSuite struct {
//	    helpers.WPErrorSuite
//	}
type WPErrorSuite struct {
	suite.Suite
}

// AssertIsWPError asserts that value is an error result
func (s *WPErrorSuite) AssertIsWPError(value interface{}, msgAndArgs ...interface{}) {
	s.T().Helper()
	AssertIsWPError(s.T(), value, msgAndArgs...)
}

// AssertWPErrorCodeEquals asserts that value's primary error code is expected
func (s *WPErrorSuite) AssertWPErrorCodeEquals(expected string, value model.ErrorResult, msgAndArgs ...interface{}) {
	s.T().Helper()
	AssertWPErrorCodeEquals(s.T(), expected, value, msgAndArgs...)
}
