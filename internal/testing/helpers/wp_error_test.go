package helpers

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/forgo/lmskit/internal/model"
)

// recordingT captures failures instead of stopping the test
type recordingT struct {
	messages []string
	failed   bool
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failed = true
}

func (r *recordingT) output() string {
	return strings.Join(r.messages, "\n")
}

// =============================================================================
// AssertIsWPError
// =============================================================================

func TestAssertIsWPError_Passes(t *testing.T) {
	t.Parallel()

	cases := map[string]interface{}{
		"error result":   model.NewWPError("empty_content", "Content, title, and excerpt are empty."),
		"empty error":    model.NewWPError("", ""),
		"wrapped result": fmt.Errorf("create: %w", model.NewWPError("invalid_field", "bad")),
		"as plain error": error(model.NewWPError("x", "y")),
		"as result":      model.ErrorResult(model.NewWPError("x", "y")),
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			rt := &recordingT{}
			AssertIsWPError(rt, value)
			assert.False(t, rt.failed, rt.output())
		})
	}
}

func TestAssertIsWPError_Fails(t *testing.T) {
	t.Parallel()

	var typedNil *model.WPError
	cases := map[string]interface{}{
		"plain string": "plain string",
		"nil":          nil,
		"typed nil":    typedNil,
		"plain error":  errors.New("boom"),
		"integer":      42,
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			rt := &recordingT{}
			AssertIsWPError(rt, value)
			assert.True(t, rt.failed)
			assert.NotEmpty(t, rt.messages)
		})
	}
}

func TestAssertIsWPError_IncludesMessage(t *testing.T) {
	t.Parallel()

	rt := &recordingT{}
	AssertIsWPError(rt, "plain string", "creating %s", "membership")

	require.True(t, rt.failed)
	assert.Contains(t, rt.output(), "creating membership")
}

// =============================================================================
// AssertWPErrorCodeEquals
// =============================================================================

func TestAssertWPErrorCodeEquals_Passes(t *testing.T) {
	t.Parallel()

	err := model.NewWPError("empty_content", "Content, title, and excerpt are empty.")
	err.Add("invalid_field", "second")

	rt := &recordingT{}
	AssertWPErrorCodeEquals(rt, "empty_content", err)
	assert.False(t, rt.failed, rt.output())
}

func TestAssertWPErrorCodeEquals_EmptyCode(t *testing.T) {
	t.Parallel()

	rt := &recordingT{}
	AssertWPErrorCodeEquals(rt, "", model.NewWPError("", ""))
	assert.False(t, rt.failed, rt.output())
}

func TestAssertWPErrorCodeEquals_Mismatch(t *testing.T) {
	t.Parallel()

	rt := &recordingT{}
	AssertWPErrorCodeEquals(rt, "empty_content", model.NewWPError("invalid_field", "bad"))

	require.True(t, rt.failed)
	assert.Contains(t, rt.output(), "empty_content")
	assert.Contains(t, rt.output(), "invalid_field")
}

func TestAssertWPErrorCodeEquals_SecondaryCodeIgnored(t *testing.T) {
	t.Parallel()

	err := model.NewWPError("invalid_post_type", "bad type")
	err.Add("empty_content", "empty")

	rt := &recordingT{}
	AssertWPErrorCodeEquals(rt, "empty_content", err)
	assert.True(t, rt.failed)
}

func TestAssertWPErrorCodeEquals_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		AssertWPErrorCodeEquals(&recordingT{}, "empty_content", nil)
	})
}

// =============================================================================
// WPErrorSuite
// =============================================================================

type wpErrorSuiteTest struct {
	WPErrorSuite
}

func (s *wpErrorSuiteTest) TestAssertions() {
	err := model.NewWPError("empty_content", "Content, title, and excerpt are empty.")
	s.AssertIsWPError(err)
	s.AssertWPErrorCodeEquals("empty_content", err)
}

func (s *wpErrorSuiteTest) TestWrappedError() {
	var wrapped error = fmt.Errorf("seed: %w", model.NewWPError("invalid_field", "bad"))
	s.AssertIsWPError(wrapped)

	var result model.ErrorResult
	s.Require().True(errors.As(wrapped, &result))
	s.AssertWPErrorCodeEquals("invalid_field", result)
}

func TestWPErrorSuite(t *testing.T) {
	suite.Run(t, new(wpErrorSuiteTest))
}
