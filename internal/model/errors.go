package model

import (
	"errors"
	"strings"
)

// ErrorResult is anything that can report itself as an error result and
// expose a machine-readable code
type ErrorResult interface {
	IsError() bool
	ErrorCode() string
}

// WPError is an error result holding one or more codes.
// Each code carries a list of messages and optionally one data value.
// Codes are kept in insertion order; the first one is the primary code.
type WPError struct {
	codes    []string
	messages map[string][]string
	data     map[string]interface{}
}

// NewWPError creates an error result. An empty code yields an error result
// with no codes, which is still an error result.
func NewWPError(code, message string) *WPError {
	e := &WPError{
		messages: make(map[string][]string),
		data:     make(map[string]interface{}),
	}
	if code != "" {
		e.Add(code, message)
	}
	return e
}

// Add appends a message under code
func (e *WPError) Add(code, message string) {
	if e.messages == nil {
		e.messages = make(map[string][]string)
	}
	if _, ok := e.messages[code]; !ok {
		e.codes = append(e.codes, code)
	}
	e.messages[code] = append(e.messages[code], message)
}

// AddData attaches data to code, replacing any previous value.
// An empty code targets the primary code.
func (e *WPError) AddData(code string, data interface{}) {
	if code == "" {
		code = e.ErrorCode()
	}
	if e.data == nil {
		e.data = make(map[string]interface{})
	}
	e.data[code] = data
}

// Remove drops every message and the data stored under code
func (e *WPError) Remove(code string) {
	if _, ok := e.messages[code]; !ok {
		return
	}
	delete(e.messages, code)
	delete(e.data, code)
	for i, c := range e.codes {
		if c == code {
			e.codes = append(e.codes[:i], e.codes[i+1:]...)
			break
		}
	}
}

// IsError reports true for any non-nil WPError
func (e *WPError) IsError() bool {
	return e != nil
}

// ErrorCode returns the primary code, or "" if there are none
func (e *WPError) ErrorCode() string {
	if len(e.codes) == 0 {
		return ""
	}
	return e.codes[0]
}

// ErrorCodes returns all codes in insertion order
func (e *WPError) ErrorCodes() []string {
	out := make([]string, len(e.codes))
	copy(out, e.codes)
	return out
}

// ErrorMessage returns the first message for code.
// An empty code targets the primary code.
func (e *WPError) ErrorMessage(code string) string {
	if code == "" {
		code = e.ErrorCode()
	}
	msgs := e.messages[code]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// ErrorMessages returns the messages for code, or every message across all
// codes when code is empty
func (e *WPError) ErrorMessages(code string) []string {
	if code != "" {
		out := make([]string, len(e.messages[code]))
		copy(out, e.messages[code])
		return out
	}
	var out []string
	for _, c := range e.codes {
		out = append(out, e.messages[c]...)
	}
	return out
}

// ErrorData returns the data stored for code.
// An empty code targets the primary code.
func (e *WPError) ErrorData(code string) interface{} {
	if code == "" {
		code = e.ErrorCode()
	}
	return e.data[code]
}

// HasErrors reports whether any code has been added
func (e *WPError) HasErrors() bool {
	return len(e.codes) > 0
}

// Error implements the error interface
func (e *WPError) Error() string {
	if !e.HasErrors() {
		return "wp_error"
	}
	parts := make([]string, 0, len(e.codes))
	for _, c := range e.codes {
		parts = append(parts, c+": "+e.ErrorMessage(c))
	}
	return strings.Join(parts, "; ")
}

// IsWPError reports whether v is an error result. Wrapped errors are
// unwrapped, so an ErrorResult returned through fmt.Errorf("%w") counts.
func IsWPError(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case ErrorResult:
		return x.IsError()
	case error:
		var r ErrorResult
		if errors.As(x, &r) {
			return r.IsError()
		}
	}
	return false
}
