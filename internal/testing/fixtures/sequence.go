package fixtures

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ErrInvalidTemplate is returned when a sequence template does not hold
// exactly one %s slot
var ErrInvalidTemplate = errors.New("fixtures: sequence template must contain exactly one %s")

// Generator produces a field value each time a fixture is generated
type Generator interface {
	Next() string
}

// Resetter is implemented by generators that carry state
type Resetter interface {
	Reset()
}

// Static is a generator that always yields the same value
type Static string

// Next returns the static value
func (s Static) Next() string { return string(s) }

// Sequence yields template % n with n increasing by one on every call.
// The counter belongs to the instance; separate sequences never share it.
type Sequence struct {
	mu       sync.Mutex
	template string
	start    int
	next     int
}

// NewSequence creates a sequence whose first value is template % start
func NewSequence(template string, start int) (*Sequence, error) {
	verbs := strings.ReplaceAll(template, "%%", "")
	if strings.Count(verbs, "%") != 1 || !strings.Contains(verbs, "%s") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTemplate, template)
	}
	return &Sequence{template: template, start: start, next: start}, nil
}

// MustSequence is like NewSequence but panics on an invalid template
func MustSequence(template string, start int) *Sequence {
	s, err := NewSequence(template, start)
	if err != nil {
		panic(err)
	}
	return s
}

// Next returns the next value and advances the counter
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := fmt.Sprintf(s.template, strconv.Itoa(s.next))
	s.next++
	return v
}

// Reset rewinds the counter to the start value
func (s *Sequence) Reset() {
	s.mu.Lock()
	s.next = s.start
	s.mu.Unlock()
}

// Template returns the sequence template
func (s *Sequence) Template() string {
	return s.template
}

// Definitions maps field names to the generator producing their default
type Definitions map[string]Generator

// Reset resets every generator that carries state
func (d Definitions) Reset() {
	for _, g := range d {
		if r, ok := g.(Resetter); ok {
			r.Reset()
		}
	}
}
