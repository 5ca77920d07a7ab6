package fixtures

import (
	"time"

	"github.com/forgo/lmskit/internal/model"
	"github.com/forgo/lmskit/internal/repository"
)

// Factory groups the per-type factories over one store
type Factory struct {
	Post       *PostFactory
	Membership *MembershipFactory
}

// New creates a fixture factory. Each call owns fresh sequences, so two
// factories never interfere with each other's numbering.
func New(store repository.PostStore, opts ...FactoryOption) *Factory {
	cfg := newFactoryConfig(opts)
	return &Factory{
		Post:       NewPostFactory(store, model.PostTypePost, PostDefaults(cfg.sequenceStart), opts...),
		Membership: NewMembershipFactory(store, opts...),
	}
}

// Reset rewinds every sequence of every factory
func (f *Factory) Reset() {
	f.Post.Reset()
	f.Membership.Reset()
}

// FactoryOption configures a factory
type FactoryOption func(*factoryConfig)

type factoryConfig struct {
	sequenceStart int
	timeout       time.Duration
}

func newFactoryConfig(opts []FactoryOption) factoryConfig {
	cfg := factoryConfig{sequenceStart: 1, timeout: DefaultTimeout}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithSequenceStart sets the first number default sequences produce
func WithSequenceStart(n int) FactoryOption {
	return func(c *factoryConfig) { c.sequenceStart = n }
}

// WithTimeout bounds each store call made by test-facing methods
func WithTimeout(d time.Duration) FactoryOption {
	return func(c *factoryConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}
