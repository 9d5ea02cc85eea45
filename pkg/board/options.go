package board

import (
	log "github.com/sirupsen/logrus"
)

// Policy selects how malformed lines are handled while loading.
type Policy int

const (
	// PolicySkip logs a malformed line and continues with the next one.
	PolicySkip Policy = iota
	// PolicyStrict aborts the load at the first malformed line.
	PolicyStrict
)

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "skip"
}

type options struct {
	logger *log.Logger
	policy Policy
}

// Option configures a Board.
type Option func(*options)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPolicy sets the malformed-line policy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithStrict is shorthand for WithPolicy(PolicyStrict) when strict is true.
func WithStrict(strict bool) Option {
	if strict {
		return WithPolicy(PolicyStrict)
	}
	return WithPolicy(PolicySkip)
}

func newOptions(opts []Option) options {
	o := options{
		logger: log.StandardLogger(),
		policy: PolicySkip,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
