package dofs

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-meshdofs/internal/invariants"
)

type Options struct {
	// Checks enables the binding and used flag checks on the indexing path.
	// Defaults to true in builds tagged invariants.
	Checks bool
	Log    logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore options meant for something else.
type Option func(any)

func WithChecks(enabled bool) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Checks = enabled
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

func defaultOptions() Options {
	return Options{Checks: invariants.Enabled}
}
