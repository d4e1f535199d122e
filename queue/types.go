// Package queue provides comparator-ordered queue containers.
package queue

import (
	"github.com/sirupsen/logrus"
)

// Queue is the behaviour shared by the containers in this package.
type Queue[V any] interface {
	Push(value V)
	Poll() (V, error)
	Peek() (V, error)
	Len() int
}

type config struct {
	logger *logrus.Logger
}

func defaultConfig() *config {
	return &config{
		logger: logrus.StandardLogger(),
	}
}

type Option func(*config)

// WithLogger sets the logger used for debug tracing. A nil logger is ignored.
func WithLogger(logger *logrus.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
