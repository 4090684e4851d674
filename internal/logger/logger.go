// Package logger builds the service's zap logger: JSON in production,
// console in development.
package logger

import (
	"go.uber.org/zap"
)

// New creates a logger for the given environment. "development" gets a
// human-readable console encoder with debug level; everything else gets
// production JSON at info level.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewNamed creates a logger for the given environment with the service
// name attached to every entry.
func NewNamed(env, service string) (*zap.Logger, error) {
	log, err := New(env)
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}
