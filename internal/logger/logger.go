// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New returns a logger appropriate for the environment: human-readable
// output in dev, JSON in anything else.
func New(env string) (*zap.Logger, error) {
	if env == "dev" || env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
