package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the application logger for the given environment.
// Production uses the JSON encoder at INFO level; everything else gets the
// console development encoder at DEBUG level.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("failed to build production logger: %w", err)
		}
		return logger, nil
	}

	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build development logger: %w", err)
	}
	return logger, nil
}
