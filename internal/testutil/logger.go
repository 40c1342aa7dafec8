// Package testutil provides shared helpers for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestContext returns a context carrying a logger that writes through
// t.Log, so store diagnostics show up in test output instead of vanishing
// into a disabled logger.
func NewTestContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}
