package infrastructure

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// RunIDContextKey is the key for storing the run ID in context.
const RunIDContextKey contextKey = "run_id"

// NewRunID returns a fresh identifier for one CLI invocation.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID returns a context carrying the given run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDContextKey, runID)
}

// GetRunID extracts the run ID from context, or "" when absent.
func GetRunID(ctx context.Context) string {
	if v, ok := ctx.Value(RunIDContextKey).(string); ok {
		return v
	}
	return ""
}
