package requestctx

import "context"

// runIDContextKey is the context key for the seed run identifier.
type runIDContextKey struct{}

// WithRunID stores a seed run identifier in context.
func WithRunID(ctx context.Context, runID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDContextKey{}, runID)
}

// RunIDFromContext returns the seed run identifier stored in context.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(runIDContextKey{}).(string)
	return value
}
