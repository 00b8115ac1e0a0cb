package contextutil

import "context"

// contextKey is unexported so keys cannot collide with other packages
type contextKey string

const runIDKey contextKey = "run_id"

// WithRunID stores the import-run identifier in the context
func WithRunID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, runIDKey, rid)
}

// GetRunID reads the import-run identifier from the context
func GetRunID(ctx context.Context) string {
	if rid, ok := ctx.Value(runIDKey).(string); ok {
		return rid
	}
	return ""
}
