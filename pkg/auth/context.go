// Package auth provides cookie-session login state and the middleware that
// guards authenticated endpoints. Handlers read the logged-in user's id from
// the request context via the helpers here.
package auth

import (
	"context"
	"fmt"
)

type contextKey string

// userIDContextKey is the context key the middleware stores the user id under.
const userIDContextKey contextKey = "auth_user_id"

// WithUserID returns a context carrying the logged-in user's id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext extracts the user id from the context.
// Returns 0 if no user is logged in.
func GetUserIDFromContext(ctx context.Context) int64 {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	if !ok {
		return 0
	}
	return userID
}

// RequireUserIDFromContext extracts the user id from the context and returns
// an error if no user is logged in.
func RequireUserIDFromContext(ctx context.Context) (int64, error) {
	userID := GetUserIDFromContext(ctx)
	if userID == 0 {
		return 0, fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}
