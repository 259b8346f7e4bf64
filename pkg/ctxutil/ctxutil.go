// Package ctxutil carries request-scoped values (the authenticated caller and
// the request ID) between middleware, handlers and services.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	callerKey    struct{}
	requestIDKey struct{}
)

// WithUserID marks ctx as belonging to the authenticated user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, callerKey{}, id)
}

// UserIDFromCtx returns the authenticated caller. A nil UUID counts as
// anonymous.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(callerKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" when no request ID was attached.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
