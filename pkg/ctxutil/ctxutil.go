// Package ctxutil carries per-request identity through context.Context.
// The auth middleware writes these values; handlers and services read them.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type key int

const (
	keyUserID key = iota
	keyRole
	keyRequestID
)

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, keyUserID, id)
}

// UserIDFromCtx reports the authenticated profile ID. A missing or nil ID
// yields false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	if id, ok := ctx.Value(keyUserID).(uuid.UUID); ok && id != uuid.Nil {
		return id, true
	}
	return uuid.Nil, false
}

// WithRole stores the raw role claim (student, mentor, moderator, admin, service).
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, keyRole, role)
}

func RoleFromCtx(ctx context.Context) string {
	return stringValue(ctx, keyRole)
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// RequestIDFromCtx returns the X-Request-ID assigned by the middleware, or "".
func RequestIDFromCtx(ctx context.Context) string {
	return stringValue(ctx, keyRequestID)
}

func stringValue(ctx context.Context, k key) string {
	s, _ := ctx.Value(k).(string)
	return s
}
