package utils

import (
	"context"

	"github.com/domy-v-italii/portal/models"
)

type ctxKey string

// UserCtxKey is the context key under which the auth middleware stores
// the resolved *models.User for downstream handlers.
const UserCtxKey ctxKey = "portal-user"

// UserFromContext returns the authenticated user stored in ctx by the
// auth middleware, or nil when the request is anonymous.
func UserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// ContextWithUser returns a child context carrying the given user.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}
