package utils

import "context"

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	StoreIDKey   contextKey = "store_id"
	UserEmailKey contextKey = "email"
	UserRoleKey  contextKey = "role"
)

const (
	RoleBuyer   = "buyer"
	RolePartner = "partner"
	RoleAdmin   = "admin"
)

// SetUserContext sets user info into context (called by middleware)
func SetUserContext(ctx context.Context, id uint, email string, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id)
	ctx = context.WithValue(ctx, UserEmailKey, email)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return ctx
}

// SetStoreContext attaches the partner's store id to the request context.
func SetStoreContext(ctx context.Context, storeID uint) context.Context {
	return context.WithValue(ctx, StoreIDKey, storeID)
}

// GetUserIDFromContext retrieves userID safely
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

func GetUserEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(UserEmailKey).(string)
	return email
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}

func GetStoreIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(StoreIDKey).(uint)
	return id, ok
}
