package domain

import "context"

type CtxKey string

const (
	KeyIdentity CtxKey = "Identity"
	KeyUserID   CtxKey = "UserID"
	KeyUserRole CtxKey = "Role"
)

// WithIdentity returns a copy of ctx carrying the authenticated user.
func WithIdentity(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, KeyIdentity, u)
}

// IdentityFrom returns the authenticated user attached by WithIdentity.
func IdentityFrom(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(KeyIdentity).(*User)
	return u, ok && u != nil
}
