package identity

import (
	"context"
	"errors"
)

// Identity errors
var (
	ErrMissingIdentity = errors.New("identity context missing or invalid")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// Context carries the authenticated caller's identity, resolved from the
// bearer token before any attendance operation runs.
type Context struct {
	UserID    string
	CompanyID string
	Role      string
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying the identity.
func WithContext(ctx context.Context, id Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the identity placed by the auth middleware.
func FromContext(ctx context.Context) (Context, error) {
	id, ok := ctx.Value(ctxKey{}).(Context)
	if !ok || id.UserID == "" || id.CompanyID == "" {
		return Context{}, ErrMissingIdentity
	}
	return id, nil
}

// FromClaims builds an identity from verified JWT claims.
func FromClaims(claims map[string]interface{}) (Context, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Context{}, ErrMissingIdentity
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return Context{}, ErrMissingIdentity
	}

	role, _ := claims["role"].(string)

	return Context{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}, nil
}
