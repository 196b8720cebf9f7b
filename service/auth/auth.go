package auth

import (
	"context"

	"moneymarket/core"
)

type key int

const (
	principalKey key = iota
)

// WithPrincipal ctx acting as principal
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFrom principal ctx acts as
func PrincipalFrom(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(principalKey).(string)
	return principal, ok && principal != ""
}

type authorizer struct{}

// New authorizer checking the principal carried by the context
func New() core.IAuthorizer {
	return authorizer{}
}

func (authorizer) Require(ctx context.Context, principal string) error {
	if p, ok := PrincipalFrom(ctx); !ok || p != principal {
		return core.ErrUnauthorized
	}

	return nil
}
