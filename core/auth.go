package core

import "context"

// IAuthorizer identity collaborator
type IAuthorizer interface {
	// Require fails with ErrUnauthorized unless ctx acts as principal
	Require(ctx context.Context, principal string) error
}

// ISession resolves bearer tokens to principals
type ISession interface {
	Login(ctx context.Context, token string) (string, error)
}
