package auth

import (
	"context"

	"moneymarket/core"
)

type session struct {
	tokens map[string]string
}

// NewSession session backed by the configured bearer tokens
func NewSession(cfg core.Auth) core.ISession {
	tokens := make(map[string]string, len(cfg.Tokens))
	for _, t := range cfg.Tokens {
		if t.Token != "" && t.Principal != "" {
			tokens[t.Token] = t.Principal
		}
	}

	return &session{tokens: tokens}
}

func (s *session) Login(ctx context.Context, token string) (string, error) {
	principal, ok := s.tokens[token]
	if !ok {
		return "", core.ErrUnauthorized
	}

	return principal, nil
}
