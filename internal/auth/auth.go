package auth

import (
	"context"
	"strings"
	"unicode"

	"github.com/garrettladley/ecoscan/internal/apperr"
)

// Checker reports whether the current user is signed in.
type Checker interface {
	IsAuthenticated(ctx context.Context) (bool, error)
}

// EnvChecker treats a configured API key as a signed-in session. A key with
// embedded whitespace or control characters is rejected as unauthorized.
type EnvChecker struct {
	apiKey string
}

var _ Checker = (*EnvChecker)(nil)

func NewEnvChecker(apiKey string) *EnvChecker {
	return &EnvChecker{apiKey: strings.TrimSpace(apiKey)}
}

func (c *EnvChecker) IsAuthenticated(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.apiKey == "" {
		return false, nil
	}
	if strings.ContainsFunc(c.apiKey, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) {
		return false, apperr.Unauthorized("malformed_api_key", "API key contains whitespace or control characters")
	}
	return true, nil
}

// Static always reports the same result. Useful for tests and offline runs.
type Static struct {
	Authenticated bool
	Err           error
}

var _ Checker = Static{}

func (s Static) IsAuthenticated(context.Context) (bool, error) {
	return s.Authenticated, s.Err
}
