package auth

import (
	"context"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider holds a fixed token. Used by tests and by call sites
// that already resolved a credential (e.g., the COURSECTL_TOKEN env var).
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the token, or ErrAuthRequired when it is empty.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// IsAuthenticated returns true if the token is non-empty.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
