// Package auth provides TokenProvider implementations for the content API.
package auth

import (
	"context"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
)

// Ensure ConfigTokenProvider implements the interface.
var _ driven.TokenProvider = (*ConfigTokenProvider)(nil)

// ConfigTokenProvider reads a static bearer token from the config store,
// as written by `coursectl auth login`. The token does not expire from
// coursectl's point of view; re-running login replaces it.
type ConfigTokenProvider struct {
	config driven.ConfigStore
}

// NewConfigTokenProvider creates a token provider backed by the config store.
func NewConfigTokenProvider(config driven.ConfigStore) *ConfigTokenProvider {
	return &ConfigTokenProvider{config: config}
}

// GetToken returns the stored token, or ErrAuthRequired when none is set.
func (p *ConfigTokenProvider) GetToken(_ context.Context) (string, error) {
	token := p.config.GetString(driven.ConfigKeyAPIToken)
	if token == "" {
		return "", domain.ErrAuthRequired
	}
	return token, nil
}

// IsAuthenticated returns true if a token is stored.
func (p *ConfigTokenProvider) IsAuthenticated() bool {
	return p.config.GetString(driven.ConfigKeyAPIToken) != ""
}
