package driven

import "context"

// TokenProvider provides the bearer credential for content API calls.
// The core never reaches into ambient session state; whoever constructs the
// API adapter injects a provider.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if a credential is available without
	// performing network I/O.
	IsAuthenticated() bool
}
