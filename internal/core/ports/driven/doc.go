// Package driven defines the interfaces the core depends on: the remote
// content API, credential access, configuration, and local draft storage.
// Adapters under internal/adapters/driven implement these.
package driven
