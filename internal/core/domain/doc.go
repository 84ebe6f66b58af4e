// Package domain contains the core business types for coursectl:
// the subject taxonomy, the chapter batch being composed, and the
// errors shared across services and adapters.
//
// Domain types have no dependencies on adapters or external services.
package domain
