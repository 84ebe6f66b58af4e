// Package driving defines the interfaces through which the CLI and TUI
// drive the core: browsing the subject catalogue, publishing batches, and
// managing local drafts.
package driving
