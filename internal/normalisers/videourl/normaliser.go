// Package videourl canonicalises pasted video links.
//
// Links in any of the common shapes carrying an 11-character YouTube video
// ID (share links, watch links, embed links, shorts) are rewritten to a
// canonical embed URL and a canonical watch URL. Anything else is treated
// as an opaque external URL and returned unchanged.
package videourl

import (
	"fmt"
	"regexp"
)

const (
	// host is the canonical host used in rewritten URLs.
	host = "www.youtube.com"

	// idLength is the length of a YouTube video identifier.
	idLength = 11
)

// idPattern matches the video identifier in the recognised link shapes:
// youtu.be/<id>, watch?v=<id>, /embed/<id>, /shorts/<id>, /v/<id>.
// The identifier is captured greedily and length-checked afterwards so a
// token of the wrong length falls through to passthrough instead of being
// truncated.
var idPattern = regexp.MustCompile(
	`(?:youtu\.be/|youtube\.com/(?:watch\?(?:.*&)?v=|embed/|shorts/|v/))([A-Za-z0-9_-]+)`,
)

// Result is the outcome of normalising one pasted link.
type Result struct {
	// ID is the extracted video identifier; empty when not recognised.
	ID string

	// EmbedURL is the canonical embeddable URL, or the raw input when the
	// link was not recognised.
	EmbedURL string

	// WatchURL is the canonical human-watchable URL, or the raw input when
	// the link was not recognised.
	WatchURL string

	// Recognised reports whether a platform video ID was extracted.
	Recognised bool
}

// Normalise extracts the video identifier from a pasted link and returns
// both canonical forms. Unrecognised input, including IDs of the wrong
// length, passes through unchanged. Empty input yields an empty result.
// Normalise never fails.
func Normalise(raw string) Result {
	if raw == "" {
		return Result{}
	}

	m := idPattern.FindStringSubmatch(raw)
	if m == nil || len(m[1]) != idLength {
		return Result{EmbedURL: raw, WatchURL: raw}
	}

	id := m[1]
	return Result{
		ID:         id,
		EmbedURL:   fmt.Sprintf("https://%s/embed/%s", host, id),
		WatchURL:   fmt.Sprintf("https://%s/watch?v=%s", host, id),
		Recognised: true,
	}
}

// EmbedURL is a convenience wrapper returning only the embeddable form.
func EmbedURL(raw string) string {
	return Normalise(raw).EmbedURL
}
