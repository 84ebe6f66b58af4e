// Package normalisers turns user-pasted input into the canonical forms the
// content API expects. Normalisation is lenient: input that isn't recognised
// passes through unchanged rather than failing, so non-platform content
// keeps working.
package normalisers
