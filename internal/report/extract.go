package report

import "regexp"

// providerRe matches the provider lead-in of the Textbox9 field, which reads
// like "Providers, Jane Doe, MD". The greedy match runs from the start of the
// string through the last ", ", so credentials after the final comma are
// dropped while the name itself is kept.
var providerRe = regexp.MustCompile(`^P.+,\s`)

// nonWordRe matches maximal runs of anything other than letters, digits and
// underscore.
var nonWordRe = regexp.MustCompile(`\W+`)

// ExtractProvider pulls the provider name out of the free-text header field.
// If the lead-in pattern does not match, the input is returned unchanged.
// Idempotent: an already-extracted name still matches and maps to itself.
func ExtractProvider(raw string) string {
	if m := providerRe.FindString(raw); m != "" {
		return m
	}
	return raw
}

// DeriveFilename sanitizes a provider name into a filesystem-safe base
// filename: every run of non-word characters collapses to a single
// underscore, leading and trailing runs included.
func DeriveFilename(provider string) string {
	return nonWordRe.ReplaceAllString(provider, "_")
}
