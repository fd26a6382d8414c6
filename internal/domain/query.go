package domain

import "strings"

// Query is the canonical, URL-safe query string passed to the weather
// service. Spaces and commas are already normalized to '+'.
type Query string

var placeReplacer = strings.NewReplacer(" ", "+", ",", "+")

// CanonicalPlace normalizes a free-form place name. Every space and every
// comma becomes '+', character by character, with no collapsing: wttr.in
// accepts repeated '+' in a path segment, so "New York, NY" canonicalizes
// to "New+York++NY".
func CanonicalPlace(raw string) Query {
	return Query(placeReplacer.Replace(raw))
}

// CanonicalZip builds the query for a US postal code.
func CanonicalZip(digits string) Query {
	return Query(digits + ",+USA")
}

// CanonicalArgument canonicalizes a raw command-line argument: all-digit
// input is treated as a US zip code, anything else as a place name.
func CanonicalArgument(raw string) Query {
	if raw != "" && strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		return CanonicalZip(raw)
	}
	return CanonicalPlace(raw)
}
