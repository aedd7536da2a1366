package gml

import "strings"

// UUIDURNPrefix is the reference scheme AIXM uses for feature links
// (xlink:href="urn:uuid:...").
const UUIDURNPrefix = "urn:uuid:"

// ParseUUIDHref extracts the identifier from an urn:uuid reference.
// Hrefs using any other scheme are not feature references.
func ParseUUIDHref(href string) (string, bool) {
	return strings.CutPrefix(href, UUIDURNPrefix)
}

// UUIDHref formats id as an urn:uuid reference.
func UUIDHref(id string) string {
	return UUIDURNPrefix + id
}
