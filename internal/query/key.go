package query

import "strings"

// Key identifies one cached query as an ordered list of segments, e.g.
// {"projects"} or {"projects", "status", "ongoing"}. Segment order is
// significant; two keys with the same segments in a different order are
// different queries.
type Key []string

// String renders the key in its canonical colon-joined form.
func (k Key) String() string {
	return strings.Join(k, ":")
}

// HasPrefix reports whether k starts with every segment of prefix, in order.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, segment := range prefix {
		if k[i] != segment {
			return false
		}
	}
	return true
}
