package domain

import (
	"strings"
	"time"
)

// Build is one immutable versioned binary artifact in the builds directory.
// Builds are produced externally; this service only observes, promotes and
// removes them.
type Build struct {
	Version   string
	SizeBytes int64
	CreatedAt time.Time
	Active    bool
}

// ValidVersion reports whether v is usable as a build identifier.
// Versions name files inside the builds directory, so anything that could
// escape it is rejected.
func ValidVersion(v string) bool {
	if v == "" {
		return false
	}
	if strings.ContainsAny(v, "/\\") {
		return false
	}
	if v == "." || v == ".." {
		return false
	}
	return true
}
