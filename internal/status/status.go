// Package status classifies tenant and user activity flags.
package status

import "strings"

// activeValues is the accepted vocabulary for an enabled row. Status columns
// come from heterogeneous deployments, hence the mixed-language set.
var activeValues = map[string]bool{
	"activo":  true,
	"active":  true,
	"enabled": true,
}

// Active reports whether a raw status flag denotes an active row. The flag is
// trimmed and lowercased first. An empty flag counts as active, so rows from
// schemas without a status column are permitted by default.
func Active(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return true
	}
	return activeValues[s]
}
