package mdimport

import "path/filepath"

// Filter selects metadata namespaces by glob pattern. A pattern
// prefixed with ! excludes; later patterns win over earlier ones.
// A nil filter or one without patterns admits everything.
type Filter struct {
	Namespaces []string
}

func (this *Filter) Include(fullName string) bool {
	if this == nil || len(this.Namespaces) == 0 {
		return true
	}
	var include bool
	for _, pattern := range this.Namespaces {
		var negative bool
		if pattern[0] == '!' {
			negative = true
			pattern = pattern[1:]
		}
		match, _ := filepath.Match(pattern, fullName)
		if match {
			include = !negative
		}
	}
	return include
}
