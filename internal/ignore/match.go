package ignore

import (
	"path/filepath"
	"strings"
)

// matchPattern tests a single glob pattern against a slash-separated
// path or bare name. Within a segment the usual shell wildcards apply
// (*, ?, [...]); a lone "**" segment matches any number of path
// segments, including none.
func matchPattern(pattern, path string) bool {
	pattern = filepath.ToSlash(pattern)
	path = filepath.ToSlash(path)
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, err := filepath.Match(p, parts[0])
		if err != nil || !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
