// Package projectroot locates the root of the project being checked.
package projectroot

import (
	"os"
	"path/filepath"
)

// markers identify a React Native / Expo project root, checked in order.
var markers = []string{"package.json", "app.json", ".git"}

// Find walks upward from start looking for a project marker. When no
// marker exists, the start directory itself is the root: the checker
// still works on a bare tree of sources.
func Find(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	for cur := dir; ; {
		for _, m := range markers {
			if _, err := os.Stat(filepath.Join(cur, m)); err == nil {
				return cur
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}
