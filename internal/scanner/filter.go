package scanner

import (
	"sort"
	"strings"
)

// FilterOptions defines criteria for including or excluding files.
type FilterOptions struct {
	// ExcludeDirs is a list of directory names to exclude.
	// Matching is segment-aware: "node_modules" excludes
	// "node_modules/foo" and "app/node_modules/bar", but not
	// "node_modules_backup/foo".
	ExcludeDirs []string

	// IncludeExtensions is a list of extensions to include (e.g. ".tsx").
	// If empty, all extensions are included.
	IncludeExtensions []string
}

// DefaultExcludeDirs returns the directories a React Native / Expo
// project tree grows that are never hand-written source.
func DefaultExcludeDirs() []string {
	return []string{
		"node_modules",
		".git",
		".expo",
		".expo-shared",
		"dist",
		"build",
		"web-build",
		"coverage",
		"vendor",
		"Pods",
		".idea",
		".vscode",
	}
}

// DefaultExtensions returns the source extensions rules apply to.
func DefaultExtensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx"}
}

// FilterFiles applies the filter options to a list of slash-separated
// relative paths. It returns a new sorted slice.
func FilterFiles(paths []string, opts FilterOptions) []string {
	if len(paths) == 0 {
		return nil
	}

	var filtered []string
	for _, path := range paths {
		if excludedSegment(path, opts.ExcludeDirs) {
			continue
		}
		if !includedExtension(path, opts.IncludeExtensions) {
			continue
		}
		filtered = append(filtered, path)
	}

	sort.Strings(filtered)
	return filtered
}

func excludedSegment(path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}
	for _, part := range strings.Split(path, "/") {
		for _, exclude := range excludes {
			if part == exclude {
				return true
			}
		}
	}
	return false
}

func includedExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
