// Package scanner enumerates the candidate source files of a project
// tree. It walks the filesystem by default and can ask git for tracked
// files instead, so generated or ignored trees stay out of the report.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// Scanner provides access to a project's candidate source files.
// Returned paths are relative to the root with forward slashes.
type Scanner struct {
	root       string
	gitTracked bool

	mu    sync.Mutex
	cache []string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithGitTracked makes the scanner ask `git ls-files` instead of walking
// the tree, which respects .gitignore for free.
func WithGitTracked() Option {
	return func(s *Scanner) { s.gitTracked = true }
}

// New creates a Scanner rooted at the given directory.
func New(root string, opts ...Option) *Scanner {
	s := &Scanner{root: root}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the scan root.
func (s *Scanner) Root() string { return s.root }

// Files returns all candidate paths, caching the enumeration for the
// instance lifetime. Unreadable subtrees are skipped, never fatal: a
// single bad directory must not abort the scan.
func (s *Scanner) Files(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		return s.cache, nil
	}

	var (
		files []string
		err   error
	)
	if s.gitTracked {
		files, err = s.gitFiles(ctx)
	} else {
		files, err = s.walkFiles(ctx)
	}
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []string{}
	}
	s.cache = files
	return s.cache, nil
}

// FilesFiltered returns candidate paths matching the filter options.
func (s *Scanner) FilesFiltered(ctx context.Context, opts FilterOptions) ([]string, error) {
	all, err := s.Files(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFiles(all, opts), nil
}

func (s *Scanner) walkFiles(ctx context.Context) ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			// unreadable entry: drop it, keep walking
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Scanner) gitFiles(ctx context.Context) ([]string, error) {
	// -z to avoid quoting issues in paths
	cmd := exec.CommandContext(ctx, "git", "ls-files", "-z")
	cmd.Dir = s.root
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files failed: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	trimmed := strings.TrimSuffix(string(out), "\x00")
	return strings.Split(trimmed, "\x00"), nil
}
