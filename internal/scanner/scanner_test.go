package scanner

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFiles(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		opts     FilterOptions
		expected []string
	}{
		{
			name:  "exclude node_modules",
			paths: []string{"App.tsx", "node_modules/pkg/index.js", "src/good.ts"},
			opts: FilterOptions{
				ExcludeDirs: []string{"node_modules"},
			},
			expected: []string{"App.tsx", "src/good.ts"},
		},
		{
			name:  "exclude nested dirs",
			paths: []string{"dist/a.js", "app/dist/b.js", "app/c.ts"},
			opts: FilterOptions{
				ExcludeDirs: []string{"dist"},
			},
			expected: []string{"app/c.ts"},
		},
		{
			name:  "segment matching only",
			paths: []string{"dist_shared/a.ts", "mydist/b.ts"},
			opts: FilterOptions{
				ExcludeDirs: []string{"dist"},
			},
			expected: []string{"dist_shared/a.ts", "mydist/b.ts"},
		},
		{
			name:  "extension filter",
			paths: []string{"a.tsx", "b.md", "c.ts", "d.json"},
			opts: FilterOptions{
				IncludeExtensions: []string{".ts", ".tsx"},
			},
			expected: []string{"a.tsx", "c.ts"},
		},
		{
			name:  "excludes and extensions together",
			paths: []string{"node_modules/a.ts", "b.ts", "c.md"},
			opts: FilterOptions{
				ExcludeDirs:       DefaultExcludeDirs(),
				IncludeExtensions: DefaultExtensions(),
			},
			expected: []string{"b.ts"},
		},
		{
			name:     "empty input",
			paths:    nil,
			opts:     FilterOptions{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFiles(tt.paths, tt.opts)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScanner_Walk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	createFile(t, dir, "App.tsx")
	createFile(t, dir, "src/components/Card.tsx")
	createFile(t, dir, "src/hooks/useAuth.ts")
	createFile(t, dir, "node_modules/react/index.js")
	createFile(t, dir, "assets/logo.png")

	s := New(dir)
	files, err := s.FilesFiltered(ctx, FilterOptions{
		ExcludeDirs:       DefaultExcludeDirs(),
		IncludeExtensions: DefaultExtensions(),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"App.tsx",
		"src/components/Card.tsx",
		"src/hooks/useAuth.ts",
	}, files)
}

func TestScanner_EmptyRoot(t *testing.T) {
	s := New(t.TempDir())
	files, err := s.Files(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanner_CachesEnumeration(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "a.ts")

	s := New(dir)
	first, err := s.Files(context.Background())
	require.NoError(t, err)

	// files added after the first enumeration are not seen
	createFile(t, dir, "b.ts")
	second, err := s.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScanner_Cancelled(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "a.ts")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(dir).Files(ctx)
	require.Error(t, err)
}

func TestScanner_GitTracked(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	ctx := context.Background()

	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	createFile(t, dir, "App.tsx")
	createFile(t, dir, "src/util.ts")
	createFile(t, dir, ".gitignore", "generated.ts\n")
	createFile(t, dir, "generated.ts")

	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "initial")

	files, err := New(dir, WithGitTracked()).FilesFiltered(ctx, FilterOptions{
		IncludeExtensions: DefaultExtensions(),
	})
	require.NoError(t, err)

	assert.Contains(t, files, "App.tsx")
	assert.Contains(t, files, "src/util.ts")
	assert.NotContains(t, files, "generated.ts", "untracked files respect .gitignore")
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}

func createFile(t *testing.T, dir, path string, content ...string) {
	t.Helper()
	fullPath := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))

	data := ""
	if len(content) > 0 {
		data = content[0]
	}
	require.NoError(t, os.WriteFile(fullPath, []byte(data), 0o644))
}
