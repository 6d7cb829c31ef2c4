package rule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/rnlint/internal/source"
)

func writePack(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPack(t *testing.T) {
	path := writePack(t, `
rules:
  - id: team/no-moment
    description: moment.js is frozen upstream
    severity: error
    suggestion: use date-fns
    kind: import
    module: ^moment$
  - id: team/no-alert
    description: Alert.alert in shared code
    severity: warning
    kind: line
    pattern: \bAlert\.alert\s*\(
  - id: team/screen-names
    description: screen files are PascalCase
    severity: warning
    kind: filename
    dirs: [screens]
    extensions: [".tsx"]
    style: pascal-case
  - id: team/image-alt
    description: Image without accessibility label
    severity: warning
    kind: element
    elements: [Image]
    required_attrs: [accessibilityLabel, alt]
`)

	rules, err := LoadPack(path)
	require.NoError(t, err)
	require.Len(t, rules, 4)

	f := source.Parse("a.ts", "import moment from 'moment';\nAlert.alert('hi');\n")
	assert.Len(t, rules[0].Matcher.Check(f), 1)
	assert.Len(t, rules[1].Matcher.Check(f), 1)

	img := source.Parse("a.tsx", "<Image source={src} />\n")
	assert.Len(t, rules[3].Matcher.Check(img), 1)

	// pack rules flow through Load like built-ins
	active, err := Load(Settings{}, rules...)
	require.NoError(t, err)
	builtin, err := Load(Settings{})
	require.NoError(t, err)
	assert.Len(t, active, len(builtin)+4)
}

func TestLoadPack_Malformed(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing id", "rules:\n  - kind: line\n    severity: warning\n    pattern: x\n"},
		{"bad severity", "rules:\n  - id: a\n    kind: line\n    severity: high\n    pattern: x\n"},
		{"unknown kind", "rules:\n  - id: a\n    kind: ast\n    severity: warning\n"},
		{"bad regex", "rules:\n  - id: a\n    kind: line\n    severity: warning\n    pattern: '['\n"},
		{"import without module", "rules:\n  - id: a\n    kind: import\n    severity: warning\n"},
		{"bad filename style", "rules:\n  - id: a\n    kind: filename\n    severity: warning\n    style: kebab\n"},
		{"element without attrs", "rules:\n  - id: a\n    kind: element\n    severity: warning\n    elements: [Image]\n"},
		{"not yaml", "rules: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPack(writePack(t, tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadPack_MissingFile(t *testing.T) {
	_, err := LoadPack(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
