package rule

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Builtins(t *testing.T) {
	rules, err := Load(Settings{})
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	// deterministic id order
	for i := 1; i < len(rules); i++ {
		assert.Less(t, rules[i-1].ID, rules[i].ID)
	}

	// every built-in is well formed
	for _, r := range rules {
		assert.NoError(t, r.validate(), r.ID)
		assert.NotEmpty(t, r.Description, r.ID)
	}

	barrel, ok := Get("no-barrel-exports")
	require.True(t, ok)
	assert.Equal(t, SeverityError, barrel.Severity)
}

func TestLoad_Disabled(t *testing.T) {
	all, err := Load(Settings{})
	require.NoError(t, err)

	rules, err := Load(Settings{Disabled: map[string]bool{"no-console": true}})
	require.NoError(t, err)
	assert.Len(t, rules, len(all)-1)
	for _, r := range rules {
		assert.NotEqual(t, "no-console", r.ID)
	}
}

func TestLoad_SeverityOverride(t *testing.T) {
	rules, err := Load(Settings{Severities: map[string]Severity{"no-console": SeverityError}})
	require.NoError(t, err)

	for _, r := range rules {
		if r.ID == "no-console" {
			assert.Equal(t, SeverityError, r.Severity)
			return
		}
	}
	t.Fatal("no-console not found")
}

func TestLoad_ConfigErrors(t *testing.T) {
	_, err := Load(Settings{Disabled: map[string]bool{"no-such-rule": true}})
	require.Error(t, err)

	_, err = Load(Settings{Severities: map[string]Severity{"no-such-rule": SeverityError}})
	require.Error(t, err)

	_, err = Load(Settings{}, Rule{ID: "", Severity: SeverityWarning})
	require.Error(t, err, "missing id must fail at load time")

	_, err = Load(Settings{}, Rule{ID: "x", Severity: SeverityWarning})
	require.Error(t, err, "missing matcher must fail at load time")

	dup := Rule{
		ID:       "no-console",
		Severity: SeverityWarning,
		Matcher:  &LineMatcher{Pattern: regexp.MustCompile(`x`)},
	}
	_, err = Load(Settings{}, dup)
	require.Error(t, err, "duplicate id must fail at load time")
}

func TestParseSeverity(t *testing.T) {
	sev, err := ParseSeverity("ERROR")
	require.NoError(t, err)
	assert.Equal(t, SeverityError, sev)

	_, err = ParseSeverity("critical")
	require.Error(t, err)
}
