package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/rnlint/internal/rule"
	"github.com/bartekus/rnlint/internal/testutil/golden"
)

func TestWriteText(t *testing.T) {
	r := New(sample(), 5)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r, TextOptions{}))
	golden.Assert(t, "text_report", buf.String())
}

func TestWriteText_Empty(t *testing.T) {
	r := New(nil, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r, TextOptions{}))
	assert.Equal(t, "3 files scanned, no violations\n", buf.String())
}

func TestWriteText_Suggestions(t *testing.T) {
	r := New([]Violation{{
		RuleID:     "prefer-pressable",
		File:       "src/Button.tsx",
		Line:       1,
		Column:     1,
		Severity:   rule.SeverityWarning,
		Message:    "Touchable components are legacy",
		Suggestion: "use Pressable, which supersedes the Touchable* family",
	}}, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r, TextOptions{Suggestions: true}))
	assert.Contains(t, buf.String(), "use Pressable")
}

func TestWriteText_Deterministic(t *testing.T) {
	r := New(sample(), 5)

	var a, b bytes.Buffer
	require.NoError(t, WriteText(&a, r, TextOptions{}))
	require.NoError(t, WriteText(&b, r, TextOptions{}))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteJSON(t *testing.T) {
	r := New(sample(), 5)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))
	golden.Assert(t, "json_report", buf.String())

	// the wire shape is the documented array of objects
	var decoded struct {
		Violations []map[string]any `json:"violations"`
		Summary    map[string]any   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Violations, 4)
	for _, v := range decoded.Violations {
		for _, key := range []string{"file", "line", "column", "ruleId", "severity", "message"} {
			assert.Contains(t, v, key)
		}
	}
}

func TestWriteJSON_EmptyReportIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, New(nil, 0)))
	assert.True(t, strings.Contains(buf.String(), `"violations": []`))
}
