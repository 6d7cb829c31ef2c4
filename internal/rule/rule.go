// Package rule defines the checkable guideline set: the rule model, the
// closed set of matcher kinds, the built-in React Native / Expo rules,
// and the YAML rule-pack loader.
package rule

import (
	"fmt"
	"strings"

	"github.com/bartekus/rnlint/internal/source"
)

// Severity classifies how a violation affects the run outcome. Error
// severity drives a non-zero exit code.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rank orders severities for report sorting; higher sorts first.
func (s Severity) Rank() int {
	if s == SeverityError {
		return 2
	}
	return 1
}

// ParseSeverity validates a severity string from config or a rule pack.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityWarning:
		return SeverityWarning, nil
	case SeverityError:
		return SeverityError, nil
	}
	return "", fmt.Errorf("unknown severity %q (want warning or error)", s)
}

// Match is a single place where a rule fired within a file.
type Match struct {
	Line   int
	Column int
	Detail string // optional extra context interpolated into the message
}

// Matcher is a pure predicate over a parsed source file. The shipped
// implementations form a closed set, one per rule category: ImportMatcher,
// LineMatcher, FilenameMatcher, ElementMatcher. Matchers must not mutate
// the file or any shared state.
type Matcher interface {
	Check(f *source.File) []Match
}

// Rule is one checkable guideline. Rules are immutable after registry
// load; evaluating one never depends on another.
type Rule struct {
	ID          string
	Description string
	Severity    Severity
	Suggestion  string
	Matcher     Matcher
}

// Message renders the user-facing violation text for a match.
func (r Rule) Message(m Match) string {
	if m.Detail == "" {
		return r.Description
	}
	return fmt.Sprintf("%s (%s)", r.Description, m.Detail)
}

// validate reports a malformed rule at configuration-load time.
func (r Rule) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("rule has no id")
	}
	if r.Matcher == nil {
		return fmt.Errorf("rule %q has no matcher", r.ID)
	}
	if r.Severity != SeverityWarning && r.Severity != SeverityError {
		return fmt.Errorf("rule %q has invalid severity %q", r.ID, r.Severity)
	}
	return nil
}
