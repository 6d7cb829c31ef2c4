// Package report holds the immutable result of a scan run and its
// text/JSON renderers.
package report

import (
	"sort"

	"github.com/bartekus/rnlint/internal/rule"
)

// Violation is one rule firing at one location. File paths are relative
// to the scanned root with forward slashes.
type Violation struct {
	RuleID     string
	File       string
	Line       int
	Column     int
	Severity   rule.Severity
	Message    string
	Suggestion string
}

// Report is the ordered, immutable outcome of a run. Violations are
// grouped by file and sorted severity-first within a file, so two runs
// over identical input render identically.
type Report struct {
	Violations   []Violation
	FilesScanned int
}

// New sorts the violations into report order and freezes them.
func New(violations []Violation, filesScanned int) *Report {
	vs := make([]Violation, len(violations))
	copy(vs, violations)
	sort.SliceStable(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Severity != b.Severity {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.RuleID < b.RuleID
	})
	return &Report{Violations: vs, FilesScanned: filesScanned}
}

// Counts returns the number of error and warning violations.
func (r *Report) Counts() (errors, warnings int) {
	for _, v := range r.Violations {
		if v.Severity == rule.SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

// HasErrors reports whether any error-severity violation exists.
func (r *Report) HasErrors() bool {
	errors, _ := r.Counts()
	return errors > 0
}

// ExitCode is the terminal decision for the run: 1 when error-severity
// violations exist (or any violation with failOnWarning), else 0.
func (r *Report) ExitCode(failOnWarning bool) int {
	if r.HasErrors() {
		return 1
	}
	if failOnWarning && len(r.Violations) > 0 {
		return 1
	}
	return 0
}

// byFile groups violations preserving report order. Used by emitters.
func (r *Report) byFile() ([]string, map[string][]Violation) {
	var files []string
	groups := make(map[string][]Violation)
	for _, v := range r.Violations {
		if _, ok := groups[v.File]; !ok {
			files = append(files, v.File)
		}
		groups[v.File] = append(groups[v.File], v)
	}
	return files, groups
}
