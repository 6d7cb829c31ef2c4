package report

import (
	"encoding/json"
	"io"
)

// violationJSON is the wire shape of a single violation.
type violationJSON struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	RuleID     string `json:"ruleId"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

type summaryJSON struct {
	FilesScanned int `json:"filesScanned"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
}

type reportJSON struct {
	Violations []violationJSON `json:"violations"`
	Summary    summaryJSON     `json:"summary"`
}

// WriteJSON renders the report as indented JSON in report order.
func WriteJSON(w io.Writer, r *Report) error {
	out := reportJSON{Violations: make([]violationJSON, 0, len(r.Violations))}
	for _, v := range r.Violations {
		out.Violations = append(out.Violations, violationJSON{
			File:       v.File,
			Line:       v.Line,
			Column:     v.Column,
			RuleID:     v.RuleID,
			Severity:   string(v.Severity),
			Message:    v.Message,
			Suggestion: v.Suggestion,
		})
	}
	out.Summary.FilesScanned = r.FilesScanned
	out.Summary.Errors, out.Summary.Warnings = r.Counts()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
