package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bartekus/rnlint/internal/rule"
)

// TextOptions controls the human-readable emitter.
type TextOptions struct {
	Color       bool
	Suggestions bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	fileColor = color.New(color.FgCyan, color.Bold)
	dimColor  = color.New(color.Faint)
)

// WriteText renders the report grouped by file:
//
//	app/screens/home.tsx
//	  12:3  error    barrel re-export (export * from ...)  no-barrel-exports
//	  40:9  warning  console call left in source           no-console
//
// followed by a summary line. Deterministic given a Report.
func WriteText(w io.Writer, r *Report, opts TextOptions) error {
	sprint := func(c *color.Color, s string) string {
		if !opts.Color {
			return s
		}
		return c.Sprint(s)
	}

	files, groups := r.byFile()
	for _, file := range files {
		if _, err := fmt.Fprintln(w, sprint(fileColor, file)); err != nil {
			return err
		}
		for _, v := range groups[file] {
			sev := sprint(warnColor, "warning")
			if v.Severity == rule.SeverityError {
				sev = sprint(errColor, "error")
			}
			if _, err := fmt.Fprintf(w, "  %d:%d  %s  %s  %s\n",
				v.Line, v.Column, sev, v.Message, sprint(dimColor, v.RuleID)); err != nil {
				return err
			}
			if opts.Suggestions && v.Suggestion != "" {
				if _, err := fmt.Fprintf(w, "        %s\n", sprint(dimColor, v.Suggestion)); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	errors, warnings := r.Counts()
	total := errors + warnings
	if total == 0 {
		_, err := fmt.Fprintf(w, "%d files scanned, no violations\n", r.FilesScanned)
		return err
	}
	summary := fmt.Sprintf("%d problem%s (%d error%s, %d warning%s) in %d files scanned",
		total, plural(total), errors, plural(errors), warnings, plural(warnings), r.FilesScanned)
	if errors > 0 {
		summary = sprint(errColor, summary)
	} else {
		summary = sprint(warnColor, summary)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
