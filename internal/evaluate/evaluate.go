// Package evaluate applies the active rule set to every scanned file.
// The workload is an order-independent map over files: each worker owns
// its parsed file and violation slice exclusively, and a single-threaded
// merge assembles the report afterwards.
package evaluate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bartekus/rnlint/internal/report"
	"github.com/bartekus/rnlint/internal/rule"
	"github.com/bartekus/rnlint/internal/source"
)

// Reserved rule ids for recoverable run diagnostics. They surface in the
// report like any other violation so nothing is silently dropped.
const (
	RuleReadError = "internal:read-error"
	RuleRulePanic = "internal:rule-panic"
)

// Options tunes a run.
type Options struct {
	// Jobs caps parallel workers; <=0 means GOMAXPROCS.
	Jobs int
	// MaxFileSize caps per-file reads; <=0 means source.DefaultMaxFileSize.
	MaxFileSize int64
	// MinSeverity drops violations below this severity from the result.
	MinSeverity rule.Severity
}

// Run evaluates rules against the given files (relative to root) and
// returns the collected violations. A cancelled context fails the whole
// run: partial results are never a valid report.
func Run(ctx context.Context, root string, files []string, rules []rule.Rule, opts Options) ([]report.Violation, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(files) == 0 {
		return nil, nil
	}

	// one slot per file: workers never share state
	slots := make([][]report.Violation, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			slots[i] = evalFile(root, rel, rules, opts.MaxFileSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluation aborted: %w", err)
	}

	var all []report.Violation
	for _, vs := range slots {
		for _, v := range vs {
			if v.Severity.Rank() < opts.MinSeverity.Rank() {
				continue
			}
			all = append(all, v)
		}
	}
	return all, nil
}

// evalFile loads one file and applies every rule in order. Read failures
// and oversized files become a single read-error violation; the file is
// otherwise skipped.
func evalFile(root, rel string, rules []rule.Rule, maxSize int64) []report.Violation {
	f, err := source.Load(filepath.Join(root, filepath.FromSlash(rel)), rel, maxSize)
	if err != nil {
		slog.Debug("skipping unreadable file", "path", rel, "err", err)
		return []report.Violation{{
			RuleID:   RuleReadError,
			File:     rel,
			Line:     1,
			Column:   1,
			Severity: rule.SeverityWarning,
			Message:  fmt.Sprintf("file skipped: %v", err),
		}}
	}

	var out []report.Violation
	for _, r := range rules {
		out = append(out, evalRule(r, f)...)
	}
	return out
}

// evalRule applies one rule to one file. A panicking matcher yields
// exactly one rule-panic violation scoped to that rule/file pair and
// never aborts the rest of the evaluation.
func evalRule(r rule.Rule, f *source.File) (out []report.Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Debug("rule panicked", "rule", r.ID, "path", f.Path, "panic", rec)
			out = []report.Violation{{
				RuleID:   RuleRulePanic,
				File:     f.Path,
				Line:     1,
				Column:   1,
				Severity: rule.SeverityWarning,
				Message:  fmt.Sprintf("rule %s failed on this file: %v", r.ID, rec),
			}}
		}
	}()

	for _, m := range r.Matcher.Check(f) {
		out = append(out, report.Violation{
			RuleID:     r.ID,
			File:       f.Path,
			Line:       m.Line,
			Column:     m.Column,
			Severity:   r.Severity,
			Message:    r.Message(m),
			Suggestion: r.Suggestion,
		})
	}
	return out
}
