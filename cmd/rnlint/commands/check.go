// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/rnlint/cmd/rnlint/internal/clierr"
	"github.com/bartekus/rnlint/internal/config"
	"github.com/bartekus/rnlint/internal/evaluate"
	"github.com/bartekus/rnlint/internal/logging"
	"github.com/bartekus/rnlint/internal/projectroot"
	"github.com/bartekus/rnlint/internal/report"
	"github.com/bartekus/rnlint/internal/rule"
	"github.com/bartekus/rnlint/internal/scanner"
)

type checkFlags struct {
	format        string
	severity      string
	configPath    string
	output        string
	jobs          int
	failOnWarning bool
	gitTracked    bool
	noColor       bool
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Scan a project tree and report guideline violations",
		Long: `Scan the project at path (default: current directory), evaluate every
enabled rule against each source file, and emit a report.

Exit codes: 0 no error violations, 1 error-severity violations found,
2 invocation or configuration failure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			return runCheck(cmd, target, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format (text|json)")
	cmd.Flags().StringVar(&flags.severity, "severity", "", "minimum severity to report (warning|error)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default: .rnlint.yml at the project root)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().BoolVar(&flags.failOnWarning, "fail-on-warning", false, "exit non-zero on warnings too")
	cmd.Flags().BoolVar(&flags.gitTracked, "git", false, "scan git-tracked files only")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colorized output")

	return cmd
}

func runCheck(cmd *cobra.Command, target string, flags checkFlags) error {
	ctx := cmd.Context()

	info, err := os.Stat(target)
	if err != nil {
		return clierr.Wrap(clierr.CodeUsage, "cannot scan "+target, err)
	}
	if !info.IsDir() {
		return clierr.Newf(clierr.CodeUsage, "%s is not a directory", target)
	}

	// Config: explicit flag, or discovery at the project root.
	cfgPath := flags.configPath
	if cfgPath == "" {
		cfgPath = config.Discover(projectroot.Find(target))
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return clierr.Wrap(clierr.CodeUsage, "configuration", err)
	}

	logLevel := cfg.Logging.Level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}
	logging.Init(cfg.Logging.Format, logLevel)

	rules, err := activeRules(cfg)
	if err != nil {
		return clierr.Wrap(clierr.CodeUsage, "configuration", err)
	}

	minSev := rule.Severity("")
	if flags.severity != "" {
		minSev, err = rule.ParseSeverity(flags.severity)
		if err != nil {
			return clierr.Wrap(clierr.CodeUsage, "--severity", err)
		}
	}

	var scanOpts []scanner.Option
	if flags.gitTracked || cfg.Scan.GitTracked {
		scanOpts = append(scanOpts, scanner.WithGitTracked())
	}
	scn := scanner.New(target, scanOpts...)
	files, err := scn.FilesFiltered(ctx, scanner.FilterOptions{
		ExcludeDirs:       cfg.Scan.ExcludeDirs,
		IncludeExtensions: cfg.Scan.Extensions,
	})
	if err != nil {
		return clierr.Wrap(clierr.CodeUsage, "scanning "+target, err)
	}

	jobs := flags.jobs
	if jobs == 0 {
		jobs = cfg.Scan.Jobs
	}
	violations, err := evaluate.Run(ctx, target, files, rules, evaluate.Options{
		Jobs:        jobs,
		MaxFileSize: cfg.Scan.MaxFileSize,
		MinSeverity: minSev,
	})
	if err != nil {
		// cancelled or aborted: partial results are not a valid report
		return clierr.Wrap(clierr.CodeUsage, "evaluation failed", err)
	}

	rep := report.New(violations, len(files))
	if err := emit(cmd.OutOrStdout(), rep, flags); err != nil {
		return clierr.Wrap(clierr.CodeUsage, "writing report", err)
	}

	if code := rep.ExitCode(flags.failOnWarning); code != 0 {
		errs, warns := rep.Counts()
		return clierr.Newf(code, "found %d error(s), %d warning(s)", errs, warns)
	}
	return nil
}

// activeRules assembles built-ins plus configured packs with the
// config's disabled list and severity overrides applied.
func activeRules(cfg config.Config) ([]rule.Rule, error) {
	var extra []rule.Rule
	for _, packPath := range cfg.Rules.Packs {
		packRules, err := rule.LoadPack(packPath)
		if err != nil {
			return nil, err
		}
		extra = append(extra, packRules...)
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	return rule.Load(settings, extra...)
}

func emit(stdout io.Writer, rep *report.Report, flags checkFlags) error {
	w := stdout
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	switch flags.format {
	case "json":
		return report.WriteJSON(w, rep)
	case "text", "":
		return report.WriteText(w, rep, report.TextOptions{
			Color:       !flags.noColor && flags.output == "" && isTerminal(stdout),
			Suggestions: true,
		})
	default:
		return fmt.Errorf("unknown format %q (want text or json)", flags.format)
	}
}

// isTerminal is a conservative guess: cobra hands us os.Stdout in real
// runs and a buffer in tests, where color codes would pollute assertions.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
