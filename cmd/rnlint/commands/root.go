// SPDX-License-Identifier: AGPL-3.0-or-later

/*
rnlint - guideline checker for React Native + Expo codebases.
It scans a project tree and flags deviations from the team's review
conventions: disallowed imports, deprecated APIs, naming conventions,
and accessibility rules.

Copyright (C) 2026  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the rnlint root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("RNLINT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "rnlint",
		Short:         "rnlint - React Native / Expo guideline checker",
		Long:          "rnlint scans a React Native or Expo project and reports guideline violations: disallowed imports, deprecated APIs, naming conventions, and accessibility rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of rnlint",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rnlint version %s\n", version)
		},
	})

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newRulesCmd())

	return cmd
}
