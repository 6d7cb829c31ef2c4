// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/rnlint/internal/rule"
)

type ruleListItem struct {
	ID          string `json:"id"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
}

func newRulesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]ruleListItem, 0)
			for _, r := range rule.All() {
				items = append(items, ruleListItem{
					ID:          r.ID,
					Severity:    string(r.Severity),
					Description: r.Description,
					Suggestion:  r.Suggestion,
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"rules": items})
			}
			for _, item := range items {
				if _, err := fmt.Fprintf(out, "%-32s %-8s %s\n", item.ID, item.Severity, item.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output rules in JSON")
	return cmd
}
