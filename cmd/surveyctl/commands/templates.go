// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/survey"
)

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Print the demographic and question templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(tw, "DEMOGRAPHIC\tLABEL\tRANGES\t")
			for _, t := range demographics.DefaultCatalog().List() {
				parts := make([]string, 0, t.Ranges.Len())
				for _, r := range t.Ranges.Ranges() {
					parts = append(parts, fmt.Sprintf("%s %s%%", r.Label, humanize.Ftoa(r.Value)))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t\n", t.ID, t.Label, strings.Join(parts, ", "))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", demographics.CustomTemplateID, "Custom", "Option 1 50%, Option 2 50%")

			fmt.Fprintln(tw, "\t\t\t")
			fmt.Fprintln(tw, "QUESTION\tLABEL\tICON\t")
			for _, t := range survey.QuestionTemplates() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t\n", t.ID, t.Label, t.Icon)
			}
			return tw.Flush()
		},
	}
}
