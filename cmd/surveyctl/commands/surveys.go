// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/survey-builder/survey"
)

func surveysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surveys",
		Short: "List, show and delete surveys",
	}
	cmd.AddCommand(surveysListCmd(), surveysShowCmd(), surveysDeleteCmd())
	return cmd
}

func surveysListCmd() *cobra.Command {
	var (
		sortBy  string
		starred bool
		query   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List surveys",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}

			now := time.Now()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tOWNER\tDEMOGRAPHICS\tQUESTIONS\tMODIFIED\t")
			for _, s := range survey.List(all, survey.Filter{StarredOnly: starred, Query: query}, sortBy) {
				name := s.Name
				if s.Starred {
					name = "* " + name
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t\n",
					s.ID, name, s.Owner, len(s.Demographics), len(s.Questions),
					humanize.RelTime(s.LastActivity(), now, "ago", "from now"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", survey.SortLastModified, "sort order (last_modified, name, created)")
	cmd.Flags().BoolVar(&starred, "starred", false, "only starred surveys")
	cmd.Flags().StringVar(&query, "q", "", "filter by name")
	return cmd
}

func surveysShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a survey as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := repo.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
}

func surveysDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repo.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
