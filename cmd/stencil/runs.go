package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencilframe/stencil/pkg/stencil/history"
)

var runsHistoryDB string

// runsCmd lists recorded runs from a history store.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs in an answer history store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewSQLiteStore(runsHistoryDB)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()

		runs, err := store.List()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), faintStyle.Render("no recorded runs"))
			return nil
		}

		for _, info := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
				titleStyle.Render(info.RunID),
				info.Timestamp.Format("2006-01-02 15:04:05"),
				faintStyle.Render(fmt.Sprintf("%d bytes", info.Size)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().StringVar(&runsHistoryDB, "history", "answers.db", "SQLite file for answer history")
}
