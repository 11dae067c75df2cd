package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent menu selections",
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded selections",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of selections to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(getBaseDir())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	rows, err := store.Recent(limit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No selections recorded yet.")
		return nil
	}

	for _, sel := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %-12s %s\n",
			sel.SelectedAt.Format("2006-01-02 15:04:05"),
			sel.Label, sel.Value, sel.Placement)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := history.Open(getBaseDir())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
