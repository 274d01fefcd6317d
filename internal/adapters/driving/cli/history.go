package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search queries",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	entries, err := corpusService.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("reading history failed: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No searches recorded.")
		return nil
	}

	for _, entry := range entries {
		cmd.Printf("%s  %-8s  %s\n", entry.Timestamp.Format("2006-01-02 15:04"), entry.Corpus, entry.Query)
	}
	return nil
}
