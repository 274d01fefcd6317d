package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driven/config/file"
	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Controls:
  Enter - Search
  Tab   - Cycle corpus (all, then each in turn)
  ↑/↓   - Navigate results
  Esc   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a rendering bug still leaves a usable terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if searchService == nil {
		return errors.New("search service not configured")
	}

	corpora := file.DefaultCorpora
	if configStore != nil {
		if configured := configStore.GetStringSlice(file.KeyCorpora); len(configured) > 0 {
			corpora = configured
		}
	}

	return tui.Run(cmd.Context(), searchService, corpora)
}
