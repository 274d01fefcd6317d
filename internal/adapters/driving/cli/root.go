// Package cli implements the command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driving"
	"github.com/sanhita-labs/sanhita-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose bool
	dataDir string
)

// Services the commands run against. Wired by initServices on first
// use; tests replace them with stubs.
var (
	configStore   driven.ConfigStore
	searchService driving.SearchService
	indexService  driving.IndexService
	corpusService driving.CorpusService
)

// skipInit disables service construction so tests can wire stubs
// without touching the filesystem.
var skipInit bool

var rootCmd = &cobra.Command{
	Use:   "sanhita",
	Short: "Semantic search over statute law",
	Long: `Sanhita searches statute sections by meaning rather than keyword.

Sections are imported per corpus (e.g. ipc, crpc, mv_act), embedded
offline into a vector index, and queried with cosine similarity. A
query can target one corpus or rank across all of them at once.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if skipInit {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "base directory for config, data and index (default ~/.sanhita)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
