package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexAll bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Vector index commands",
	Long:  `Commands for building the per-corpus vector index.`,
}

var indexBuildCmd = &cobra.Command{
	Use:   "build [corpus]",
	Short: "Build the vector index for a corpus",
	Long: `Embeds every imported section of a corpus and writes the vector
index used by search. Rebuilding replaces the previous index.

Pass a corpus identifier, or --all to rebuild every configured corpus
that has imported sections.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndexBuild,
}

func init() {
	indexBuildCmd.Flags().BoolVar(&indexAll, "all", false, "build every configured corpus")
	indexCmd.AddCommand(indexBuildCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if indexAll {
		if len(args) > 0 {
			return errors.New("--all cannot be combined with a corpus argument")
		}

		count, err := indexService.BuildAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("index build failed: %w", err)
		}
		cmd.Printf("Indexed %d sections across all corpora.\n", count)
		return nil
	}

	if len(args) == 0 {
		return errors.New("a corpus argument or --all is required")
	}

	count, err := indexService.Build(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}
	cmd.Printf("Indexed %d sections of %s.\n", count, args[0])
	return nil
}
