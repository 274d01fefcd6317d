package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

var (
	searchCorpus string
	searchLimit  int
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search statute sections by meaning",
	Long: `Searches statute sections semantically: the query is embedded and
ranked against the vector index by cosine similarity.

By default all configured corpora are searched together. Use --corpus
to restrict the query to a single act.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCorpus, "corpus", "c", "all", "corpus to search, or \"all\"")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	scope := domain.AllCorpora()
	if searchCorpus != "" && searchCorpus != "all" {
		scope = domain.SingleCorpus(searchCorpus)
	}

	matches, err := searchService.Search(cmd.Context(), query, scope, domain.SearchOptions{
		Limit: searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputMatchesJSON(cmd, matches)
	}

	return outputMatchesTable(cmd, matches)
}

func outputMatchesJSON(cmd *cobra.Command, matches []domain.Match) error {
	if matches == nil {
		matches = []domain.Match{}
	}

	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMatchesTable(cmd *cobra.Command, matches []domain.Match) error {
	if len(matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, m := range matches {
		cmd.Printf("  [%d] %s §%s: %s (%.3f)\n", i+1, m.Corpus, m.Number, m.Title, m.Score)
		if m.Description != "" {
			cmd.Printf("      %s\n", m.Description)
		}
		cmd.Println()
	}

	return nil
}
