package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Corpus management commands",
	Long:  `Commands for importing statute corpora and inspecting their state.`,
}

var corpusImportCmd = &cobra.Command{
	Use:   "import [corpus] [file]",
	Short: "Import statute sections from a JSON file",
	Long: `Imports a corpus from a JSON array of section records, replacing any
previously imported sections. Record keys follow the source datasets:
"section" (or "Section"), "section_title" (or "title") and
"section_desc" (or "description"). The vector index is not rebuilt
automatically; run "sanhita index build" afterwards.`,
	Args: cobra.ExactArgs(2),
	RunE: runCorpusImport,
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List corpora and their index state",
	RunE:  runCorpusList,
}

func init() {
	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusListCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	corpus, path := args[0], args[1]

	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	records, err := readSectionFile(path)
	if err != nil {
		return err
	}

	count, err := corpusService.Import(cmd.Context(), corpus, records)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d sections into %s.\n", count, corpus)
	return nil
}

func runCorpusList(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	infos, err := corpusService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing corpora failed: %w", err)
	}

	if len(infos) == 0 {
		cmd.Println("No corpora configured.")
		return nil
	}

	cmd.Printf("%-12s %10s  %s\n", "CORPUS", "SECTIONS", "INDEXED")
	for _, info := range infos {
		indexed := "no"
		if info.Indexed {
			indexed = "yes"
		}
		cmd.Printf("%-12s %10d  %s\n", info.ID, info.Sections, indexed)
	}
	return nil
}

// readSectionFile parses a JSON array of section records. The source
// datasets are inconsistent about key casing and naming, so each field
// is resolved from its known aliases.
func readSectionFile(path string) ([]domain.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	sections := make([]domain.Section, len(raw))
	for i, rec := range raw {
		sections[i] = domain.Section{
			Number:      pickField(rec, "section", "Section"),
			Title:       pickField(rec, "section_title", "title"),
			Description: pickField(rec, "section_desc", "description"),
		}
	}
	return sections, nil
}

// pickField returns the first non-empty value among the given keys,
// rendering numeric values as their decimal form.
func pickField(rec map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return formatNumber(v)
		}
	}
	return ""
}

// formatNumber renders a JSON number without a trailing ".0" for
// integral values, so section 302 imports as "302".
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
