// Search command: fetch the catalog and run a multi-facet filter over it.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cookpedia/pantry/internal/catalog"
	"github.com/cookpedia/pantry/internal/content"
	"github.com/cookpedia/pantry/internal/recentlog"
	"github.com/cookpedia/pantry/pkg/types"
)

var (
	flagText        string
	flagIngredients []string
	flagCategories  []string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the recipe catalog",
	Long: `Search fetches the catalog from the content service, merges in the
local creation journal, and filters by free text, ingredients, and
categories. All criteria are ANDed; each ingredient keyword must match at
least one of a recipe's ingredient tags or ingredient lines.

Example:
  pantry search --text curry
  pantry search --ingredient chili --ingredient garlic
  pantry search --category vegetarian --category quick`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagText, "text", "", "free-text query against title and description")
	searchCmd.Flags().StringArrayVar(&flagIngredients, "ingredient", nil, "required ingredient keyword (repeatable)")
	searchCmd.Flags().StringArrayVar(&flagCategories, "category", nil, "required category slug (repeatable)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, journal, err := openCatalog()
	if err != nil {
		return err
	}
	defer journal.Close()

	client, err := content.NewClient(cfg.APIBase)
	if err != nil {
		return err
	}
	if err := store.Refresh(cmd.Context(), client); err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	if err := store.Hydrate(); err != nil {
		return fmt.Errorf("hydrate from journal: %w", err)
	}

	results := store.Filter(types.Criteria{
		Text:        flagText,
		Ingredients: flagIngredients,
		Categories:  flagCategories,
	})

	return printRecipes(results)
}

// openCatalog builds a store backed by the creation journal in the data
// directory.
func openCatalog() (*catalog.Store, *recentlog.Journal, error) {
	journal, err := recentlog.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	return catalog.NewStore(catalog.WithJournal(journal)), journal, nil
}

// printRecipes writes results as JSON or a short text listing.
func printRecipes(recipes []types.Recipe) error {
	if flagJSON {
		out, err := json.MarshalIndent(recipes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%d dishes found\n", len(recipes))
	for _, r := range recipes {
		line := r.ID + "  " + r.Title
		if len(r.Categories) > 0 {
			line += "  [" + strings.Join(r.Categories, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}
