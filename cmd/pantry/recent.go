// Recent command: list the local creation journal.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cookpedia/pantry/internal/recentlog"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recipes created in recent sessions",
	Long: `Recent lists the bounded creation journal: the recipes posted from
this machine that the catalog replays at startup so they never go missing
between a creation and the next full fetch.`,
	RunE: runRecent,
}

func runRecent(cmd *cobra.Command, args []string) error {
	journal, err := recentlog.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer journal.Close()

	recipes, err := journal.Recent()
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	return printRecipes(recipes)
}
