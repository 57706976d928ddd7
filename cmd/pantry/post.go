// Post command: publish a locally authored recipe into the catalog.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cookpedia/pantry/internal/resolver"
	"github.com/cookpedia/pantry/pkg/types"
)

var postCmd = &cobra.Command{
	Use:   "post <recipe.json>",
	Short: "Publish a recipe from a local JSON file",
	Long: `Post reads a raw post object (the content-service shape: menu_name,
story, categories_tags, ...) from a JSON file, normalizes it, and publishes
it through the live update channel. The record lands in the creation
journal, so later searches include it without waiting for the content
service to serve it back.

A missing post_id is filled with a generated UUID.`,
	Args: cobra.ExactArgs(1),
	RunE: runPost,
}

func runPost(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read recipe file: %w", err)
	}

	var post types.RawPost
	if err := json.Unmarshal(data, &post); err != nil {
		return fmt.Errorf("parse recipe file: %w", err)
	}
	if post.PostID == nil || post.PostID == "" {
		post.PostID = generateID()
	}

	recipe, err := resolver.Normalize(types.RawEnvelope{Post: &post})
	if err != nil {
		return fmt.Errorf("normalize recipe: %w", err)
	}

	store, journal, err := openCatalog()
	if err != nil {
		return err
	}
	defer journal.Close()

	store.PublishCreated(recipe)

	if flagJSON {
		return printRecipes([]types.Recipe{recipe})
	}
	fmt.Printf("published %s  %s\n", recipe.ID, recipe.Title)
	return nil
}

// generateID generates a UUID v7 identifier, falling back to v4 if the
// clock-based generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
