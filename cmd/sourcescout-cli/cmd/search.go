package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sourcescout/internal/adapters/tui/views"
	"sourcescout/internal/index"
)

var (
	searchType  string
	searchScope string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the source index",
	Long: `Search sources, scenes, groups and filters by name. Matching is a
case-insensitive substring test; an empty query returns everything in
scope.

Examples:
  sourcescout-cli search cam
  sourcescout-cli search --scope filters blur
  sourcescout-cli search --type dshow_input`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		scope := index.ParseScope(searchScope)
		results := index.ApplyScope(collection.Search(query, searchType), scope)

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, it := range results {
			fmt.Printf("%s  %s\n", it.UUID, views.FormatResult(it, collection.TypeDisplay(it.TypeID)))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "all", "restrict to a source type id")
	searchCmd.Flags().StringVarP(&searchScope, "scope", "s", "sources", "what to return: sources, filters, or all")
	rootCmd.AddCommand(searchCmd)
}
