package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sourcescout/internal/adapters/sqlite"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent searches from the state store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(cfg.StateDB)
		if err != nil {
			return err
		}
		defer store.Close()

		queries, err := store.RecentSearches(recentLimit)
		if err != nil {
			return err
		}
		if len(queries) == 0 {
			fmt.Println("No recent searches")
			return nil
		}
		for _, q := range queries {
			fmt.Println(q)
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "number of searches to show")
	rootCmd.AddCommand(recentCmd)
}
