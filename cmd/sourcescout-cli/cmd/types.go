package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the source types discovered in the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		types := collection.Types()
		if len(types) == 0 {
			fmt.Println("No types discovered")
			return nil
		}
		for _, t := range types {
			fmt.Printf("%-28s %s\n", t.ID, t.Display)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
