package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sourcescout/internal/adapters/project"
	"sourcescout/internal/index"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the project file and reindex on change",
	Long: `Watch the project file for edits, reindex after each mutation burst
settles, and print the new index size. Stop with ctrl+c.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		watcher, err := project.Watch(projectPath, graph)
		if err != nil {
			return err
		}
		defer watcher.Close()

		coalescer := index.NewCoalescer(cfg.RefreshDebounce())
		defer coalescer.Stop()

		unsubscribe, err := graph.Subscribe(coalescer.Notify)
		if err != nil {
			return err
		}
		defer unsubscribe()
		coalescer.Prime()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("watching %s (%d items indexed)\n", projectPath, collection.Len())

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-coalescer.C():
				collection.Refresh()
				fmt.Printf("%s  reindexed: %d items\n",
					time.Now().Format(time.TimeOnly), collection.Len())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
