package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sourcescout/internal/adapters/memory"
	"sourcescout/internal/adapters/project"
	"sourcescout/internal/config"
	"sourcescout/internal/index"
)

var (
	projectPath string
	configPath  string

	cfg        config.Config
	graph      *memory.Graph
	collection *index.Collection
)

var rootCmd = &cobra.Command{
	Use:   "sourcescout-cli",
	Short: "CLI for searching sources in a project file",
	Long: `sourcescout-cli searches the scenes, groups, sources and filters of a
project file by name.

It provides commands to search the index, list the discovered source
types, and watch the project file for changes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if projectPath == "" {
			projectPath = cfg.Project
		}
		if projectPath == "" {
			return fmt.Errorf("no project file: pass --project or set project in %s", config.Path())
		}
		graph, err = project.Load(projectPath)
		if err != nil {
			return err
		}
		collection = index.NewCollection(graph)
		collection.Refresh()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", "", "path to the project file")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the config file")
}
