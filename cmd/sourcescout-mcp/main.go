package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "sourcescout/internal/adapters/mcp"
	"sourcescout/internal/adapters/project"
	"sourcescout/internal/config"
	"sourcescout/internal/index"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("sourcescout-mcp: %v", err)
	}

	projectFlag := flag.String("project", cfg.Project, "path to the project file")
	flag.Parse()

	if *projectFlag == "" {
		log.Fatalf("sourcescout-mcp: no project file: pass -project or set project in %s", config.Path())
	}

	graph, err := project.Load(*projectFlag)
	if err != nil {
		log.Fatalf("sourcescout-mcp: %v", err)
	}

	// File edits land in the graph; clients pick them up via the refresh tool.
	if watcher, err := project.Watch(*projectFlag, graph); err == nil {
		defer watcher.Close()
	}

	collection := index.NewCollection(graph)
	collection.Refresh()

	mcpServer := server.NewMCPServer(
		"sourcescout-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, mcpadapter.NewService(collection, graph))

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("sourcescout-mcp: %v", err)
	}
}
