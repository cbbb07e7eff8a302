package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sourcescout/internal/domain"
	"sourcescout/internal/index"
	"sourcescout/internal/ports"
)

// Service exposes the source index over MCP. The collection is
// single-owner, and MCP handlers may run concurrently, so every tool
// call goes through the mutex.
type Service struct {
	mu         sync.Mutex
	collection *index.Collection
	actions    ports.Actions
}

// NewService wraps a collection and host actions for MCP access.
func NewService(collection *index.Collection, actions ports.Actions) *Service {
	return &Service{collection: collection, actions: actions}
}

// RegisterTools adds all source-search tools to the MCP server.
func RegisterTools(s *server.MCPServer, svc *Service) {
	s.AddTool(searchTool(), svc.searchHandler)
	s.AddTool(listTypesTool(), svc.listTypesHandler)
	s.AddTool(refreshTool(), svc.refreshHandler)
	s.AddTool(openPropertiesTool(), svc.openPropertiesHandler)
	s.AddTool(openFiltersTool(), svc.openFiltersHandler)
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search sources, scenes, groups and filters by name. Returns one row per match with its type and where it lives."),
		mcp.WithString("query",
			mcp.Description("Substring to match against live names, case-insensitive. Empty returns everything in scope."),
		),
		mcp.WithString("type",
			mcp.Description("Source type id to restrict to (e.g. dshow_input). Omit or \"all\" for no restriction."),
		),
		mcp.WithString("scope",
			mcp.Description("What to return: sources, filters, or all. Defaults to sources."),
		),
	)
}

func (svc *Service) searchHandler(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	typeFilter := req.GetString("type", "all")
	scope := index.ParseScope(req.GetString("scope", ""))

	svc.mu.Lock()
	results := index.ApplyScope(svc.collection.Search(query, typeFilter), scope)
	rows := make([]string, 0, len(results))
	for _, it := range results {
		rows = append(rows, formatItem(it, svc.collection.TypeDisplay(it.TypeID)))
	}
	svc.mu.Unlock()

	if len(rows) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}
	return mcp.NewToolResultText(strings.Join(rows, "\n")), nil
}

func formatItem(it *domain.Item, typeDisplay string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s [%s]", it.UUID, it.DisplayName(), typeDisplay)
	if it.IsFilter() {
		if parent := it.ParentSource(); parent != "" {
			fmt.Fprintf(&sb, " on: %s", parent)
		}
	} else if parents := it.ParentScenes(); len(parents) > 0 {
		fmt.Fprintf(&sb, " in: %s", strings.Join(parents, ", "))
	}
	return sb.String()
}

// --- list_types ---

func listTypesTool() mcp.Tool {
	return mcp.NewTool("list_types",
		mcp.WithDescription("List the source type ids discovered in the current index, with display names."),
	)
}

func (svc *Service) listTypesHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	svc.mu.Lock()
	types := svc.collection.Types()
	svc.mu.Unlock()

	if len(types) == 0 {
		return mcp.NewToolResultText("No types discovered."), nil
	}
	var sb strings.Builder
	for _, t := range types {
		fmt.Fprintf(&sb, "%s  %s\n", t.ID, t.Display)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// --- refresh ---

func refreshTool() mcp.Tool {
	return mcp.NewTool("refresh",
		mcp.WithDescription("Rebuild the source index from the live object graph."),
	)
}

func (svc *Service) refreshHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	svc.mu.Lock()
	svc.collection.Refresh()
	n := svc.collection.Len()
	svc.mu.Unlock()

	return mcp.NewToolResultText(fmt.Sprintf("Indexed %d items.", n)), nil
}

// --- open_properties / open_filters ---

func openPropertiesTool() mcp.Tool {
	return mcp.NewTool("open_properties",
		mcp.WithDescription("Open the properties dialog for a source by UUID."),
		mcp.WithString("uuid",
			mcp.Description("Source UUID as returned by search"),
			mcp.Required(),
		),
	)
}

func (svc *Service) openPropertiesHandler(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uuid := req.GetString("uuid", "")
	if uuid == "" {
		return toolError(fmt.Errorf("uuid is required"))
	}
	if err := svc.actions.OpenProperties(uuid); err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("ok"), nil
}

func openFiltersTool() mcp.Tool {
	return mcp.NewTool("open_filters",
		mcp.WithDescription("Open the filters dialog for a source by UUID."),
		mcp.WithString("uuid",
			mcp.Description("Source UUID as returned by search"),
			mcp.Required(),
		),
	)
}

func (svc *Service) openFiltersHandler(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uuid := req.GetString("uuid", "")
	if uuid == "" {
		return toolError(fmt.Errorf("uuid is required"))
	}
	if err := svc.actions.OpenFilters(uuid); err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("ok"), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
