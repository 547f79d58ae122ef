// Package mcp provides a Model Context Protocol server for nextkit.
// It exposes the read-only project checks as MCP tools that any MCP-capable
// agent can call.
package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/gorewood/nextkit/internal/docscheck"
	"github.com/gorewood/nextkit/internal/structure"
	"github.com/gorewood/nextkit/internal/updates"
)

// Project is the project the tools operate on.
type Project struct {
	Root     string
	Check    docscheck.Options
	Validate structure.Options
	Updates  updates.Options
	Logger   *zap.Logger
}

func (p Project) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// NewServer creates an MCP server with all nextkit tools registered.
func NewServer(version string, project Project) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "nextkit",
		Version: version,
	}, nil)
	registerTools(server, project)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all nextkit tools to the server.
func registerTools(server *mcp.Server, project Project) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_docs",
		Description: "Check documentation consistency: broken links in the overview, orphaned markdown files, workflow documents missing key references, and malformed checklist boxes.",
		Annotations: readOnlyAnnotations(),
	}, handleCheckDocs(project))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_project",
		Description: "Validate the project skeleton: required files and directories, required npm scripts, and Next.js structure.",
		Annotations: readOnlyAnnotations(),
	}, handleValidateProject(project))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_updates",
		Description: "List template updates newer than the project's templateVersion, grouped by category. Nothing is written.",
		Annotations: readOnlyAnnotations(),
	}, handleCheckUpdates(project, time.Now))
}
