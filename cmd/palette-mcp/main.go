package main

import (
	"context"
	"flag"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	mcpadapter "palette/internal/adapters/mcp"
	"palette/internal/bootstrap"
	"palette/internal/config"
	"palette/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("palette-mcp: failed to load config")
	}

	projectFlag := flag.String("project", cfg.ProjectRoot, "project root")
	collectionFlag := flag.String("collection", cfg.Collection, "collection file, .json or .yaml")
	flag.Parse()
	cfg.ProjectRoot = *projectFlag
	cfg.Collection = *collectionFlag

	// stdout carries the protocol; logs go to the file only
	logging.SetupLogger(cfg.Verbosity, nil)

	env, err := bootstrap.Open(cfg, "mcp")
	if err != nil {
		log.Fatal().Err(err).Msg("palette-mcp: failed to open workspace")
	}
	defer env.Close()

	mcpServer := server.NewMCPServer(
		"palette-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	ws := &mcpadapter.Workspace{
		Store: env.Store,
		Host:  env.Host,
		Index: env.Index,
	}
	mcpadapter.RegisterReadTools(mcpServer, ws)
	mcpadapter.RegisterWriteTools(mcpServer, ws)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Error().Err(err).Msg("palette-mcp: server stopped")
	}
}
