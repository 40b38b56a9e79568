package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal/journal"
	"github.com/tilkit/til/internal/links"
	"github.com/tilkit/til/internal/mcpserver"
)

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:   "mcp",
		Usage:  "Run the MCP server on stdin/stdout for LLM integration",
		Action: runMCP,
	}
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	db, err := openSyncedIndex(env)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := journal.NewService(env.store, env.svc.Templates(), db, nil)

	srv := mcpserver.New(svc, db, links.NewManager(env.store))
	return srv.ServeStdio()
}
