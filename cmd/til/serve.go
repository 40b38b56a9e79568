package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal"
	pkgconfig "github.com/tilkit/til/pkg/config"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP server with live file watching and SSE updates",
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("serve error: %w", err)
	}
	return nil
}
