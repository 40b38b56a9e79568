package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal"
	"github.com/tilkit/til/internal/journal"
	"github.com/tilkit/til/internal/storage"
	"github.com/tilkit/til/internal/template"
	pkgconfig "github.com/tilkit/til/pkg/config"
)

func main() {
	cmd := &cli.Command{
		Name:  "til",
		Usage: "Today-I-Learned journal: dated markdown notes, link collection, streaks, and search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "til.yaml",
				Value:       "til.yaml",
				Sources:     cli.EnvVars("TIL_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			noteCommand(),
			linkCommand(),
			searchCommand(),
			streakCommand(),
			templateCommand(),
			zipCommand(),
			indexCommand(),
			syncCommand(),
			serveCommand(),
			mcpCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// appEnv bundles what most subcommands need: the loaded config, the
// journal storage, and the journal service (without the search index,
// which only search and sync open).
type appEnv struct {
	cfg   *internal.Config
	store *storage.FS
	svc   *journal.Service
}

func loadEnv(cmd *cli.Command) (*appEnv, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := os.MkdirAll(cfg.Journal.Path, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	store, err := storage.NewFS(cfg.Journal.Path)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	templates, err := template.NewStore(template.NewFileRegistry(store))
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	svc := journal.NewService(store, templates, nil, nil)
	return &appEnv{cfg: cfg, store: store, svc: svc}, nil
}
