package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal/index"
	"github.com/tilkit/til/internal/ux"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Full-text search across journal entries",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of results",
				Value:   20,
			},
		},
		Action: runSearch,
	}
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.Args().First()
	if query == "" {
		return fmt.Errorf("query is required")
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	db, err := openSyncedIndex(env)
	if err != nil {
		return err
	}
	defer db.Close()

	hits, err := db.Search(query, int(cmd.Int("limit")))
	if err != nil {
		return err
	}
	fmt.Print(ux.SearchResults(hits))
	return nil
}

// openSyncedIndex opens the SQLite index and brings it up to date with
// the journal directory before use.
func openSyncedIndex(env *appEnv) (*index.DB, error) {
	db, err := index.Open(env.cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := index.Sync(db, env.store, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("sync index: %w", err)
	}
	return db, nil
}
