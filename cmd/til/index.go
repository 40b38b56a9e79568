package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal/toc"
)

func indexCommand() *cli.Command {
	return &cli.Command{
		Name:   "index",
		Usage:  "Regenerate the README.md index of all entries",
		Action: runIndex,
	}
}

func runIndex(ctx context.Context, cmd *cli.Command) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	count, err := toc.Update(env.store)
	if err != nil {
		return err
	}
	fmt.Printf("📚 README.md updated (%d entries)\n", count)
	return nil
}

func syncCommand() *cli.Command {
	return &cli.Command{
		Name:   "sync",
		Usage:  "Rebuild the search index from the journal directory",
		Action: runSync,
	}
}

func runSync(ctx context.Context, cmd *cli.Command) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	db, err := openSyncedIndex(env)
	if err != nil {
		return err
	}
	defer db.Close()

	paths, err := db.AllPaths()
	if err != nil {
		return err
	}
	fmt.Printf("🔄 Index synced (%d files)\n", len(paths))
	return nil
}
