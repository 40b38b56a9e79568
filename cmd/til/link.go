package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal/links"
)

func linkCommand() *cli.Command {
	return &cli.Command{
		Name:      "link",
		Aliases:   []string{"l"},
		Usage:     "Record a URL in this month's link file under today's date",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "Link text (defaults to the bare URL)",
			},
			&cli.StringFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Tag rendered as #tag",
			},
			&cli.StringFlag{
				Name:    "snippet",
				Aliases: []string{"s"},
				Usage:   "One-line description",
			},
			&cli.BoolFlag{
				Name:    "fetch",
				Aliases: []string{"f"},
				Usage:   "Fetch the page's Open Graph metadata to fill title and snippet",
			},
		},
		Action: runLink,
	}
}

func runLink(ctx context.Context, cmd *cli.Command) error {
	url := cmd.Args().First()
	if url == "" {
		return fmt.Errorf("url is required")
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	opts := links.Options{
		Title:   cmd.String("title"),
		Tag:     cmd.String("tag"),
		Snippet: cmd.String("snippet"),
	}
	if opts.Tag == "" {
		opts.Tag = env.cfg.Journal.DefaultLinkTag
	}

	if cmd.Bool("fetch") {
		meta := links.NewFetcher(env.store, nil).Fetch(ctx, url)
		if opts.Title == "" {
			opts.Title = meta.Title
		}
		if opts.Snippet == "" {
			opts.Snippet = meta.Description
		}
	}

	filePath, err := links.NewManager(env.store).Add(url, env.svc.Today(), opts)
	if err != nil {
		if errors.Is(err, links.ErrDuplicate) {
			fmt.Println("🔁 Already recorded today.")
			return nil
		}
		return err
	}
	fmt.Printf("🔗 Recorded in %s\n", filePath)
	return nil
}
