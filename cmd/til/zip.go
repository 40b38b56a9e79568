package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal/digest"
	"github.com/tilkit/til/internal/parser"
)

func zipCommand() *cli.Command {
	return &cli.Command{
		Name:  "zip",
		Usage: "Collect a date range of entries into one digest file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "Range start as YYYY-MM-DD",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Range end as YYYY-MM-DD (inclusive)",
			},
			&cli.StringFlag{
				Name:    "month",
				Aliases: []string{"m"},
				Usage:   "Whole month as YYYY-MM (overrides from/to)",
			},
		},
		Action: runZip,
	}
}

func runZip(ctx context.Context, cmd *cli.Command) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	gen := digest.NewGenerator(env.store)

	var file string
	if m := cmd.String("month"); m != "" {
		month, err := time.Parse("2006-01", m)
		if err != nil {
			return fmt.Errorf("month must be YYYY-MM: %w", err)
		}
		file, err = gen.Month(month.Year(), month.Month())
		if err != nil {
			return zipErr(err)
		}
	} else {
		fromStr, toStr := cmd.String("from"), cmd.String("to")
		if fromStr == "" || toStr == "" {
			return fmt.Errorf("either --month or both --from and --to are required")
		}
		from, err := time.Parse(parser.DateLayout, fromStr)
		if err != nil {
			return fmt.Errorf("from must be YYYY-MM-DD: %w", err)
		}
		to, err := time.Parse(parser.DateLayout, toStr)
		if err != nil {
			return fmt.Errorf("to must be YYYY-MM-DD: %w", err)
		}
		file, err = gen.Range(from, to)
		if err != nil {
			return zipErr(err)
		}
	}

	fmt.Printf("📦 Digest written to %s\n", file)
	return nil
}

func zipErr(err error) error {
	if errors.Is(err, digest.ErrEmptyRange) {
		return fmt.Errorf("no entries in the requested range")
	}
	return err
}
