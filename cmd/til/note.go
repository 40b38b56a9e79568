package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal/apperr"
	"github.com/tilkit/til/internal/parser"
)

func noteCommand() *cli.Command {
	return &cli.Command{
		Name:      "note",
		Aliases:   []string{"n"},
		Usage:     "Create (or open) the entry for a category and date",
		ArgsUsage: "[category]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   "Entry date as YYYY-MM-DD (defaults to today)",
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Template id",
				Value:   "default",
			},
			&cli.BoolFlag{
				Name:  "no-edit",
				Usage: "Print the path instead of opening the editor",
			},
		},
		Action: runNote,
	}
}

func runNote(ctx context.Context, cmd *cli.Command) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	category := cmd.Args().First()
	if category == "" {
		category = env.cfg.Journal.DefaultCategory
	}

	var date time.Time
	if v := cmd.String("date"); v != "" {
		date, err = time.Parse(parser.DateLayout, v)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
	}

	path, err := env.svc.CreateEntry(category, date, cmd.String("template"))
	switch {
	case err == nil:
		fmt.Printf("✨ Created %s\n", path)
	case errors.Is(err, apperr.ErrAlreadyExists):
		fmt.Printf("📖 Opening existing %s\n", path)
	default:
		return err
	}

	abs := filepath.Join(env.store.Root(), path)
	if cmd.Bool("no-edit") {
		fmt.Println(abs)
		return nil
	}
	return openEditor(env.cfg.Journal.Editor, abs)
}

// openEditor launches the configured editor, falling back to $EDITOR.
// With neither set, the path is printed for the user to open themselves.
func openEditor(editor, path string) error {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		fmt.Println(path)
		return nil
	}
	ed := exec.Command(editor, path)
	ed.Stdin = os.Stdin
	ed.Stdout = os.Stdout
	ed.Stderr = os.Stderr
	return ed.Run()
}
