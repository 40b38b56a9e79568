package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal/template"
)

func templateCommand() *cli.Command {
	return &cli.Command{
		Name:    "template",
		Aliases: []string{"tpl"},
		Usage:   "Manage entry templates",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List builtin and user templates",
				Action: runTemplateList,
			},
			{
				Name:      "show",
				Usage:     "Print a template body",
				ArgsUsage: "<id>",
				Action:    runTemplateShow,
			},
			{
				Name:      "add",
				Usage:     "Create a user template (body read from --body-file or stdin)",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "Display name (defaults to the id)",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Short description",
					},
					&cli.StringFlag{
						Name:  "body-file",
						Usage: "Read the template body from this file",
					},
				},
				Action: runTemplateAdd,
			},
			{
				Name:      "rm",
				Usage:     "Delete a user template",
				ArgsUsage: "<id>",
				Action:    runTemplateRm,
			},
		},
	}
}

func runTemplateList(ctx context.Context, cmd *cli.Command) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	for _, tpl := range env.svc.Templates().List() {
		marker := " "
		if template.IsBuiltin(tpl.ID) {
			marker = "*"
		}
		fmt.Printf("%s %-10s %s\n", marker, tpl.ID, tpl.Description)
	}
	fmt.Println("\n* builtin")
	return nil
}

func runTemplateShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("template id is required")
	}
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	tpl, err := env.svc.Templates().Get(id)
	if err != nil {
		return err
	}
	fmt.Print(tpl.Body)
	return nil
}

func runTemplateAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("template id is required")
	}
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	var body []byte
	if f := cmd.String("body-file"); f != "" {
		body, err = os.ReadFile(f)
	} else {
		body, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read template body: %w", err)
	}

	name := cmd.String("name")
	if name == "" {
		name = id
	}
	if _, err := env.svc.Templates().Create(id, name, cmd.String("description"), string(body)); err != nil {
		return err
	}
	fmt.Printf("✨ Template %s created\n", id)
	return nil
}

func runTemplateRm(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("template id is required")
	}
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	if err := env.svc.Templates().Delete(id); err != nil {
		return err
	}
	fmt.Printf("🗑  Template %s deleted\n", id)
	return nil
}
