package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tilkit/til/internal/streak"
	"github.com/tilkit/til/internal/ux"
)

func streakCommand() *cli.Command {
	return &cli.Command{
		Name:  "streak",
		Usage: "Show writing streaks and the contribution calendar",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "weeks",
				Aliases: []string{"w"},
				Usage:   "Number of weeks shown in the grass grid",
				Value:   streak.DefaultWeeks,
			},
			&cli.BoolFlag{
				Name:  "weekly",
				Usage: "Also show the per-weekday pattern",
			},
		},
		Action: runStreak,
	}
}

func runStreak(ctx context.Context, cmd *cli.Command) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	stats, err := env.svc.Stats()
	if err != nil {
		return err
	}
	fmt.Print(ux.StreakReport(stats))

	if stats.TotalDays == 0 {
		return nil
	}

	grid, err := env.svc.Grass(int(cmd.Int("weeks")))
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(ux.Grass(grid))

	if cmd.Bool("weekly") {
		fmt.Println()
		fmt.Print(ux.WeeklyPattern(stats.Weekly))
	}
	return nil
}
