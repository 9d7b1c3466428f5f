package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ferrovia/breachpath/engine"
	"github.com/ferrovia/breachpath/mission"
)

func newRunCmd() *cobra.Command {
	var (
		scenarioPath string
		cacheDir     string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Expand a target-set expression and assemble adversary paths against a scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.Disabled
			if verbose {
				level = zerolog.InfoLevel
			}
			logger := zerolog.New(cmd.ErrOrStderr()).Level(level).With().Timestamp().Logger()

			g, cat, cfg, expr, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}

			outcome, err := engine.Run(context.Background(), engine.Params{
				Graph:      g,
				Catalog:    cat,
				Config:     cfg,
				Expression: expr,
				CacheDir:   cacheDir,
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			return printOutcome(cmd, outcome)
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to the JSON scenario document")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory for persisted segment cache artifacts")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log per-key scheduler progress")
	_ = cmd.MarkFlagRequired("scenario")
	_ = cmd.MarkFlagRequired("cache-dir")

	return cmd
}

func printOutcome(cmd *cobra.Command, outcome engine.Outcome) error {
	out := cmd.OutOrStdout()

	width := len(fmt.Sprintf("%d", len(outcome.Result.Valid)))
	if width == 0 {
		width = 1
	}

	for i, p := range outcome.Result.Valid {
		if _, err := fmt.Fprintln(out, mission.FormatLine(i+1, p, width)); err != nil {
			return err
		}
	}

	if len(outcome.Result.Invalid) > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d budget-exceeding path(s)\n", len(outcome.Result.Invalid))
	}

	return nil
}
