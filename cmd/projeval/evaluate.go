package main

import (
	"errors"
	"fmt"

	"github.com/rpgo/project-evaluator/internal/calculation"
	"github.com/rpgo/project-evaluator/internal/config"
	"github.com/rpgo/project-evaluator/internal/output"
	"github.com/spf13/cobra"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		configFile string
		format     string
		write      bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the solar and wind scenarios of a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return errors.New("--config is required")
			}
			if format == "" {
				format = a.settings.Output.Format
			}

			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}

			evaluator := calculation.NewEvaluator()
			evaluator.SetLogger(a.logger)
			results, err := evaluator.EvaluatePair(cmd.Context(), cfg.Solar, cfg.Wind)
			if err != nil {
				return err
			}

			if write {
				paths, err := output.GenerateReport(results, format, a.settings.Output.Dir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
				}
				return nil
			}

			data, err := output.Render(results, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario configuration file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "", fmt.Sprintf("output format: %v, or all with --write (default from settings)", output.AvailableFormatterNames()))
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write a timestamped report file to the output directory")
	return cmd
}
