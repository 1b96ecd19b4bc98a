package main

import (
	"fmt"

	"github.com/rpgo/project-evaluator/internal/config"
	"github.com/rpgo/project-evaluator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print or write an example scenario configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if out != "" {
				if err := output.SaveConfiguration(cfg, out); err != nil {
					return err
				}
				a.logger.Infow("example configuration written", "path", out)
				fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
				return nil
			}
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
