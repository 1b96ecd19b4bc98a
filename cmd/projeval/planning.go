package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/project-evaluator/internal/calculation"
	"github.com/rpgo/project-evaluator/internal/config"
	"github.com/rpgo/project-evaluator/internal/domain"
	"github.com/spf13/cobra"
)

// planningFlags are shared by the pert, productivity and network commands.
type planningFlags struct {
	configFile string
	asJSON     bool
}

func (f *planningFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "configuration file with planning sections (YAML)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print JSON instead of a table")
}

func (f *planningFlags) load() (*domain.Configuration, error) {
	if f.configFile == "" {
		return nil, errors.New("--config is required")
	}
	return config.NewInputParser().LoadPlanningFromFile(f.configFile)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newPERTCmd(a *app) *cobra.Command {
	flags := &planningFlags{}
	cmd := &cobra.Command{
		Use:   "pert",
		Short: "Estimate task durations with three-point PERT",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			summary, err := calculation.EstimatePERT(cfg.PERTTasks)
			if err != nil {
				return err
			}
			a.logger.Debugw("pert estimated", "tasks", len(summary.Tasks))
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-24s %10s %10s %10s %10s %10s\n", "Task", "Optimistic", "Likely", "Pessimist", "Expected", "Std Dev")
			for _, t := range summary.Tasks {
				fmt.Fprintf(w, "%-24s %10s %10s %10s %10s %10s\n", t.Name,
					t.Optimistic.String(), t.MostLikely.String(), t.Pessimistic.String(),
					t.ExpectedTime.StringFixed(2), t.StandardDeviation.StringFixed(2))
			}
			fmt.Fprintln(w, strings.Repeat("-", 79))
			fmt.Fprintf(w, "Total expected time: %s\n", summary.TotalExpectedTime.StringFixed(2))
			fmt.Fprintf(w, "Project standard deviation: %s\n", summary.ProjectStandardDeviation.StringFixed(2))
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func newProductivityCmd(a *app) *cobra.Command {
	flags := &planningFlags{}
	cmd := &cobra.Command{
		Use:   "productivity",
		Short: "Compute software productivity in SLOC per work-month",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			summary, err := calculation.SummarizeProductivity(cfg.Productivity)
			if err != nil {
				return err
			}
			a.logger.Debugw("productivity summarized", "projects", len(summary.Entries))
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-24s %10s %12s %14s\n", "Project", "SLOC", "Work-Months", "SLOC/Month")
			for _, e := range summary.Entries {
				fmt.Fprintf(w, "%-24s %10s %12s %14s\n", e.ProjectName, e.SLOC.String(), e.WorkMonths.String(), e.Productivity.StringFixed(2))
			}
			fmt.Fprintln(w, strings.Repeat("-", 63))
			fmt.Fprintf(w, "Overall productivity: %s SLOC/month\n", summary.OverallProductivity.StringFixed(2))
			fmt.Fprintf(w, "Mean productivity:    %s SLOC/month\n", summary.MeanProductivity.StringFixed(2))
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func newNetworkCmd(a *app) *cobra.Command {
	flags := &planningFlags{}
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Find the critical path of a task precedence network",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			schedule, err := calculation.AnalyzeNetwork(cfg.Network)
			if err != nil {
				return err
			}
			a.logger.Debugw("network analyzed", "tasks", len(schedule.Tasks), "critical", len(schedule.CriticalPath))
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), schedule)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-4s %-24s %8s %6s %6s %6s %6s %6s\n", "ID", "Task", "Duration", "ES", "EF", "LS", "LF", "Slack")
			for _, t := range schedule.Tasks {
				marker := ""
				if t.IsCritical() {
					marker = " *"
				}
				fmt.Fprintf(w, "%-4d %-24s %8s %6s %6s %6s %6s %6s%s\n", t.ID, t.Name, t.Duration.String(),
					t.EarlyStart.String(), t.EarlyFinish.String(), t.LateStart.String(), t.LateFinish.String(), t.Slack.String(), marker)
			}
			path := make([]string, 0, len(schedule.CriticalPath))
			for _, id := range schedule.CriticalPath {
				path = append(path, fmt.Sprint(id))
			}
			fmt.Fprintf(w, "Critical path: %s\n", strings.Join(path, " -> "))
			fmt.Fprintf(w, "Project duration: %s\n", schedule.ProjectDuration.String())
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}
