package main

import (
	"github.com/rpgo/project-evaluator/internal/config"
	"github.com/rpgo/project-evaluator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	settingsPath string
	verbose      bool

	settings *config.Settings
	logger   *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "projeval",
		Short:         "Evaluate solar and wind capital projects by ROI, NPV and IRR",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "settings file (YAML, JSON or TOML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newEvaluateCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
		newPERTCmd(a),
		newProductivityCmd(a),
		newNetworkCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	if a.verbose {
		settings.Log.Level = "debug"
	}
	logger, err := logging.NewWithWriter(cmd.ErrOrStderr(), settings.Log.Level, settings.Log.Development)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger
	return nil
}
