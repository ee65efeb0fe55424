package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leengari/babybear/internal/config"
	"github.com/leengari/babybear/internal/frame"
	"github.com/leengari/babybear/internal/logging"
	"github.com/leengari/babybear/internal/storage"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	envFile string
	output  string

	cfg      *config.Config
	logger   *slog.Logger
	observer frame.Observer
	closeLog func()

	setupLogger func(config.LoggingConfig) (*slog.Logger, func())
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func newApp() *app {
	return &app{
		closeLog:    func() {},
		setupLogger: logging.SetupLogger,
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "babybear",
		Short:         "Tiny dataframe operations over CSV and JSON tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with BABYBEAR_* settings")

	cmd.AddCommand(
		newShowCmd(a),
		newSelectCmd(a),
		newSliceCmd(a),
		newRowCmd(a),
		newWhereCmd(a),
		newAggCmd(a),
		newMeanCmd(a),
		newConvertCmd(a),
	)

	// close the log on every exit; PersistentPostRun does not run when RunE fails
	for _, sub := range cmd.Commands() {
		if run := sub.RunE; run != nil {
			sub.RunE = func(cmd *cobra.Command, args []string) error {
				defer a.closeLog()
				return run(cmd, args)
			}
		}
	}
	return cmd
}

func (a *app) setup() error {
	cfg, err := config.LoadFiles(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closeFn := a.setupLogger(cfg.Logging)
	runID := uuid.New().String()
	a.logger = logger.With("run_id", runID)
	a.closeLog = closeFn
	slog.SetDefault(a.logger)

	// the observer adds run_id itself
	a.observer = frame.NewLoggingObserver(logger, runID)
	return nil
}

// load reads a table and attaches the run observer
func (a *app) load(path string) (*frame.Table, error) {
	t, err := storage.Load(path)
	if err != nil {
		return nil, err
	}
	return t.WithObserver(a.observer), nil
}

// emit saves t to --output when set, otherwise prints a preview
func (a *app) emit(cmd *cobra.Command, t *frame.Table) error {
	if a.output != "" {
		return storage.Save(t, a.output)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Preview(a.cfg.Preview.Rows, a.cfg.Preview.Threshold))
	return err
}

func addOutputFlag(cmd *cobra.Command, a *app) {
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "write the result to this .csv or .json file instead of printing it")
}

func splitColumns(s string) []string {
	var cols []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}
