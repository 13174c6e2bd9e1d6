// Package main provides the CLI entry point for xlgrid.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xlgrid-go/internal/config"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/logging"
)

var (
	configPath string
	envFile    string
	mode       string
	workers    int
	logLevel   string
	pretty     bool

	cfg    *config.Config
	logger *logging.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlgrid",
		Short: "Navigate and convert spreadsheet cells",
		Long: `xlgrid loads .xlsx and .csv files into a grid of addressable cells,
reads and converts cell values, and writes snapshots as JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file (default: $XLGRID_CONFIG)")
	flags.StringVar(&envFile, "env-file", ".env", "Environment file loaded before the config")
	flags.StringVar(&mode, "mode", "", "Decoding mode: text, typed")
	flags.IntVar(&workers, "workers", 0, "Sheets decoded concurrently")
	flags.StringVar(&logLevel, "log-level", "", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		newExtractCmd(),
		newSheetsCmd(),
		newCellCmd(),
		newRangeCmd(),
		newDescribeCmd(),
		newSetCmd(),
	)
	return rootCmd
}

// setup loads configuration and lets explicitly set flags override it.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(envFile, configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("pretty") {
		cfg.Pretty = pretty
	}
	// Validated once, after flags override the loaded settings
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = logging.New(os.Stderr, cfg.Level())
	logger.Debug("config: mode=%s workers=%d on_error=%s", cfg.Mode, cfg.Workers, cfg.OnError)
	return nil
}

func loadOptions() xlgrid.Options {
	opts := xlgrid.DefaultOptions()
	opts.Mode = xlgrid.Mode(cfg.Mode)
	opts.Workers = cfg.Workers
	opts.Sheets = cfg.Sheets
	opts.Logger = logger
	return opts
}

func openWorkbook(path string) (*xlgrid.Workbook, error) {
	logger.Info("opening %s", path)
	wb, err := xlgrid.Open(path, loadOptions())
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	logger.Debug("loaded %d sheet(s) from %s", wb.Len(), path)
	return wb, nil
}
