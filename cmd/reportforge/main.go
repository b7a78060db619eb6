package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrsinham/reportforge/internal/config"
	"github.com/mrsinham/reportforge/internal/export"
	"github.com/mrsinham/reportforge/internal/logging"
	"github.com/mrsinham/reportforge/internal/report"
	"github.com/mrsinham/reportforge/internal/util"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// app carries the settings shared by every subcommand.
type app struct {
	cfgFile  string
	logLevel string
	lang     string

	cfg    *config.Config
	labels report.Labels
	logger zerolog.Logger
	now    func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	rootCmd := &cobra.Command{
		Use:           "reportforge",
		Short:         "Patient report builder",
		Long:          "Fill in a radiology patient report and export it as a Word document or DICOM object.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./reportforge.yaml or ~/.config/reportforge/reportforge.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.lang, "lang", "", "report language: en, es")

	rootCmd.AddCommand(formCmd(a))
	rootCmd.AddCommand(exportCmd(a))
	rootCmd.AddCommand(submitCmd(a))
	rootCmd.AddCommand(validateIDCmd(a))
	rootCmd.AddCommand(ageCmd(a))
	rootCmd.AddCommand(sampleCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// load reads the configuration, letting the flags of cmd override it, and
// sets up labels and the stderr logger.
func (a *app) load(cmd *cobra.Command) error {
	flags := map[string]*pflag.Flag{
		"log.level":  cmd.Flags().Lookup("log-level"),
		"language":   cmd.Flags().Lookup("lang"),
		"output_dir": cmd.Flags().Lookup("output"),
		"formats":    cmd.Flags().Lookup("format"),
	}

	cfg, err := config.Load(config.Options{File: a.cfgFile, Flags: flags})
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.labels, err = cfg.Labels(); err != nil {
		return err
	}

	a.logger, err = logging.New(cfg.Log.Level, cfg.IsDev(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return nil
}

func (a *app) newController(logger zerolog.Logger) *report.Controller {
	return report.NewController(a.now(), a.labels.InvalidIdentity, logger)
}

func (a *app) newExporter(tags util.ParsedTags, logger zerolog.Logger) *export.Exporter {
	return export.New(export.Options{
		OutputDir:   a.cfg.OutputDir,
		Labels:      a.labels,
		Signatory:   a.cfg.ReportSignatory(),
		Institution: a.cfg.Institution,
		Tags:        tags,
		Now:         a.now,
		Logger:      logger,
	})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reportforge %s\n", version)
		},
	}
}
