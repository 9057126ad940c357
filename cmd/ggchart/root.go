package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/config"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

// options are the flags shared by every subcommand.
type options struct {
	configFile string
	logLevel   string

	loader *config.Loader
}

func newRootCmd() *cobra.Command {
	opts := &options{loader: config.NewLoader()}

	root := &cobra.Command{
		Use:           "ggchart",
		Short:         "Render line charts of large series",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.installLogger(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "chart configuration file (yaml, json or toml)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	opts.loader.RegisterFlags(flags)

	root.AddCommand(
		newRenderCmd(opts),
		newDemoCmd(opts),
		newVersionCmd(),
	)
	return root
}

// installLogger routes library logging to stderr at the requested level.
func (o *options) installLogger(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	ggchart.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// chart loads the configuration file merged with environment and flags.
func (o *options) chart() (*config.Chart, error) {
	return o.loader.Load(o.configFile)
}

// printer formats counts with digit grouping.
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ggchart", version)
		},
	}
}
