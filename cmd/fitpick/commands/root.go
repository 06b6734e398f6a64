package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"fitpick/internal/app"
	"fitpick/internal/logger"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// rootOptions carries persistent flags and the wired app to subcommands.
type rootOptions struct {
	tables  string
	server  string
	output  string
	verbose bool

	cfg  app.Config
	wire *app.Wire
}

// Execute runs the CLI with os.Args, cancelling on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:           "fitpick",
		Short:         "Pick ISO 286 fits and compute their limits",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.output != outputText && o.output != outputJSON {
				return fmt.Errorf("--output must be %q or %q, got %q", outputText, outputJSON, o.output)
			}

			cfg := app.ConfigFromEnv()
			if cmd.Flags().Changed("tables") {
				cfg.TablesPath = o.tables
			}
			if cmd.Flags().Changed("server") {
				cfg.ServerURL = o.server
			}
			mode := cfg.LogMode
			if o.verbose {
				mode = "dev"
			}
			log, err := logger.New(mode)
			if err != nil {
				return err
			}

			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			o.cfg, o.wire = cfg, w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.wire != nil {
				o.wire.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&o.tables, "tables", "", "reference tables YAML (default: embedded; env FITPICK_TABLES)")
	root.PersistentFlags().StringVar(&o.server, "server", "", "fitserver base URL, e.g. http://127.0.0.1:8080 (env FITPICK_SERVER)")
	root.PersistentFlags().StringVarP(&o.output, "output", "o", outputText, "output format: text or json")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(fitCmd(o), limitsCmd(o), fitsCmd(o), sweepCmd(o), tablesCmd(o))
	return root
}
