package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jaco/ouilookup/internal/app"
	"github.com/jaco/ouilookup/internal/config"
	"github.com/jaco/ouilookup/internal/logger"
	"github.com/jaco/ouilookup/internal/stats"
)

// ErrUsage marks invocations with the wrong arguments or flags.
var ErrUsage = errors.New("usage error")

// Exit codes returned by ExitCode.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if errors.Is(err, ErrUsage) {
		return ExitUsage
	}
	return ExitFailure
}

// options hold flag values and what PersistentPreRunE derives from them.
type options struct {
	cfgFile string
	table   string
	debug   bool

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ouilookup <mac-address>",
		Short: "Look up the vendor of a MAC address",
		Long: `ouilookup resolves the manufacturer of a MAC address from the first six
hex digits (the OUI), using a semicolon-delimited OUI;Vendor reference table.

Examples:
  ouilookup AA:BB:CC:DD:EE:FF
  ouilookup aa-bb-cc-dd-ee-ff
  ouilookup aabb.ccdd.eeff --table ./IEEE_OUI.csv

  # Addresses starting with "-" go after "--" so they aren't read as flags
  ouilookup -- -aabb.ccdd.eeff`,
		Args:          exactlyOneMAC,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is "+config.DefaultConfigPath+")")
	rootCmd.PersistentFlags().StringVarP(&opts.table, "table", "t", "", "reference table path, overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug output to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newTUICmd(opts), newStatsCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func exactlyOneMAC(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s takes a single MAC address argument, got %d",
			ErrUsage, cmd.Name(), len(args))
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %d", ErrUsage, cmd.Name(), len(args))
	}
	return nil
}

func (o *options) setup() error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		o.cfg, err = config.LoadDefault()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := logger.Init(nil, o.cfg.Log.Level, o.debug); err != nil {
		return fmt.Errorf("%w: log level: %w", config.ErrConfig, err)
	}
	o.log = logger.Get()
	return nil
}

func (o *options) statsStore() stats.Store {
	if o.cfg.Stats.Path != "" {
		if p, err := config.ExpandHome(o.cfg.Stats.Path); err == nil {
			return stats.Store{Path: p}
		}
	}
	return stats.Store{Path: stats.DefaultPath()}
}

func runLookup(cmd *cobra.Command, opts *options, raw string) error {
	svc, err := app.New(opts.cfg, opts.table, opts.log)
	if err != nil {
		return err
	}

	out, err := svc.Lookup(raw)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.String())

	if opts.cfg.StatsEnabled() {
		// Counting is best-effort and never fails the lookup.
		if _, err := opts.statsStore().Record(out.Found); err != nil {
			opts.log.Debug().Err(err).Msg("could not record stats")
		}
	}
	return nil
}
