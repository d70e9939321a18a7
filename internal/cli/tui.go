package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jaco/ouilookup/internal/app"
	"github.com/jaco/ouilookup/internal/tui"
)

var isTerminal = term.IsTerminal

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive lookup screen",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
}

func runTUI(opts *options) error {
	if !isTerminal(int(os.Stdin.Fd())) {
		return errors.New("tui needs an interactive terminal")
	}

	svc, err := app.New(opts.cfg, opts.table, opts.log)
	if err != nil {
		return err
	}

	if err := tui.Run(svc); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
