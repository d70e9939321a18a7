package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many lookups have been run",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := opts.statsStore()
			st, err := store.Load()
			if err != nil {
				return fmt.Errorf("failed to read stats: %w", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "lookups: %d\n", st.Lookups)
			fmt.Fprintf(w, "matches: %d\n", st.Matches)
			return nil
		},
	}
}
