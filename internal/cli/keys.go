package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List every key in the store",
		Long: `List every key in the store, one per line, in ascending order.

Example:
  duckno keys
  duckno keys --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(rootOpts, cmd)
		},
	}

	return cmd
}

func runKeys(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	keys, err := s.Keys(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "keys", err)
	}
	slog.Debug("listed keys", "count", len(keys))

	if keys == nil {
		keys = []string{} // json output stays [] rather than null
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(strings.Join(keys, "\n"), keys)
}
