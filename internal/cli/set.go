package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/duckno"
)

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <json>",
		Short: "Store a JSON value under a key",
		Long: `Store a JSON value under a key, replacing any existing value.

The value argument must be valid JSON, quoted for your shell.

Example:
  duckno set user:1 '{"name":"Ada","roles":["admin"]}'
  duckno set counter 42`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runSet(opts *RootOptions, key, raw string, cmd *cobra.Command) error {
	value, err := duckno.UnmarshalValue([]byte(raw))
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid JSON value %q", raw), err)
	}

	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Set(cmd.Context(), key, value); err != nil {
		return WrapExitError(ExitFailure, "set", err)
	}
	slog.Debug("stored value", "key", key, "db", describePath(s))

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(fmt.Sprintf("set %s", key), map[string]any{"key": key})
}
