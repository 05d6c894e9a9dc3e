package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/duckno"
)

// NewPathCommand creates the path command.
func NewPathCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the resolved database file path",
		Long: `Print the resolved database file path.

In-memory stores have no path; "(in-memory)" is printed and the json
payload carries null.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(rootOpts, cmd)
		},
	}

	return cmd
}

func runPath(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	var data any
	if p := s.DatabasePath(); p != "" {
		data = p
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(describePath(s), map[string]any{"database_path": data})
}

// describePath renders the store location for humans.
func describePath(s *duckno.Store) string {
	if p := s.DatabasePath(); p != "" {
		return p
	}
	return "(in-memory)"
}
