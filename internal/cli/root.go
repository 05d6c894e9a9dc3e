package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/duckno"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DB      string // database location (path or ":memory:")
	Memory  bool
	Config  string // optional yaml config file
	Format  string // "json" | "text"
	Verbose bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the duckno CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "duckno",
		Short: "duckno - key/value store on an embedded SQL engine",
		Long:  "A tiny key/value store: JSON values in a single SQLite table.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			initLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "database location (path or \":memory:\", default ./duckno.db)")
	cmd.PersistentFlags().BoolVar(&opts.Memory, "memory", false, "use an ephemeral in-memory database")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "yaml config file (flags override it)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewKeysCommand(opts))
	cmd.AddCommand(NewPathCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openStore resolves store options from flags and the optional config
// file (flags win) and opens the store.
func openStore(opts *RootOptions) (*duckno.Store, error) {
	sopts := duckno.Options{Location: opts.DB, InMemory: opts.Memory}

	if opts.Config != "" {
		cfg, err := LoadConfig(opts.Config)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load config", err)
		}
		if sopts.Location == "" {
			sopts.Location = cfg.Location
		}
		if !sopts.InMemory {
			sopts.InMemory = cfg.InMemory
		}
	}

	s, err := duckno.Open(sopts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open store", err)
	}
	return s, nil
}
