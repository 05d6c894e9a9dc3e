package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/duckno"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	Default string
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Fetch the JSON value stored under a key",
		Long: `Fetch the JSON value stored under a key.

A missing key exits with status 1 unless --default supplies a JSON
fallback, which is printed verbatim.

Example:
  duckno get user:1
  duckno get missing --default 'null'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Default, "default", "", "JSON fallback for a missing key")

	return cmd
}

func runGet(opts *GetOptions, key string, cmd *cobra.Command) error {
	var def duckno.Value
	if opts.Default != "" {
		d, err := duckno.UnmarshalValue([]byte(opts.Default))
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --default JSON %q", opts.Default), err)
		}
		def = d
	}

	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	value, err := s.Get(cmd.Context(), key, def)
	if err != nil {
		return WrapExitError(ExitFailure, "get", err)
	}
	if value == nil {
		slog.Debug("key not found", "key", key)
		return NewExitError(ExitFailure, fmt.Sprintf("key %q not found", key))
	}

	text, err := duckno.MarshalValue(value)
	if err != nil {
		return WrapExitError(ExitFailure, "encode value", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(string(text), json.RawMessage(text))
}
