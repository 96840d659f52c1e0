// Package main provides the entry point for the procpipe CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for procpipe.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "procpipe",
		Short: "Feature-driven payload processing pipeline",
		Long: `procpipe transforms payloads through configurable processors.

Each processor applies a fixed transform order controlled by feature
flags, tracks its status and processed count, and reports its final
state after a run. Text and data variants are available.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewProcessCmd())
	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
