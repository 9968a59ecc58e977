package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for projsnap
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projsnap",
		Short: "Flatten a project tree into a single text snapshot",
		Long: `Projsnap walks a project directory, filters out noise (version
control metadata, dependency caches, build output, anything matching
your exclusion patterns), and concatenates the remaining text files
into one annotated snapshot file.

Each file appears as its relative path followed by its content inside
a backtick fence, so the snapshot can be pasted whole into a review,
an issue, or an AI context window.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCreateCommand())
	cmd.AddCommand(NewVerifyCommand())
	cmd.AddCommand(NewRestoreCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
