package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/projsnap/internal/snapfile"
)

// NewVerifyCommand creates the verify command
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <snapshot>",
		Short: "Check a snapshot file's block structure",
		Long: `Verify parses a snapshot file back into blocks and reports anything
that looks wrong: missing path headers, unterminated fences, or the
classic fixed-fence corruption where a captured file's own backtick
fence splits a block in two.

A snapshot with warnings can still be partially parsed, but restoring
it may produce wrong file boundaries.`,
		Args: cobra.ExactArgs(1),
		RunE: runVerify,
	}
}

// runVerify implements the verify command logic
func runVerify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	report, err := snapfile.Verify(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d block(s)\n", args[0], report.Blocks)

	if report.OK() {
		fmt.Fprintln(out, "structure looks clean")
		return nil
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	return fmt.Errorf("%d structural warning(s)", len(report.Warnings))
}
