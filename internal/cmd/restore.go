package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/projsnap/internal/snapfile"
)

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <snapshot>",
		Short: "Re-materialize a snapshot's files into a directory",
		Long: `Restore parses a snapshot file and writes each captured file back
under the target directory, creating parent directories as needed.

Existing files are left alone unless --overwrite is set. Entries whose
path would escape the target directory abort the restore.

Examples:
  projsnap restore project_snapshot.txt --into ./recovered
  projsnap restore project_snapshot.txt --into . --overwrite`,
		Args: cobra.ExactArgs(1),
		RunE: runRestore,
	}

	cmd.Flags().String("into", "", "Directory to restore into (required)")
	cmd.Flags().Bool("overwrite", false, "Replace files that already exist")
	_ = cmd.MarkFlagRequired("into")

	return cmd
}

// runRestore implements the restore command logic
func runRestore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	dir, _ := cmd.Flags().GetString("into")
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	result, err := snapfile.Restore(data, snapfile.RestoreOptions{
		Dir:       dir,
		Overwrite: overwrite,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "restored %d file(s) into %s\n", len(result.Written), dir)
	for _, skipped := range result.Skipped {
		fmt.Fprintf(out, "skipped existing file: %s\n", skipped)
	}

	return nil
}
