package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/projsnap/internal/config"
	"github.com/harrison/projsnap/internal/history"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent snapshot runs",
		Long: `History lists recent snapshot runs from the local run journal,
newest first. The journal records when each snapshot was taken, the
root that was walked, where the output went, and how many files were
captured, skipped, and pruned.`,
		RunE: runHistory,
	}

	cmd.Flags().Int("limit", 20, "Maximum number of runs to list")
	cmd.Flags().String("config", "", "Path to config file (default: .projsnap.yaml)")

	return cmd
}

// runHistory implements the history command logic
func runHistory(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbPath, err := cfg.HistoryDBPath()
	if err != nil {
		return err
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runs, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no snapshot runs recorded yet")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(out, "%s  %s\n", r.StartedAt.Format("2006-01-02 15:04:05"), r.Root)
		fmt.Fprintf(out, "  run %s: %d files, %d skipped, %d pruned, %d bytes -> %s (%s)\n",
			r.ID, r.Files, r.Skipped, r.PrunedDirs, r.Bytes, r.Output,
			r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	}

	return nil
}
