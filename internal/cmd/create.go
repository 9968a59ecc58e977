package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/projsnap/internal/config"
	"github.com/harrison/projsnap/internal/filelock"
	"github.com/harrison/projsnap/internal/history"
	"github.com/harrison/projsnap/internal/ignore"
	"github.com/harrison/projsnap/internal/logger"
	"github.com/harrison/projsnap/internal/snapshot"
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [directory]",
		Short: "Create a snapshot of a project directory",
		Long: `Create walks the given directory, skips everything matching the
exclusion set (built-in defaults, the project's .gitignore, and any
patterns you add), and writes the remaining text files into a single
snapshot file.

Binary and unreadable files are reported and skipped; they never fail
the run. Only an invalid root directory or a failure to write the
snapshot itself is fatal.

Configuration is loaded from .projsnap.yaml if present. CLI flags
override configuration file settings.

Examples:
  # Snapshot the current directory
  projsnap create .

  # Snapshot with extra exclusions
  projsnap create ~/code/app --exclude "*.log, testdata"

  # Choose the output location
  projsnap create . -o /tmp/app_snapshot.txt

  # Ignore the project's .gitignore
  projsnap create . --no-gitignore

  # Ask interactively, like the original tool
  projsnap create --interactive

  # See what would be captured without writing anything
  projsnap create . --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().StringP("output", "o", "", "Snapshot file path (default project_snapshot.txt)")
	cmd.Flags().StringP("exclude", "e", "", "Comma-separated extra exclusion patterns")
	cmd.Flags().Bool("no-gitignore", false, "Do not merge patterns from the root's .gitignore")
	cmd.Flags().String("ignore-file", "", "Alternate ignore file (default <root>/.gitignore)")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the root directory and exclusions")
	cmd.Flags().String("fence", "", "Fence style: fixed or adaptive")
	cmd.Flags().Bool("dry-run", false, "Walk and report without writing the snapshot")
	cmd.Flags().String("config", "", "Path to config file (default: .projsnap.yaml)")
	cmd.Flags().BoolP("verbose", "v", false, "Show per-file skip and prune detail")

	return cmd
}

// runCreate implements the create command logic
func runCreate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	logLevel := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}
	log := logger.NewConsoleLogger(cmd.OutOrStdout(), logLevel)

	fenceName := cfg.Fence
	if flag, _ := cmd.Flags().GetString("fence"); flag != "" {
		fenceName = flag
	}
	fence, ok := snapshot.ParseFenceStyle(fenceName)
	if !ok {
		return fmt.Errorf("unknown fence style %q (use fixed or adaptive)", fenceName)
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	prompter := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	// Resolve and validate the root before anything else touches disk.
	root, err := resolveRoot(args, interactive, prompter)
	if err != nil {
		return err
	}

	output := cfg.Output
	if flag, _ := cmd.Flags().GetString("output"); flag != "" {
		output = flag
	}
	output, err = filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	exclusions, err := buildExclusions(cmd, cfg, root, interactive, prompter, log)
	if err != nil {
		return err
	}

	engine := snapshot.New(snapshot.Options{
		Exclusions: exclusions,
		OutputPath: output,
		Logger:     log,
	})

	result, err := engine.Run(root)
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		for _, b := range result.Blocks {
			fmt.Fprintln(cmd.OutOrStdout(), b.Path)
		}
		log.Info("dry run: %d files would be captured", len(result.Blocks))
		return nil
	}

	body := result.Render(fence)

	lock := filelock.NewRunLock(output)
	acquired, err := lock.TryAcquire()
	if err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("another projsnap run is writing %s", output)
	}
	defer lock.Release()

	if err := filelock.WriteSnapshot(output, body); err != nil {
		log.Error("failed to write snapshot to %s", output)
		return err
	}

	recordRun(cmd.Context(), cfg, result, output, int64(len(body)), log)

	log.Success("Project snapshot created: %s (%d files, %d bytes)", output, len(result.Blocks), len(body))
	return nil
}

// resolveRoot picks the root directory from the argument or, in
// interactive mode, from a prompt, and validates it is an existing
// directory. The returned path is absolute.
func resolveRoot(args []string, interactive bool, prompter *Prompter) (string, error) {
	var root string
	switch {
	case len(args) == 1:
		root = args[0]
	case interactive:
		var err error
		root, err = prompter.Ask("Please enter the path to the root directory of your project:")
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("a root directory argument is required (or use --interactive)")
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("the path provided is not a valid directory: %s", root)
	}

	return filepath.Abs(root)
}

// buildExclusions unions the default patterns, config patterns, the
// ignore-file contribution, and any manual patterns into the set the
// engine will use. The ignore-file itself is excluded from the
// snapshot alongside the output file.
func buildExclusions(cmd *cobra.Command, cfg *config.Config, root string, interactive bool, prompter *Prompter, log *logger.ConsoleLogger) (*ignore.Set, error) {
	exclusions := ignore.NewSet(ignore.DefaultPatterns, cfg.Exclude)

	ignorePath, _ := cmd.Flags().GetString("ignore-file")
	explicitIgnoreFile := ignorePath != ""
	if ignorePath == "" {
		ignorePath = filepath.Join(root, ".gitignore")
	}

	noGitignore, _ := cmd.Flags().GetBool("no-gitignore")
	useIgnoreFile := cfg.UseGitignore && !noGitignore

	_, statErr := os.Stat(ignorePath)
	ignoreFileExists := statErr == nil
	if explicitIgnoreFile && !ignoreFileExists {
		log.Warn("ignore file %s not found; contributing no patterns", ignorePath)
	}

	if interactive {
		if ignoreFileExists {
			use, err := prompter.Confirm(fmt.Sprintf("A %s file was found. Add its rules to the exclusion list?", filepath.Base(ignorePath)))
			if err != nil {
				return nil, err
			}
			useIgnoreFile = use
			if !use {
				if err := promptManualPatterns(prompter, exclusions); err != nil {
					return nil, err
				}
			}
		} else {
			useIgnoreFile = false
			add, err := prompter.Confirm("No ignore file found. Do you want to manually add exclusion patterns?")
			if err != nil {
				return nil, err
			}
			if add {
				if err := promptManualPatterns(prompter, exclusions); err != nil {
					return nil, err
				}
			}
		}
	}

	if useIgnoreFile && ignoreFileExists {
		patterns, err := ignore.ParseIgnoreFile(ignorePath)
		if err != nil {
			log.Warn("could not read ignore file %s: %v", ignorePath, err)
		} else {
			exclusions.Add(patterns...)
			log.Debug("loaded %d patterns from %s", len(patterns), ignorePath)
		}
	}

	if manual, _ := cmd.Flags().GetString("exclude"); manual != "" {
		exclusions.Add(ignore.ParseList(manual)...)
	}

	// Keep ignore metadata out of the snapshot body.
	exclusions.Add(filepath.Base(ignorePath), ".gitignore")

	return exclusions, nil
}

// promptManualPatterns asks for comma-separated patterns and unions
// them into the set.
func promptManualPatterns(prompter *Prompter, exclusions *ignore.Set) error {
	reply, err := prompter.Ask("Enter patterns to exclude, separated by commas (e.g. *.log, dist, build):")
	if err != nil {
		return err
	}
	exclusions.Add(ignore.ParseList(reply)...)
	return nil
}

// recordRun appends the run to the history journal. History failures
// are warnings; the snapshot is already on disk.
func recordRun(ctx context.Context, cfg *config.Config, result *snapshot.Result, output string, bytes int64, log *logger.ConsoleLogger) {
	if !cfg.History.Enabled {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := cfg.HistoryDBPath()
	if err != nil {
		log.Warn("history disabled for this run: %v", err)
		return
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		log.Warn("history disabled for this run: %v", err)
		return
	}
	defer store.Close()

	run := history.Run{
		ID:         result.RunID,
		StartedAt:  result.Started,
		FinishedAt: result.Finished,
		Root:       result.Root,
		Output:     output,
		Files:      len(result.Blocks),
		Skipped:    len(result.Skips),
		PrunedDirs: len(result.PrunedDirs),
		Bytes:      bytes,
	}
	if err := store.Record(ctx, run); err != nil {
		log.Warn("failed to record run history: %v", err)
	}
}
