package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kvarley/taskdeck/internal/config"
	"github.com/kvarley/taskdeck/internal/task"
)

// AddSeedCommand adds the seed command to the root command.
func AddSeedCommand(root *cobra.Command) {
	root.AddCommand(newSeedCmd())
}

// newSeedCmd creates the seed command.
func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty slot with starter tasks",
		Long: `Write the starter task list to the durable slot. Refuses to run when the
slot already holds tasks, so existing work is never overwritten.

Examples:
  taskdeck seed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), os.Stdout, cmd.Flag("output").Value.String())
		},
	}
}

// runSeed executes the seed command.
func runSeed(ctx context.Context, w io.Writer, format string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	home, err := config.ResolveHome(cfg)
	if err != nil {
		return err
	}

	storage, err := task.NewFileStorage(home)
	if err != nil {
		return err
	}

	existing, err := storage.Load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		if format == OutputJSON {
			return printJSON(w, map[string]any{"seeded": false, "tasks": len(existing)})
		}
		fmt.Fprintf(w, "Slot already holds %d tasks, not seeding\n", len(existing))
		return nil
	}

	seeds := task.SeedTasks(time.Now().UTC())
	if err := storage.Save(ctx, seeds); err != nil {
		return err
	}

	if format == OutputJSON {
		return printJSON(w, map[string]any{"seeded": true, "tasks": len(seeds)})
	}
	fmt.Fprintf(w, "Seeded slot with %d starter tasks\n", len(seeds))
	return nil
}
