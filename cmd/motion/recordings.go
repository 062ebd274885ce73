package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/motion/pkg/timeline"
)

func recordingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recordings",
		Short: "Manage recorded session timelines",
		Long: `List, inspect, and delete the timelines the preview server
records for each session.

Examples:
  motion recordings list
  motion recordings show 4f2a0c...
  motion recordings delete 4f2a0c...`,
	}

	cmd.AddCommand(
		recordingsListCmd(),
		recordingsShowCmd(),
		recordingsDeleteCmd(),
	)
	return cmd
}

func openStore() (timeline.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return timeline.NewDiskStore(cfg.RecordPath())
}

func recordingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recordings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			infos, err := store.List(context.Background())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				info("No recordings")
				return nil
			}
			for _, rec := range infos {
				fmt.Printf("  %s  %-24s %4d frames  %s\n",
					rec.ID, rec.Name, rec.Frames, rec.RecordedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func recordingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recording's frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			t, err := store.Load(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("  %s (%s, %d frames, %s)\n",
				t.Name, t.RecordedAt.Format("2006-01-02 15:04:05"), len(t.Frames), t.Duration())
			for _, f := range t.Frames {
				fmt.Printf("  %6dms  %-12s %s\n", f.AtMs, f.Value, describeCommand(f.Command))
			}
			return nil
		},
	}
}

func recordingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if err := store.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			success("Deleted %s", args[0])
			return nil
		},
	}
}

// describeCommand renders one timeline command on a single line.
func describeCommand(c timeline.Command) string {
	switch c.Op {
	case "snap":
		return fmt.Sprintf("snap → %g", c.Target)
	case "timing":
		return fmt.Sprintf("timing → %g over %dms", c.Target, c.DurationMs)
	case "spring":
		return fmt.Sprintf("spring → %g (damping %g, stiffness %g)", c.Target, c.Damping, c.Stiffness)
	case "sequence":
		return fmt.Sprintf("sequence of %d", len(c.Steps))
	case "delay":
		next := ""
		if c.Next != nil {
			next = ", then " + describeCommand(*c.Next)
		}
		return fmt.Sprintf("wait %dms%s", c.WaitMs, next)
	default:
		return c.Op
	}
}
