package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vango-dev/motion/pkg/presetpack"
)

func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List animation presets",
		Long: `List the built-in spring and timing presets, plus any presets
from the packs listed in motion.json.

Examples:
  motion presets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets()
		},
	}
	return cmd
}

func runPresets() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	library := presetpack.NewLibrary()
	if paths := cfg.PackPaths(); len(paths) > 0 {
		if err := library.Reload(paths); err != nil {
			return err
		}
	}

	springs := library.SpringSnapshot()
	timings := library.TimingSnapshot()

	fmt.Println()
	fmt.Println("  Springs")
	for _, name := range sortedKeys(springs) {
		p := springs[name]
		fmt.Printf("    %-12s damping=%-6.4g stiffness=%.4g\n", name, p.Damping, p.Stiffness)
	}

	fmt.Println()
	fmt.Println("  Timings")
	for _, name := range sortedKeys(timings) {
		p := timings[name]
		fmt.Printf("    %-12s %s\n", name, p.Duration)
	}
	fmt.Println()

	if len(cfg.Packs) > 0 {
		info("Includes packs: %v", cfg.Packs)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
